package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"quizbank/internal/gift"
)

// runExport builds the handler for the export command.
func runExport(cmd *Command) Handler {
	return func(args []string, _ io.Reader, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		common := addCommonFlags(flags)
		format := flags.String("format", "yaml", "Output format: yaml|json")
		output := flags.String("output", "", "Write to this file instead of stdout")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if rejectExtraArgs(cmd, flags, stderr) {
			return ExitUsage
		}
		encode, ok := exportEncoders[strings.ToLower(strings.TrimSpace(*format))]
		if !ok {
			fmt.Fprintf(stderr, "invalid format %q (expected yaml|json)\n", *format)
			return ExitUsage
		}

		rt, err := loadRuntime(common, stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		defer rt.close()
		b, err := rt.loadBank()
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load questions: %v\n", err)
			return ExitError
		}

		out := stdout
		var file *os.File
		if *output != "" {
			file, err = os.Create(*output)
			if err != nil {
				fmt.Fprintf(stderr, "Export failed: %v\n", err)
				return ExitError
			}
			out = file
		}
		err = encode(out, b.Questions)
		if file != nil {
			if closeErr := file.Close(); err == nil {
				err = closeErr
			}
		}
		if err != nil {
			fmt.Fprintf(stderr, "Export failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}

var exportEncoders = map[string]func(io.Writer, []gift.Question) error{
	"yaml": encodeYAML,
	"json": encodeJSON,
}

func encodeYAML(w io.Writer, questions []gift.Question) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(questions); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

func encodeJSON(w io.Writer, questions []gift.Question) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(questions); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
