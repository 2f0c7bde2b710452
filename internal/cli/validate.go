package cli

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) Handler {
	return func(args []string, _ io.Reader, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		common := addCommonFlags(flags)
		strict := flags.Bool("strict", false, "Fail when any block cannot be parsed")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if rejectExtraArgs(cmd, flags, stderr) {
			return ExitUsage
		}

		rt, err := loadRuntime(common, stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%s\n", err.Error())
			return ExitError
		}
		defer rt.close()
		fmt.Fprintln(stdout, "Config OK")

		b, err := rt.loadBank()
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed: %v\n", err)
			return ExitError
		}
		for _, src := range b.Sources {
			if src.Skipped > 0 {
				fmt.Fprintf(stdout, "  %s: %d parsed, %d skipped\n", filepath.Base(src.Path), src.Parsed, src.Skipped)
			}
		}
		fmt.Fprintf(stdout, "Bank: %d questions in %d files, %d blocks skipped\n", b.Len(), len(b.Sources), b.Skipped)
		if *strict && b.Skipped > 0 {
			fmt.Fprintf(stderr, "Validation failed: %d blocks could not be parsed\n", b.Skipped)
			return ExitError
		}
		return ExitOK
	}
}
