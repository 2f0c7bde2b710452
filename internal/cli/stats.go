package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"quizbank/internal/bank"
	"quizbank/internal/stats"
)

// runStats builds the handler for the stats command.
func runStats(cmd *Command) Handler {
	return func(args []string, _ io.Reader, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		common := addCommonFlags(flags)
		examName := flags.String("exam", "", "Analyze a finalized exam by name")
		file := flags.String("file", "", "Analyze a single question file")
		htmlPath := flags.String("html", "", "Also write an HTML report to this path")
		noColor := flags.Bool("no-color", false, "Disable colored output")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if rejectExtraArgs(cmd, flags, stderr) {
			return ExitUsage
		}
		if *examName != "" && *file != "" {
			fmt.Fprintln(stderr, "--exam and --file are mutually exclusive")
			return ExitUsage
		}

		rt, err := loadRuntime(common, stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		defer rt.close()

		name, b, err := rt.statsTarget(*examName, *file)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load questions: %v\n", err)
			return ExitError
		}

		ctx := context.Background()
		report, err := stats.Analyze(ctx, name, b)
		if err != nil {
			rt.logger.Error("stats failed", zap.String("target", name), zap.Error(err))
			fmt.Fprintf(stderr, "Stats failed: %v\n", err)
			return ExitError
		}
		opts := stats.RenderOptions{NoColor: *noColor || rt.cfg.UI.NoColor}
		if err := stats.RenderText(stdout, report, opts); err != nil {
			fmt.Fprintf(stderr, "Stats failed: %v\n", err)
			return ExitError
		}

		if *htmlPath != "" {
			if err := writeHTMLReport(ctx, *htmlPath, report); err != nil {
				fmt.Fprintf(stderr, "Failed to write HTML report: %v\n", err)
				return ExitError
			}
			fmt.Fprintf(stdout, "HTML report written to %s\n", *htmlPath)
		}
		return ExitOK
	}
}

// statsTarget loads the exam, file or bank selected by the flags.
func (rt *runtime) statsTarget(examName, file string) (string, bank.Bank, error) {
	switch {
	case examName != "":
		path, err := rt.examWriter().Path(examName)
		if err != nil {
			return "", bank.Bank{}, err
		}
		b, err := rt.loader().LoadFile(path)
		return examName, b, err
	case file != "":
		b, err := rt.loader().LoadFile(file)
		return filepath.Base(file), b, err
	default:
		b, err := rt.loadBank()
		return filepath.Base(rt.cfg.BankPath()), b, err
	}
}

func writeHTMLReport(ctx context.Context, path string, report stats.Report) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := stats.ReportPage(report).Render(ctx, file); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
