package cli

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"

	"go.uber.org/zap"

	"quizbank/internal/session"
	"quizbank/internal/ui/browse"
)

// runMenu builds the handler for the menu command.
func runMenu(cmd *Command) Handler {
	return func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		common := addCommonFlags(flags)
		noColor := flags.Bool("no-color", false, "Disable colored output")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if rejectExtraArgs(cmd, flags, stderr) {
			return ExitUsage
		}

		rt, err := loadRuntime(common, stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		defer rt.close()

		s := session.New(stdin, stdout, session.Options{
			BankDir:  rt.cfg.BankPath(),
			Loader:   rt.loader(),
			Writer:   rt.examWriter(),
			Limits:   rt.examLimits(),
			PageSize: rt.cfg.UI.PageSize,
			NoColor:  *noColor || rt.cfg.UI.NoColor,
			Logger:   rt.logger,
		})
		if err := s.Run(); err != nil {
			rt.logger.Error("menu session failed", zap.Error(err))
			fmt.Fprintf(stderr, "Menu failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}

// browseProgram runs the interactive table; tests replace it.
var browseProgram = browse.Run

// runBrowse builds the handler for the browse command.
func runBrowse(cmd *Command) Handler {
	return func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		common := addCommonFlags(flags)
		uiFlag := flags.String("ui", "", "Output mode: auto|live|plain (default: ui.mode)")
		noColor := flags.Bool("no-color", false, "Disable colored output")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if rejectExtraArgs(cmd, flags, stderr) {
			return ExitUsage
		}

		rt, err := loadRuntime(common, stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		defer rt.close()

		mode := *uiFlag
		if mode == "" {
			mode = rt.cfg.UI.Mode
		}
		if _, err := parseUIMode(mode); err != nil {
			fmt.Fprintln(stderr, err)
			return ExitUsage
		}

		b, err := rt.loadBank()
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load questions: %v\n", err)
			return ExitError
		}
		plan, err := planBrowse(mode, rt.verbose, b.Len(), stdout)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return ExitUsage
		}
		if plan.warning != "" {
			fmt.Fprintln(stderr, plan.warning)
		}
		if plan.output == outputPlainList {
			writeQuestionList(stdout, b, 1, 0)
			return ExitOK
		}

		opts := browse.Options{
			Title:   filepath.Base(b.Dir),
			NoColor: *noColor || rt.cfg.UI.NoColor,
		}
		if err := browseProgram(stdin, stdout, b.Questions, opts); err != nil {
			fmt.Fprintf(stderr, "Browse failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
