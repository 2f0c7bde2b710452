package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"quizbank/internal/exam"
)

// runExam builds the handler for the exam command and its subcommands.
func runExam(cmd *Command) Handler {
	return func(args []string, _ io.Reader, stdout, stderr io.Writer) int {
		if len(args) == 0 || isHelpArg(args[0]) {
			printCommandUsage(cmd, stdout)
			if len(args) == 0 {
				return ExitUsage
			}
			return ExitOK
		}
		switch args[0] {
		case "build":
			return runExamBuild(cmd, args[1:], stdout, stderr)
		case "list":
			return runExamList(cmd, args[1:], stdout, stderr)
		default:
			fmt.Fprintf(stderr, "Unknown exam subcommand: %s\n", args[0])
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
	}
}

func runExamBuild(cmd *Command, args []string, stdout, stderr io.Writer) int {
	if wantsHelp(args) {
		printCommandUsage(cmd, stdout)
		return ExitOK
	}
	flags := flag.NewFlagSet(cmd.Name+" build", flag.ContinueOnError)
	flags.SetOutput(stderr)
	common := addCommonFlags(flags)
	name := flags.String("name", "", "Exam file name without extension")
	overwrite := flags.Bool("overwrite", false, "Replace an existing exam file")
	if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
		return code
	}
	if strings.TrimSpace(*name) == "" {
		fmt.Fprintln(stderr, "Missing --name")
		return ExitUsage
	}
	if flags.NArg() == 0 {
		fmt.Fprintln(stderr, "Missing question titles")
		printCommandUsage(cmd, stderr)
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

	draft := exam.NewDraft(rt.examLimits())
	for _, title := range flags.Args() {
		q, ok := b.Find(title)
		if !ok {
			fmt.Fprintf(stderr, "No question titled %q\n", title)
			return ExitError
		}
		if err := draft.Add(q); err != nil {
			fmt.Fprintf(stderr, "Cannot add %q: %v\n", title, err)
			return ExitError
		}
	}

	writer := rt.examWriter()
	writer.Overwrite = *overwrite
	path, err := draft.Finalize(writer, *name)
	if err != nil {
		rt.logger.Warn("exam build failed", zap.String("session_id", draft.ID), zap.Error(err))
		fmt.Fprintf(stderr, "Exam build failed: %v\n", err)
		if errors.Is(err, exam.ErrInvalidName) {
			return ExitUsage
		}
		return ExitError
	}
	fmt.Fprintf(stdout, "Exam written: %s (%d questions)\n", path, flags.NArg())
	return ExitOK
}

func runExamList(cmd *Command, args []string, stdout, stderr io.Writer) int {
	if wantsHelp(args) {
		printCommandUsage(cmd, stdout)
		return ExitOK
	}
	flags := flag.NewFlagSet(cmd.Name+" list", flag.ContinueOnError)
	flags.SetOutput(stderr)
	common := addCommonFlags(flags)
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

	paths, err := rt.examWriter().List()
	if err != nil {
		fmt.Fprintf(stderr, "Failed to list exams: %v\n", err)
		return ExitError
	}
	if len(paths) == 0 {
		fmt.Fprintln(stdout, "No exams found.")
		return ExitOK
	}
	loader := rt.loader()
	for _, path := range paths {
		b, err := loader.LoadFile(path)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to read %s: %v\n", path, err)
			return ExitError
		}
		name := strings.TrimSuffix(filepath.Base(path), rt.cfg.Extension)
		fmt.Fprintf(stdout, "%s\t%d questions\n", name, b.Len())
	}
	return ExitOK
}
