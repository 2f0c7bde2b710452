package cli

import (
	"fmt"
	"io"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Handler runs a command with its arguments and standard streams.
type Handler func(args []string, stdin io.Reader, stdout, stderr io.Writer) int

type Command struct {
	Name    string
	Summary string
	Usage   []string
	Run     Handler
}

func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stdout)
		return ExitUsage
	}
	if isHelpArg(args[0]) {
		printUsage(stdout)
		return ExitOK
	}

	cmd := findCommand(commands, args[0])
	if cmd == nil {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return ExitUsage
	}

	return cmd.Run(args[1:], stdin, stdout, stderr)
}

func findCommand(table []*Command, name string) *Command {
	for _, cmd := range table {
		if cmd.Name == name {
			return cmd
		}
	}
	return nil
}

func isHelpArg(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	default:
		return false
	}
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return true
		}
	}
	return false
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  quizbank <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-9s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintln(w, "\nUse \"quizbank <command> --help\" for more information.")
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}
	if cmd.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", cmd.Summary)
	}
}

func command(name, summary string, usage []string, runner func(cmd *Command) Handler) *Command {
	cmd := &Command{
		Name:    name,
		Summary: summary,
		Usage:   usage,
	}
	cmd.Run = runner(cmd)
	return cmd
}

var commands = []*Command{
	command("init", "Scaffold .quizbank/config.yml and the bank directories", []string{
		"quizbank init [--dir <path>]",
	}, runInit),
	command("validate", "Validate the config and report unparseable blocks", []string{
		"quizbank validate [--config <path>] [--strict]",
	}, runValidate),
	command("list", "List bank questions page by page", []string{
		"quizbank list [--page <n>] [--page-size <n>] [--file <path>]",
	}, runList),
	command("show", "Show one question with its choices", []string{
		"quizbank show <number|title>",
	}, runShow),
	command("search", "Find questions whose body contains a keyword", []string{
		"quizbank search <keyword>",
	}, runSearch),
	command("menu", "Interactive menu for building an exam", []string{
		"quizbank menu",
	}, runMenu),
	command("browse", "Browse the bank in a terminal table", []string{
		"quizbank browse [--ui auto|live|plain]",
	}, runBrowse),
	command("exam", "Build and list exams", []string{
		"quizbank exam build --name <name> <title>...",
		"quizbank exam list",
	}, runExam),
	command("stats", "Question type frequencies for the bank or an exam", []string{
		"quizbank stats [--exam <name> | --file <path>] [--html <out.html>] [--no-color]",
	}, runStats),
	command("export", "Export the parsed bank as YAML or JSON", []string{
		"quizbank export [--format yaml|json] [--output <path>]",
	}, runExport),
}
