package cli

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"quizbank/internal/bank"
	"quizbank/internal/gift"
)

// runList builds the handler for the list command.
func runList(cmd *Command) Handler {
	return func(args []string, _ io.Reader, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		common := addCommonFlags(flags)
		page := flags.Int("page", 1, "Page to print (1-based)")
		pageSize := flags.Int("page-size", 0, "Questions per page (default: ui.page_size)")
		file := flags.String("file", "", "List a single question file instead of the bank")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if rejectExtraArgs(cmd, flags, stderr) {
			return ExitUsage
		}
		if *pageSize < 0 {
			fmt.Fprintln(stderr, "--page-size must be positive")
			return ExitUsage
		}

		rt, err := loadRuntime(common, stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		defer rt.close()

		var b bank.Bank
		if *file != "" {
			b, err = rt.loader().LoadFile(*file)
		} else {
			b, err = rt.loadBank()
		}
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load questions: %v\n", err)
			return ExitError
		}

		size := *pageSize
		if size == 0 {
			size = rt.cfg.UI.PageSize
		}
		writeQuestionList(stdout, b, *page, size)
		return ExitOK
	}
}

// writeQuestionList prints one page of numbered titles and a summary line.
// Numbers are positions in the whole bank.
func writeQuestionList(w io.Writer, b bank.Bank, page, size int) {
	if b.Len() == 0 {
		fmt.Fprintln(w, "No questions found.")
		writeSkipped(w, b.Skipped)
		return
	}
	if size <= 0 {
		size = b.Len()
	}
	items, pages := bank.Page(b.Questions, page, size)
	page = min(max(page, 1), pages)
	offset := (page - 1) * size
	for i, q := range items {
		fmt.Fprintf(w, "[%d] %s\n", offset+i+1, q.Title)
	}
	fmt.Fprintf(w, "Page %d/%d, %d questions\n", page, pages, b.Len())
	writeSkipped(w, b.Skipped)
}

func writeSkipped(w io.Writer, skipped int) {
	if skipped > 0 {
		fmt.Fprintf(w, "%d blocks skipped\n", skipped)
	}
}

// runShow builds the handler for the show command.
func runShow(cmd *Command) Handler {
	return func(args []string, _ io.Reader, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		common := addCommonFlags(flags)
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if flags.NArg() == 0 {
			fmt.Fprintln(stderr, "Missing question number or title")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		ref := strings.Join(flags.Args(), " ")

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

		q, ok := lookupQuestion(b, ref)
		if !ok {
			fmt.Fprintf(stderr, "No question %q\n", ref)
			return ExitError
		}
		writeQuestion(stdout, q)
		return ExitOK
	}
}

// lookupQuestion resolves a 1-based position or an exact title.
func lookupQuestion(b bank.Bank, ref string) (gift.Question, bool) {
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > b.Len() {
			return gift.Question{}, false
		}
		return b.Questions[n-1], true
	}
	return b.Find(ref)
}

func writeQuestion(w io.Writer, q gift.Question) {
	fmt.Fprintf(w, "Title: %s\n", q.Title)
	fmt.Fprintf(w, "Type: %s\n", q.Type)
	fmt.Fprintf(w, "Text: %s\n", q.Body)
	fmt.Fprintln(w, "Choices:")
	for i, choice := range q.Choices {
		mark := ""
		if choice.Correct {
			mark = " (Correct)"
		}
		fmt.Fprintf(w, "  [%d] %s%s\n", i+1, choice.Text, mark)
	}
}

// runSearch builds the handler for the search command.
func runSearch(cmd *Command) Handler {
	return func(args []string, _ io.Reader, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		common := addCommonFlags(flags)
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		keyword := strings.TrimSpace(strings.Join(flags.Args(), " "))
		if keyword == "" {
			fmt.Fprintln(stderr, "Missing keyword")
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

		hits := bank.SearchIndex(b.Questions, keyword)
		if len(hits) == 0 {
			fmt.Fprintln(stdout, "No questions found.")
			return ExitOK
		}
		for _, hit := range hits {
			fmt.Fprintf(stdout, "[%d] %s - %s\n", hit.Index+1, hit.Question.Title, hit.Question.Body)
		}
		return ExitOK
	}
}
