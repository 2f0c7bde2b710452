package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// uiMode is the configured ui.mode or --ui value.
type uiMode string

const (
	uiAuto  uiMode = "auto"
	uiLive  uiMode = "live"
	uiPlain uiMode = "plain"
)

func parseUIMode(raw string) (uiMode, error) {
	switch mode := uiMode(strings.ToLower(strings.TrimSpace(raw))); mode {
	case "":
		return uiAuto, nil
	case uiAuto, uiLive, uiPlain:
		return mode, nil
	default:
		return "", fmt.Errorf("invalid ui mode %q (expected auto|live|plain)", raw)
	}
}

// browseOutput is how the browse command presents the bank.
type browseOutput int

const (
	outputPlainList browseOutput = iota
	outputTable
)

// browsePlan is the chosen output plus a warning for the user when an
// explicit live request was downgraded.
type browsePlan struct {
	output  browseOutput
	warning string
}

// isTerminal reports whether a writer is a TTY.
var isTerminal = defaultIsTerminal

// planBrowse picks the interactive table or the plain numbered list. The
// table needs a terminal on stdout, a quiet stderr (verbose logs would tear
// the alternate screen) and at least one question to show.
func planBrowse(raw string, verbose bool, questions int, stdout io.Writer) (browsePlan, error) {
	mode, err := parseUIMode(raw)
	if err != nil {
		return browsePlan{}, err
	}
	if mode == uiPlain || questions == 0 {
		return browsePlan{output: outputPlainList}, nil
	}
	var reason string
	switch {
	case verbose:
		reason = "--verbose writes logs to stderr"
	case !isTerminal(stdout):
		reason = "stdout is not a TTY"
	default:
		return browsePlan{output: outputTable}, nil
	}
	if mode == uiAuto {
		return browsePlan{output: outputPlainList}, nil
	}
	return browsePlan{
		output:  outputPlainList,
		warning: fmt.Sprintf("Live UI requested but %s; printing the plain question list.", reason),
	}, nil
}

// defaultIsTerminal inspects stdout for TTY support.
func defaultIsTerminal(stdout io.Writer) bool {
	if stdout == nil {
		return false
	}
	if file, ok := stdout.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := stdout.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}
