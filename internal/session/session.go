package session

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"quizbank/internal/bank"
	"quizbank/internal/exam"
	"quizbank/internal/gift"
)

// Options configures an interactive session.
type Options struct {
	BankDir  string
	Loader   bank.Loader
	Writer   *exam.Writer
	Limits   exam.Limits
	PageSize int
	NoColor  bool
	Logger   *zap.Logger
}

// Session is one interactive menu run. It owns the exam draft and reads one
// line of input per prompt.
type Session struct {
	opts   Options
	in     *bufio.Scanner
	out    io.Writer
	logger *zap.Logger
	styles styles

	draft     *exam.Draft
	questions []gift.Question
	page      int
	current   int
}

// state is a menu screen; each screen returns the next one.
type state int

const (
	stateMain state = iota
	stateList
	stateDetail
	stateDraft
	stateFinalize
	stateSearch
	stateQuit
)

// New creates a session reading from in and writing to out.
func New(in io.Reader, out io.Writer, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.PageSize <= 0 {
		opts.PageSize = 20
	}
	draft := exam.NewDraft(opts.Limits)
	return &Session{
		opts:   opts,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logger.With(zap.String("session_id", draft.ID)),
		styles: newStyles(opts.NoColor),
		draft:  draft,
		page:   1,
	}
}

// Draft exposes the session's exam draft.
func (s *Session) Draft() *exam.Draft {
	return s.draft
}

// Run drives the menu until the user quits or input ends.
func (s *Session) Run() error {
	s.logger.Debug("session started")
	current := stateMain
	for current != stateQuit {
		var err error
		current, err = s.step(current)
		if err != nil {
			return err
		}
	}
	s.logger.Debug("session ended", zap.Int("draft_questions", s.draft.Len()))
	return s.in.Err()
}

func (s *Session) step(current state) (state, error) {
	switch current {
	case stateMain:
		return s.mainMenu(), nil
	case stateList:
		return s.listQuestions(), nil
	case stateDetail:
		return s.showDetail(), nil
	case stateDraft:
		return s.showDraft(), nil
	case stateFinalize:
		return s.finalize(), nil
	case stateSearch:
		return s.search(), nil
	default:
		return stateQuit, fmt.Errorf("unknown menu state %d", current)
	}
}

// prompt prints label and reads one trimmed line. ok is false at end of input.
func (s *Session) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		fmt.Fprintln(s.out)
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Session) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

func (s *Session) printf(format string, a ...any) {
	fmt.Fprintf(s.out, format, a...)
}

// reload rebuilds the question list from disk.
func (s *Session) reload() bool {
	b, err := s.opts.Loader.Load(s.opts.BankDir)
	if err != nil {
		s.logger.Warn("load bank failed", zap.String("dir", s.opts.BankDir), zap.Error(err))
		s.println(s.styles.err.Render("Cannot load questions: " + err.Error()))
		return false
	}
	s.logger.Debug("bank loaded",
		zap.String("dir", s.opts.BankDir),
		zap.Int("questions", b.Len()),
		zap.Int("skipped", b.Skipped),
	)
	s.questions = b.Questions
	return true
}
