package exam

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"quizbank/internal/bank"
	"quizbank/internal/gift"
)

var (
	// ErrInvalidName indicates an exam name that cannot be used as a file name.
	ErrInvalidName = errors.New("invalid exam name")
	// ErrExamExists indicates the exam file already exists.
	ErrExamExists = errors.New("exam already exists")
)

// Writer persists finalized exams as question files in Dir.
type Writer struct {
	Dir       string
	Extension string
	Overwrite bool
	Now       func() time.Time
	Logger    *zap.Logger
}

// Path returns the file path used for the exam name.
func (w *Writer) Path(name string) (string, error) {
	name = strings.TrimSpace(name)
	name = strings.TrimSuffix(name, w.extension())
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return filepath.Join(w.Dir, name+w.extension()), nil
}

// Write serializes questions into the named exam file, creating Dir when
// needed. The file opens with a comment line that parsers skip.
func (w *Writer) Write(name, draftID string, questions []gift.Question) (string, error) {
	path, err := w.Path(name)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create exam dir: %w", err)
	}
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !w.Overwrite {
		flags |= os.O_EXCL
	}
	file, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return "", fmt.Errorf("%w: %s", ErrExamExists, path)
		}
		return "", fmt.Errorf("create exam file: %w", err)
	}
	content := w.header(draftID, len(questions)) + gift.Serialize(questions) + "\n"
	if err := writeContent(file, content); err != nil {
		_ = file.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("write exam file: %w", err)
	}
	if err := file.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("close exam file: %w", err)
	}
	w.logger().Info("exam written",
		zap.String("path", path),
		zap.String("session_id", draftID),
		zap.Int("questions", len(questions)),
	)
	return path, nil
}

// writeContent writes the exam body; tests replace it to simulate a full disk.
var writeContent = func(file *os.File, content string) error {
	_, err := file.WriteString(content)
	return err
}

// List returns the exam files in Dir. A missing directory has no exams.
func (w *Writer) List() ([]string, error) {
	paths, err := bank.Loader{Extension: w.extension()}.List(w.Dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return paths, nil
}

func (w *Writer) header(draftID string, count int) string {
	now := time.Now
	if w.Now != nil {
		now = w.Now
	}
	return fmt.Sprintf("// exam %s, %d questions, created %s\n",
		draftID, count, now().UTC().Format(time.RFC3339))
}

func (w *Writer) extension() string {
	if w.Extension != "" {
		return w.Extension
	}
	return bank.DefaultExtension
}

func (w *Writer) logger() *zap.Logger {
	if w.Logger == nil {
		return zap.NewNop()
	}
	return w.Logger
}
