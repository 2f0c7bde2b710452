package bank

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"quizbank/internal/gift"
)

// DefaultExtension marks question files in bank and exam directories.
const DefaultExtension = ".gift"

// Source summarizes one parsed file.
type Source struct {
	Path    string
	Parsed  int
	Skipped int
}

// Bank is the in-memory view of every question found in a directory, in file
// enumeration order and then in file order. It is rebuilt on every load.
type Bank struct {
	Dir       string
	Questions []gift.Question
	Sources   []Source
	Skipped   int
}

// Loader reads question files from disk.
type Loader struct {
	// Extension selects files by suffix. Empty means DefaultExtension.
	Extension string
}

// Load reads every question file in dir with the default loader.
func Load(dir string) (Bank, error) {
	return Loader{}.Load(dir)
}

// LoadAll returns just the questions of every question file in dir.
func LoadAll(dir string) ([]gift.Question, error) {
	b, err := Load(dir)
	if err != nil {
		return nil, err
	}
	return b.Questions, nil
}

// LoadFile reads a single question file, such as a finalized exam.
func LoadFile(path string) (Bank, error) {
	return Loader{}.LoadFile(path)
}

// Load reads every matching file in dir. A missing directory is an error; a
// directory without matching files yields an empty bank.
func (l Loader) Load(dir string) (Bank, error) {
	paths, err := l.List(dir)
	if err != nil {
		return Bank{}, err
	}
	out := Bank{Dir: dir, Questions: []gift.Question{}}
	for _, path := range paths {
		if err := out.addFile(path); err != nil {
			return Bank{}, err
		}
	}
	return out, nil
}

// LoadFile reads a single file regardless of its extension.
func (l Loader) LoadFile(path string) (Bank, error) {
	out := Bank{Dir: filepath.Dir(path), Questions: []gift.Question{}}
	if err := out.addFile(path); err != nil {
		return Bank{}, err
	}
	return out, nil
}

// List returns the matching file paths in dir in directory listing order.
func (l Loader) List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read bank dir: %w", err)
	}
	ext := l.extension()
	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), ext) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if !isQuestionFile(entry, path) {
			continue
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// isQuestionFile accepts regular files and symlinks that resolve to one.
// Dangling links are skipped.
func isQuestionFile(entry fs.DirEntry, path string) bool {
	mode := entry.Type()
	if mode.IsRegular() {
		return true
	}
	if mode&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func (l Loader) extension() string {
	if ext := strings.TrimSpace(l.Extension); ext != "" {
		return ext
	}
	return DefaultExtension
}

// addFile parses one file and appends its questions.
func (b *Bank) addFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read question file %s: %w", path, err)
	}
	questions, skipped := gift.ParseAll(string(data))
	b.Questions = append(b.Questions, questions...)
	b.Sources = append(b.Sources, Source{Path: path, Parsed: len(questions), Skipped: skipped})
	b.Skipped += skipped
	return nil
}

// Len returns the number of questions.
func (b Bank) Len() int {
	return len(b.Questions)
}

// Find returns the question with the given title.
func (b Bank) Find(title string) (gift.Question, bool) {
	for _, q := range b.Questions {
		if q.Title == title {
			return q, true
		}
	}
	return gift.Question{}, false
}
