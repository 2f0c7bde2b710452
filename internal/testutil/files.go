package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile writes body to dir/name, creating dir, and returns the path.
func WriteFile(t testing.TB, dir, name, body string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// ReadFile returns the contents of path.
func ReadFile(t testing.TB, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

// SampleBank is a small question file with two multiple-choice questions,
// one true/false question and one malformed block.
const SampleBank = `// sample bank
::Q1::What is 2+2? {=4 ~3 ~5}
::Q2::Which is a fruit? {=Apple ~Carrot ~Potato}
::Broken::no choices here
::Q3::True or false: the sky is green {=False}
`
