package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"quizbank/internal/gift"
	"quizbank/internal/testutil"
	"quizbank/internal/ui/browse"
)

const testConfig = `version: 1
bank_dir: data
exam_dir: exams
exam:
  min_questions: 2
  max_questions: 3
ui:
  mode: plain
  page_size: 2
  no_color: true
log:
  level: "off"
`

// setupWorkspace writes a config and the sample bank and returns the config
// path.
func setupWorkspace(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	testutil.WriteFile(t, filepath.Join(root, "data"), "bank.gift", testutil.SampleBank)
	return testutil.WriteFile(t, filepath.Join(root, ".quizbank"), "config.yml", testConfig)
}

func run(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var out, err bytes.Buffer
	code := Run(args, strings.NewReader(stdin), &out, &err)
	return code, out.String(), err.String()
}

func TestRootHelp(t *testing.T) {
	code, out, errOut := run(t, "", "--help")
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d", ExitOK, code)
	}
	if errOut != "" {
		t.Fatalf("expected no stderr output, got %q", errOut)
	}
	if !strings.Contains(out, "Usage:") {
		t.Fatalf("expected usage header, got %q", out)
	}
	for _, cmd := range commands {
		if !strings.Contains(out, cmd.Name) {
			t.Fatalf("expected command %q in output", cmd.Name)
		}
	}
}

func TestNoArgsShowsUsage(t *testing.T) {
	code, out, errOut := run(t, "")
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if errOut != "" {
		t.Fatalf("expected no stderr output, got %q", errOut)
	}
	if !strings.Contains(out, "Usage:") {
		t.Fatalf("expected usage output, got %q", out)
	}
}

func TestUnknownCommand(t *testing.T) {
	code, out, errOut := run(t, "", "nope")
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if out != "" {
		t.Fatalf("expected no stdout output, got %q", out)
	}
	if !strings.Contains(errOut, "Unknown command") || !strings.Contains(errOut, "Usage:") {
		t.Fatalf("expected unknown command error with usage, got %q", errOut)
	}
}

func TestCommandHelp(t *testing.T) {
	for _, cmd := range commands {
		code, out, errOut := run(t, "", cmd.Name, "--help")
		if code != ExitOK {
			t.Fatalf("%s: expected exit %d, got %d", cmd.Name, ExitOK, code)
		}
		if errOut != "" {
			t.Fatalf("%s: expected no stderr output, got %q", cmd.Name, errOut)
		}
		for _, line := range cmd.Usage {
			if !strings.Contains(out, line) {
				t.Fatalf("%s: expected usage line %q", cmd.Name, line)
			}
		}
	}
}

func TestInitThenValidate(t *testing.T) {
	root := t.TempDir()
	code, out, errOut := run(t, "", "init", "--dir", root)
	if code != ExitOK {
		t.Fatalf("init: exit %d, stderr %q", code, errOut)
	}
	configPath := filepath.Join(root, ".quizbank", "config.yml")
	if !strings.Contains(out, configPath) {
		t.Fatalf("expected config path in output, got %q", out)
	}
	for _, dir := range []string{"data", "exams"} {
		if info, err := os.Stat(filepath.Join(root, dir)); err != nil || !info.IsDir() {
			t.Fatalf("expected %s directory: %v", dir, err)
		}
	}

	code, out, errOut = run(t, "", "validate", "--config", configPath, "--strict")
	if code != ExitOK {
		t.Fatalf("validate: exit %d, stderr %q", code, errOut)
	}
	if !strings.Contains(out, "Config OK") || !strings.Contains(out, "0 blocks skipped") {
		t.Fatalf("unexpected validate output %q", out)
	}

	code, _, errOut = run(t, "", "init", "--dir", root)
	if code != ExitError || !strings.Contains(errOut, "already exists") {
		t.Fatalf("expected second init to fail, got %d %q", code, errOut)
	}
}

func TestValidateReportsSkippedBlocks(t *testing.T) {
	configPath := setupWorkspace(t)
	code, out, _ := run(t, "", "validate", "--config", configPath)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d", ExitOK, code)
	}
	if !strings.Contains(out, "bank.gift: 3 parsed, 1 skipped") {
		t.Fatalf("expected per-file summary, got %q", out)
	}
	code, _, errOut := run(t, "", "validate", "--config", configPath, "--strict")
	if code != ExitError || !strings.Contains(errOut, "1 blocks could not be parsed") {
		t.Fatalf("expected strict failure, got %d %q", code, errOut)
	}
}

func TestValidateRejectsBadConfig(t *testing.T) {
	root := t.TempDir()
	path := testutil.WriteFile(t, filepath.Join(root, ".quizbank"), "config.yml", "version: 2\nui:\n  mode: fancy\n")
	code, _, errOut := run(t, "", "validate", "--config", path)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(errOut, "version") || !strings.Contains(errOut, "ui.mode") {
		t.Fatalf("expected every issue reported, got %q", errOut)
	}
}

func TestListPages(t *testing.T) {
	configPath := setupWorkspace(t)
	code, out, errOut := run(t, "", "list", "--config", configPath)
	if code != ExitOK {
		t.Fatalf("exit %d, stderr %q", code, errOut)
	}
	want := "[1] Q1\n[2] Q2\nPage 1/2, 3 questions\n1 blocks skipped\n"
	if out != want {
		t.Fatalf("unexpected list output:\n%s", out)
	}

	_, out, _ = run(t, "", "list", "--config", configPath, "--page", "2")
	if !strings.HasPrefix(out, "[3] Q3\nPage 2/2") {
		t.Fatalf("unexpected second page:\n%s", out)
	}

	_, out, _ = run(t, "", "list", "--config", configPath, "--page-size", "10")
	if !strings.Contains(out, "[3] Q3\nPage 1/1") {
		t.Fatalf("unexpected single page:\n%s", out)
	}
}

func TestListMissingBank(t *testing.T) {
	root := t.TempDir()
	path := testutil.WriteFile(t, filepath.Join(root, ".quizbank"), "config.yml", testConfig)
	code, _, errOut := run(t, "", "list", "--config", path)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(errOut, "read bank dir") {
		t.Fatalf("expected bank dir error, got %q", errOut)
	}
}

func TestShowByNumberAndTitle(t *testing.T) {
	configPath := setupWorkspace(t)
	code, out, errOut := run(t, "", "show", "--config", configPath, "1")
	if code != ExitOK {
		t.Fatalf("exit %d, stderr %q", code, errOut)
	}
	for _, line := range []string{"Title: Q1", "Type: multiple-choice", "Text: What is 2+2?", "[1] 4 (Correct)", "[2] 3\n"} {
		if !strings.Contains(out, line) {
			t.Fatalf("expected %q in output:\n%s", line, out)
		}
	}

	_, out, _ = run(t, "", "show", "--config", configPath, "Q3")
	if !strings.Contains(out, "Type: true-false") {
		t.Fatalf("expected true-false question, got:\n%s", out)
	}

	code, _, errOut = run(t, "", "show", "--config", configPath, "9")
	if code != ExitError || !strings.Contains(errOut, `No question "9"`) {
		t.Fatalf("expected missing question error, got %d %q", code, errOut)
	}
}

func TestSearch(t *testing.T) {
	configPath := setupWorkspace(t)
	code, out, _ := run(t, "", "search", "--config", configPath, "FRUIT")
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d", ExitOK, code)
	}
	if out != "[2] Q2 - Which is a fruit?\n" {
		t.Fatalf("unexpected search output %q", out)
	}
	_, out, _ = run(t, "", "search", "--config", configPath, "ocean")
	if out != "No questions found.\n" {
		t.Fatalf("unexpected empty search output %q", out)
	}
	code, _, _ = run(t, "", "search", "--config", configPath)
	if code != ExitUsage {
		t.Fatalf("expected exit %d for missing keyword, got %d", ExitUsage, code)
	}
}

func TestSearchNumbersDuplicateTitlesByPosition(t *testing.T) {
	root := t.TempDir()
	dataDir := filepath.Join(root, "data")
	testutil.WriteFile(t, dataDir, "a.gift", "::Q1::Apples are red {=yes ~no}\n")
	testutil.WriteFile(t, dataDir, "b.gift", "::Q1::Bananas are yellow {=yes ~no}\n")
	configPath := testutil.WriteFile(t, filepath.Join(root, ".quizbank"), "config.yml", testConfig)

	code, out, errOut := run(t, "", "search", "--config", configPath, "bananas")
	if code != ExitOK {
		t.Fatalf("exit %d, stderr %q", code, errOut)
	}
	if out != "[2] Q1 - Bananas are yellow\n" {
		t.Fatalf("unexpected search output %q", out)
	}
	_, out, _ = run(t, "", "show", "--config", configPath, "2")
	if !strings.Contains(out, "Text: Bananas are yellow") {
		t.Fatalf("expected show to open the matched question, got:\n%s", out)
	}
}

func TestExamBuildAndList(t *testing.T) {
	configPath := setupWorkspace(t)
	code, out, errOut := run(t, "", "exam", "build", "--config", configPath, "--name", "midterm", "Q1", "Q3")
	if code != ExitOK {
		t.Fatalf("exit %d, stderr %q", code, errOut)
	}
	examPath := filepath.Join(filepath.Dir(filepath.Dir(configPath)), "exams", "midterm.gift")
	if !strings.Contains(out, examPath) {
		t.Fatalf("expected exam path in output, got %q", out)
	}
	questions, skipped := gift.ParseAll(testutil.ReadFile(t, examPath))
	if skipped != 0 || len(questions) != 2 || questions[0].Title != "Q1" || questions[1].Title != "Q3" {
		t.Fatalf("unexpected exam contents: %+v (skipped %d)", questions, skipped)
	}

	code, _, errOut = run(t, "", "exam", "build", "--config", configPath, "--name", "midterm", "Q1", "Q2")
	if code != ExitError || !strings.Contains(errOut, "exam already exists") {
		t.Fatalf("expected existing exam error, got %d %q", code, errOut)
	}

	code, out, _ = run(t, "", "exam", "list", "--config", configPath)
	if code != ExitOK || out != "midterm\t2 questions\n" {
		t.Fatalf("unexpected exam list %d %q", code, out)
	}
}

func TestExamBuildRejects(t *testing.T) {
	configPath := setupWorkspace(t)
	cases := []struct {
		name string
		args []string
		code int
		want string
	}{
		{name: "too few", args: []string{"--name", "a", "Q1"}, code: ExitError, want: "at least 2"},
		{name: "duplicate", args: []string{"--name", "a", "Q1", "Q1"}, code: ExitError, want: "already"},
		{name: "unknown title", args: []string{"--name", "a", "Q1", "Nope"}, code: ExitError, want: `No question titled "Nope"`},
		{name: "missing name", args: []string{"Q1", "Q2"}, code: ExitUsage, want: "Missing --name"},
		{name: "bad name", args: []string{"--name", "../x", "Q1", "Q2"}, code: ExitUsage, want: "invalid exam name"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			args := append([]string{"exam", "build", "--config", configPath}, tc.args...)
			code, _, errOut := run(t, "", args...)
			if code != tc.code {
				t.Fatalf("expected exit %d, got %d (%q)", tc.code, code, errOut)
			}
			if !strings.Contains(errOut, tc.want) {
				t.Fatalf("expected %q in stderr, got %q", tc.want, errOut)
			}
		})
	}
}

func TestExamListEmpty(t *testing.T) {
	configPath := setupWorkspace(t)
	code, out, _ := run(t, "", "exam", "list", "--config", configPath)
	if code != ExitOK || out != "No exams found.\n" {
		t.Fatalf("unexpected output %d %q", code, out)
	}
	code, _, _ = run(t, "", "exam", "grade")
	if code != ExitUsage {
		t.Fatalf("expected exit %d for unknown subcommand, got %d", ExitUsage, code)
	}
}

func TestExportFormats(t *testing.T) {
	configPath := setupWorkspace(t)

	code, out, errOut := run(t, "", "export", "--config", configPath, "--format", "json")
	if code != ExitOK {
		t.Fatalf("exit %d, stderr %q", code, errOut)
	}
	var decoded []map[string]any
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if len(decoded) != 3 || decoded[0]["title"] != "Q1" || decoded[2]["type"] != "true-false" {
		t.Fatalf("unexpected json export: %v", decoded)
	}

	outPath := filepath.Join(t.TempDir(), "bank.yml")
	code, _, errOut = run(t, "", "export", "--config", configPath, "--output", outPath)
	if code != ExitOK {
		t.Fatalf("exit %d, stderr %q", code, errOut)
	}
	var fromYAML []struct {
		Title   string `yaml:"title"`
		Type    string `yaml:"type"`
		Choices []struct {
			Text    string `yaml:"text"`
			Correct bool   `yaml:"correct"`
		} `yaml:"choices"`
	}
	if err := yaml.Unmarshal([]byte(testutil.ReadFile(t, outPath)), &fromYAML); err != nil {
		t.Fatalf("decode yaml: %v", err)
	}
	if len(fromYAML) != 3 || fromYAML[1].Type != "multiple-choice" || !fromYAML[1].Choices[0].Correct {
		t.Fatalf("unexpected yaml export: %+v", fromYAML)
	}

	code, _, _ = run(t, "", "export", "--config", configPath, "--format", "xml")
	if code != ExitUsage {
		t.Fatalf("expected exit %d for bad format, got %d", ExitUsage, code)
	}
}

func TestStatsText(t *testing.T) {
	configPath := setupWorkspace(t)
	htmlPath := filepath.Join(t.TempDir(), "out", "report.html")
	code, out, errOut := run(t, "", "stats", "--config", configPath, "--html", htmlPath)
	if code != ExitOK {
		t.Fatalf("exit %d, stderr %q", code, errOut)
	}
	for _, want := range []string{"data: 3 questions", "1 malformed blocks skipped", "By type", "multiple-choice", "true-false"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	page := testutil.ReadFile(t, htmlPath)
	if !strings.Contains(page, "<html") || !strings.Contains(page, "multiple-choice") {
		t.Fatalf("unexpected html report:\n%s", page)
	}

	code, _, _ = run(t, "", "stats", "--config", configPath, "--exam", "a", "--file", "b")
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
}

func TestMenuBuildsExam(t *testing.T) {
	configPath := setupWorkspace(t)
	input := strings.Join([]string{"1", "1", "1", "2", "1", "draft", "2", "quiz", "5"}, "\n") + "\n"
	code, out, errOut := run(t, input, "menu", "--config", configPath)
	if code != ExitOK {
		t.Fatalf("exit %d, stderr %q", code, errOut)
	}
	if !strings.Contains(out, "Goodbye!") {
		t.Fatalf("expected session to end, got:\n%s", out)
	}
	examPath := filepath.Join(filepath.Dir(filepath.Dir(configPath)), "exams", "quiz.gift")
	questions, _ := gift.ParseAll(testutil.ReadFile(t, examPath))
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions in exam, got %d", len(questions))
	}
}

func TestBrowseFallsBackToPlainList(t *testing.T) {
	configPath := setupWorkspace(t)
	original := isTerminal
	t.Cleanup(func() { isTerminal = original })
	isTerminal = func(io.Writer) bool { return false }

	code, out, errOut := run(t, "", "browse", "--config", configPath, "--ui", "live")
	if code != ExitOK {
		t.Fatalf("exit %d, stderr %q", code, errOut)
	}
	if !strings.Contains(errOut, "printing the plain question list") {
		t.Fatalf("expected fallback warning, got %q", errOut)
	}
	if !strings.Contains(out, "[3] Q3\nPage 1/1, 3 questions") {
		t.Fatalf("expected full plain list, got:\n%s", out)
	}
}

func TestBrowseRunsProgramOnTTY(t *testing.T) {
	configPath := setupWorkspace(t)
	originalTerm, originalProgram := isTerminal, browseProgram
	t.Cleanup(func() {
		isTerminal = originalTerm
		browseProgram = originalProgram
	})
	isTerminal = func(io.Writer) bool { return true }
	var got []gift.Question
	var gotOpts browse.Options
	browseProgram = func(_ io.Reader, _ io.Writer, questions []gift.Question, opts browse.Options) error {
		got = questions
		gotOpts = opts
		return nil
	}

	code, out, errOut := run(t, "", "browse", "--config", configPath, "--ui", "auto")
	if code != ExitOK {
		t.Fatalf("exit %d, stderr %q", code, errOut)
	}
	if out != "" {
		t.Fatalf("expected no plain output, got %q", out)
	}
	if len(got) != 3 || gotOpts.Title != "data" || !gotOpts.NoColor {
		t.Fatalf("unexpected program input: %d questions, %+v", len(got), gotOpts)
	}
}
