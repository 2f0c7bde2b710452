package config

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

var logLevels = []string{"debug", "info", "warn", "error", "off"}

// Validate checks a normalized config.
func Validate(cfg *Config) error {
	collector := &issueCollector{}

	if cfg.Version == 0 {
		collector.add("version", "is required")
	} else if cfg.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}
	if strings.ContainsAny(cfg.Extension, `/\`) || cfg.Extension == "." {
		collector.add("extension", fmt.Sprintf("invalid extension %q", cfg.Extension))
	}
	if cfg.BankDir == cfg.ExamDir {
		collector.add("exam_dir", "must differ from bank_dir")
	}

	validateExam(cfg.Exam, collector.add)

	switch cfg.UI.Mode {
	case "auto", "live", "plain":
	default:
		collector.add("ui.mode", fmt.Sprintf("invalid mode %q (expected auto|live|plain)", cfg.UI.Mode))
	}
	if cfg.UI.PageSize < 0 {
		collector.add("ui.page_size", "must be positive")
	}

	if !contains(logLevels, cfg.Log.Level) {
		collector.add("log.level", fmt.Sprintf("invalid level %q (expected %s)", cfg.Log.Level, strings.Join(logLevels, "|")))
	}

	return collector.result()
}

func validateExam(exam ExamConfig, add func(field, message string)) {
	if exam.MinQuestions < 1 {
		add("exam.min_questions", "must be at least 1")
	}
	if exam.MaxQuestions < 1 {
		add("exam.max_questions", "must be at least 1")
	}
	if exam.MinQuestions > exam.MaxQuestions {
		add("exam.max_questions", fmt.Sprintf("must be >= min_questions (%d)", exam.MinQuestions))
	}
}

func contains(values []string, value string) bool {
	for _, candidate := range values {
		if candidate == value {
			return true
		}
	}
	return false
}
