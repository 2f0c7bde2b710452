package config

import (
	"os"
	"strings"
)

// Defaults applied by Normalize.
const (
	DefaultBankDir   = "data"
	DefaultExamDir   = "exams"
	DefaultExtension = ".gift"
	DefaultPageSize  = 20
	DefaultMinExam   = 15
	DefaultMaxExam   = 20
	DefaultUIMode    = "auto"
	DefaultLogLevel  = "warn"
)

// Environment variables that override file settings.
const (
	EnvBankDir  = "QUIZBANK_BANK_DIR"
	EnvExamDir  = "QUIZBANK_EXAM_DIR"
	EnvLogLevel = "QUIZBANK_LOG_LEVEL"
)

// Default returns the configuration used when no config file exists.
func Default(root string) Config {
	cfg := Config{Version: 1, Root: root}
	Normalize(&cfg)
	return cfg
}

// Normalize trims values and fills in defaults.
func Normalize(cfg *Config) {
	cfg.BankDir = orDefault(cfg.BankDir, DefaultBankDir)
	cfg.ExamDir = orDefault(cfg.ExamDir, DefaultExamDir)
	cfg.Extension = orDefault(cfg.Extension, DefaultExtension)
	if !strings.HasPrefix(cfg.Extension, ".") {
		cfg.Extension = "." + cfg.Extension
	}
	if cfg.Exam.MinQuestions == 0 {
		cfg.Exam.MinQuestions = DefaultMinExam
	}
	if cfg.Exam.MaxQuestions == 0 {
		cfg.Exam.MaxQuestions = DefaultMaxExam
	}
	cfg.UI.Mode = strings.ToLower(orDefault(cfg.UI.Mode, DefaultUIMode))
	if cfg.UI.PageSize == 0 {
		cfg.UI.PageSize = DefaultPageSize
	}
	cfg.Log.Level = strings.ToLower(orDefault(cfg.Log.Level, DefaultLogLevel))
	cfg.Log.File = strings.TrimSpace(cfg.Log.File)
}

// ApplyEnv overrides settings from the environment.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if value, ok := lookup(EnvBankDir); ok && strings.TrimSpace(value) != "" {
		cfg.BankDir = strings.TrimSpace(value)
	}
	if value, ok := lookup(EnvExamDir); ok && strings.TrimSpace(value) != "" {
		cfg.ExamDir = strings.TrimSpace(value)
	}
	if value, ok := lookup(EnvLogLevel); ok && strings.TrimSpace(value) != "" {
		cfg.Log.Level = strings.ToLower(strings.TrimSpace(value))
	}
}

func orDefault(value, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return fallback
}
