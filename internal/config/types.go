package config

// Config is the quizbank configuration loaded from .quizbank/config.yml.
type Config struct {
	Version   int        `yaml:"version"`
	BankDir   string     `yaml:"bank_dir"`
	ExamDir   string     `yaml:"exam_dir"`
	Extension string     `yaml:"extension"`
	Exam      ExamConfig `yaml:"exam"`
	UI        UIConfig   `yaml:"ui"`
	Log       LogConfig  `yaml:"log"`

	// Root is the directory relative paths resolve against. It is the
	// repository root for a loaded file and the working directory otherwise.
	Root string `yaml:"-"`
}

// ExamConfig bounds the size of finalized exams.
type ExamConfig struct {
	MinQuestions int `yaml:"min_questions"`
	MaxQuestions int `yaml:"max_questions"`
}

// UIConfig controls terminal output.
type UIConfig struct {
	Mode     string `yaml:"mode"`
	PageSize int    `yaml:"page_size"`
	NoColor  bool   `yaml:"no_color"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}
