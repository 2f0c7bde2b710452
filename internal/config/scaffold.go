package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultConfig = `version: 1
bank_dir: data
exam_dir: exams
extension: .gift

exam:
  min_questions: 15
  max_questions: 20

ui:
  mode: auto
  page_size: 20
  no_color: false

log:
  level: warn
  file: ""
`

const sampleBank = `// Sample question bank. Each question starts with ::title::.
::Sample addition::What is 2+2?{
=4
~3
~5
}

::Sample truth::True or false: water boils at 100 degrees Celsius at sea level.{
=True
}
`

// Scaffold writes a default config under root along with empty bank and
// exam directories. An existing config is never overwritten.
func Scaffold(root string) (string, error) {
	configPath := ConfigPath(root)
	if info, err := os.Stat(configPath); err == nil {
		if info.IsDir() {
			return "", fmt.Errorf("config path %q is a directory", configPath)
		}
		return "", fmt.Errorf("config file already exists at %q", configPath)
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("stat config file: %w", err)
	}

	if err := os.MkdirAll(ConfigDir(root), 0o755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}
	bankDir := filepath.Join(root, DefaultBankDir)
	for _, dir := range []string{bankDir, filepath.Join(root, DefaultExamDir)} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(configPath, []byte(defaultConfig), 0o644); err != nil {
		return "", fmt.Errorf("write config file: %w", err)
	}

	samplePath := filepath.Join(bankDir, "sample"+DefaultExtension)
	if _, err := os.Stat(samplePath); os.IsNotExist(err) {
		if err := os.WriteFile(samplePath, []byte(sampleBank), 0o644); err != nil {
			return "", fmt.Errorf("write sample bank: %w", err)
		}
	}
	return configPath, nil
}
