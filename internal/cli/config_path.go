package cli

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"quizbank/internal/bank"
	"quizbank/internal/config"
	"quizbank/internal/exam"
	"quizbank/internal/logging"
)

// commonFlags are accepted by every command that reads the bank.
type commonFlags struct {
	configPath *string
	verbose    *bool
}

func addCommonFlags(flags *flag.FlagSet) commonFlags {
	return commonFlags{
		configPath: flags.String("config", "", "Path to config file (default: search for .quizbank/config.yml)"),
		verbose:    flags.Bool("verbose", false, "Log debug output to stderr"),
	}
}

// parseFlags parses args and reports usage errors. ok is false when the
// command should return code immediately.
func parseFlags(cmd *Command, flags *flag.FlagSet, args []string, stdout, stderr io.Writer) (code int, ok bool) {
	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			printCommandUsage(cmd, stdout)
			return ExitOK, false
		}
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	return ExitOK, true
}

func rejectExtraArgs(cmd *Command, flags *flag.FlagSet, stderr io.Writer) bool {
	if flags.NArg() == 0 {
		return false
	}
	fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
	printCommandUsage(cmd, stderr)
	return true
}

// resolveConfigPath normalizes an explicit config path. Empty stays empty so
// config.Resolve searches from the working directory.
func resolveConfigPath(configPath string) (string, error) {
	if strings.TrimSpace(configPath) == "" {
		return "", nil
	}
	abs, err := filepath.Abs(configPath)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return abs, nil
}

// runtime is the resolved config and logger for one command invocation.
type runtime struct {
	cfg     config.Config
	logger  *zap.Logger
	verbose bool
	close   func()
}

func loadRuntime(common commonFlags, stderr io.Writer) (*runtime, error) {
	path, err := resolveConfigPath(*common.configPath)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Resolve(path)
	if err != nil {
		return nil, err
	}
	opts := logging.Options{Level: cfg.Log.Level, File: cfg.LogPath(), Fallback: stderr}
	if *common.verbose {
		opts.Level = "debug"
		opts.File = ""
	}
	logger, closeFn, err := logging.New(opts)
	if err != nil {
		return nil, err
	}
	return &runtime{cfg: cfg, logger: logger, verbose: *common.verbose, close: closeFn}, nil
}

// loadBank reads the configured bank directory.
func (rt *runtime) loadBank() (bank.Bank, error) {
	dir := rt.cfg.BankPath()
	b, err := rt.loader().Load(dir)
	if err != nil {
		return bank.Bank{}, err
	}
	rt.logger.Debug("bank loaded",
		zap.String("dir", dir),
		zap.Int("files", len(b.Sources)),
		zap.Int("questions", b.Len()),
		zap.Int("skipped", b.Skipped),
	)
	return b, nil
}

func (rt *runtime) loader() bank.Loader {
	return bank.Loader{Extension: rt.cfg.Extension}
}

func (rt *runtime) examWriter() *exam.Writer {
	return &exam.Writer{
		Dir:       rt.cfg.ExamPath(),
		Extension: rt.cfg.Extension,
		Logger:    rt.logger,
	}
}

func (rt *runtime) examLimits() exam.Limits {
	return exam.Limits{Min: rt.cfg.Exam.MinQuestions, Max: rt.cfg.Exam.MaxQuestions}
}
