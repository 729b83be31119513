package config

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/tessro/ringer/internal/method"
)

// Validation errors.
var (
	ErrInvalidStage            = errors.New("stage must be between 2 and 24")
	ErrEmptyExecutable         = errors.New("executable cannot be empty")
	ErrExecutableNotFound      = errors.New("executable not found")
	ErrExecutableNotExecutable = errors.New("executable is not executable")
	ErrInvalidLogLevel         = errors.New("log_level must be 'debug', 'info', 'warn', or 'error'")
)

// ValidateStage checks a stage against the stepper range.
func ValidateStage(stage int) error {
	if stage < method.MinStage || stage > method.MaxStage {
		return fmt.Errorf("%w: %d", ErrInvalidStage, stage)
	}
	return nil
}

// ValidateExecutable checks that path names a runnable file.
// A bare name (no path separator) is looked up in PATH.
func ValidateExecutable(path string) error {
	if path == "" {
		return ErrEmptyExecutable
	}
	if !strings.ContainsRune(path, os.PathSeparator) && !strings.ContainsRune(path, '/') {
		if _, err := exec.LookPath(path); err != nil {
			return fmt.Errorf("%w: %s", ErrExecutableNotFound, path)
		}
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrExecutableNotFound, path)
		}
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrExecutableNotExecutable, path)
	}
	if runtime.GOOS != "windows" && info.Mode()&0111 == 0 {
		return fmt.Errorf("%w: %s", ErrExecutableNotExecutable, path)
	}
	return nil
}

// ValidateLogLevel checks a log level string. Empty means default.
func ValidateLogLevel(level string) error {
	switch strings.ToLower(level) {
	case "", "debug", "info", "warn", "warning", "error":
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidLogLevel, level)
}

// Validate checks the file's own values. It does not touch the
// filesystem; use ValidateExecutable for that.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	var errs []error
	if c.Defaults.Stage != 0 {
		if err := ValidateStage(c.Defaults.Stage); err != nil {
			errs = append(errs, fmt.Errorf("defaults.stage: %w", err))
		}
	}
	if err := ValidateLogLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
