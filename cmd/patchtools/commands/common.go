// Package commands provides CLI command handlers for patchtools.
package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/erraggy/patchtools/internal/cliutil"
	"github.com/erraggy/patchtools/internal/docload"
	"github.com/erraggy/patchtools/internal/fileutil"
	"github.com/erraggy/patchtools/patcherrors"
)

// Output format names accepted by the -format flag.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = docload.StdinPath

// ExitCodeTestFailed is returned when a patch aborts on a failed test
// operation, so scripts can distinguish "precondition did not hold" from
// malformed input.
const ExitCodeTestFailed = 2

// ExitCode maps an error to the process exit code for it.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, patcherrors.ErrTestFailed) {
		return ExitCodeTestFailed
	}
	return 1
}

// parseOutputFormat validates a -format flag value.
func parseOutputFormat(name string) (docload.Format, error) {
	switch name {
	case FormatJSON:
		return docload.FormatJSON, nil
	case FormatYAML:
		return docload.FormatYAML, nil
	default:
		return docload.FormatUnknown, fmt.Errorf("invalid format '%s'. Valid formats: %s, %s", name, FormatJSON, FormatYAML)
	}
}

// ValidateOutputPath checks if the output path is safe to write to.
func ValidateOutputPath(outputPath string, inputPaths []string) error {
	absOutputPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}

	// Refuse to overwrite any of the inputs.
	for _, inputPath := range inputPaths {
		if inputPath == StdinFilePath {
			continue
		}
		absInputPath, err := filepath.Abs(inputPath)
		if err != nil {
			return fmt.Errorf("invalid input path %s: %w", inputPath, err)
		}
		if absOutputPath == absInputPath {
			return fmt.Errorf("output file %s would overwrite input file %s", outputPath, inputPath)
		}
	}

	if _, err := os.Stat(outputPath); err == nil {
		cliutil.Writef(os.Stderr, "Warning: output file %s already exists and will be overwritten\n", outputPath)
	}

	return RejectSymlinkOutput(filepath.Clean(outputPath))
}

// RejectSymlinkOutput checks if the output path is a symlink and returns an
// error if so. This prevents symlink attacks where a symlink could redirect
// output to an unintended location.
func RejectSymlinkOutput(cleanedPath string) error {
	info, err := os.Lstat(cleanedPath)
	if os.IsNotExist(err) {
		// File doesn't exist yet, safe to write.
		return nil
	}
	if err != nil {
		return fmt.Errorf("commands: checking output path: %w", err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("commands: refusing to write to symlink: %s", cleanedPath)
	}
	return nil
}

// writeOutput writes encoded output either to the given file or to stdout
// when path is empty. Output always ends with a newline.
func writeOutput(path string, data []byte) error {
	if len(data) == 0 || data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	if path == "" {
		cliutil.Writef(os.Stdout, "%s", data)
		return nil
	}
	if err := os.WriteFile(path, data, fileutil.OwnerReadWrite); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// FormatDocPath returns a display-friendly path for a document.
// Returns "<stdin>" if the path is StdinFilePath, otherwise the path as-is.
func FormatDocPath(path string) string {
	if path == StdinFilePath {
		return "<stdin>"
	}
	return path
}
