package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/patchtools/differ"
	"github.com/erraggy/patchtools/internal/cliutil"
	"github.com/erraggy/patchtools/internal/docload"
)

// DiffFlags contains flags for the diff command.
type DiffFlags struct {
	Format string
	Output string
}

// SetupDiffFlags creates and configures a FlagSet for the diff command.
// Returns the FlagSet and a DiffFlags struct with bound flag variables.
func SetupDiffFlags() (*flag.FlagSet, *DiffFlags) {
	fs := flag.NewFlagSet("diff", flag.ContinueOnError)
	flags := &DiffFlags{}

	fs.StringVar(&flags.Format, "format", FormatJSON, "patch output format: json or yaml")
	fs.StringVar(&flags.Output, "output", "", "write the patch to a file instead of stdout")
	fs.StringVar(&flags.Output, "o", "", "write the patch to a file instead of stdout")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: patchtools diff [flags] <old> <new>\n\n")
		cliutil.Writef(fs.Output(), "Compare two JSON or YAML documents and emit an RFC 6902 patch that\n")
		cliutil.Writef(fs.Output(), "transforms the old document into the new one. Use '-' to read one\n")
		cliutil.Writef(fs.Output(), "input from stdin.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  patchtools diff old.json new.json\n")
		cliutil.Writef(fs.Output(), "  patchtools diff -format yaml old.yaml new.yaml\n")
		cliutil.Writef(fs.Output(), "  patchtools diff -o changes.json old.json new.json\n")
		cliutil.Writef(fs.Output(), "  cat new.json | patchtools diff old.json -\n")
		cliutil.Writef(fs.Output(), "\nExit Status:\n")
		cliutil.Writef(fs.Output(), "  0    Diff computed (an empty patch means the documents are equal)\n")
		cliutil.Writef(fs.Output(), "  1    Input could not be read or decoded\n")
	}

	return fs, flags
}

// HandleDiff executes the diff command.
func HandleDiff(args []string) error {
	fs, flags := SetupDiffFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("diff command requires exactly two document paths")
	}

	oldPath := fs.Arg(0)
	newPath := fs.Arg(1)
	if oldPath == StdinFilePath && newPath == StdinFilePath {
		return fmt.Errorf("only one input may come from stdin")
	}

	format, err := parseOutputFormat(flags.Format)
	if err != nil {
		return err
	}
	if flags.Output != "" {
		if err := ValidateOutputPath(flags.Output, []string{oldPath, newPath}); err != nil {
			return err
		}
	}

	oldDoc, err := docload.LoadValue(oldPath, docload.FormatUnknown, os.Stdin)
	if err != nil {
		return fmt.Errorf("loading %s: %w", FormatDocPath(oldPath), err)
	}
	newDoc, err := docload.LoadValue(newPath, docload.FormatUnknown, os.Stdin)
	if err != nil {
		return fmt.Errorf("loading %s: %w", FormatDocPath(newPath), err)
	}

	p, err := differ.Diff(oldDoc, newDoc)
	if err != nil {
		return fmt.Errorf("comparing documents: %w", err)
	}

	data, err := docload.MarshalPatch(p, format)
	if err != nil {
		return fmt.Errorf("encoding patch: %w", err)
	}
	return writeOutput(flags.Output, data)
}
