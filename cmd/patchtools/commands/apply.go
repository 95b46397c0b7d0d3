package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/patchtools/internal/cliutil"
	"github.com/erraggy/patchtools/internal/docload"
	"github.com/erraggy/patchtools/patch"
)

// ApplyFlags contains flags for the apply command.
type ApplyFlags struct {
	PatchPath string
	Lenient   bool
	Format    string
	Output    string
}

// SetupApplyFlags creates and configures a FlagSet for the apply command.
// Returns the FlagSet and an ApplyFlags struct with bound flag variables.
func SetupApplyFlags() (*flag.FlagSet, *ApplyFlags) {
	fs := flag.NewFlagSet("apply", flag.ContinueOnError)
	flags := &ApplyFlags{}

	fs.StringVar(&flags.PatchPath, "patch", "", "path to the RFC 6902 patch file (required; '-' for stdin)")
	fs.StringVar(&flags.PatchPath, "p", "", "path to the RFC 6902 patch file (required; '-' for stdin)")
	fs.BoolVar(&flags.Lenient, "lenient", false, "relax existence/absence preconditions on add/remove/replace")
	fs.StringVar(&flags.Format, "format", FormatJSON, "result output format: json or yaml")
	fs.StringVar(&flags.Output, "output", "", "write the result to a file instead of stdout")
	fs.StringVar(&flags.Output, "o", "", "write the result to a file instead of stdout")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: patchtools apply [flags] -p <patch> <document>\n\n")
		cliutil.Writef(fs.Output(), "Apply an RFC 6902 patch to a JSON or YAML document and print the\n")
		cliutil.Writef(fs.Output(), "patched result. The input document is never modified in place.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nModes:\n")
		cliutil.Writef(fs.Output(), "  Default (strict):\n")
		cliutil.Writef(fs.Output(), "    add fails on an existing key, remove and replace fail on an\n")
		cliutil.Writef(fs.Output(), "    absent target or out-of-range index.\n\n")
		cliutil.Writef(fs.Output(), "  -lenient:\n")
		cliutil.Writef(fs.Output(), "    remove of an absent target is a no-op, replace of an absent\n")
		cliutil.Writef(fs.Output(), "    target degrades to an add, add overwrites existing keys.\n")
		cliutil.Writef(fs.Output(), "    move, copy, and test still require their source to exist.\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  patchtools apply -p changes.json doc.json\n")
		cliutil.Writef(fs.Output(), "  patchtools apply -lenient -p changes.yaml doc.yaml\n")
		cliutil.Writef(fs.Output(), "  cat doc.json | patchtools apply -p changes.json -\n")
		cliutil.Writef(fs.Output(), "\nExit Status:\n")
		cliutil.Writef(fs.Output(), "  0    Patch applied\n")
		cliutil.Writef(fs.Output(), "  1    Malformed input, or a precondition failed in strict mode\n")
		cliutil.Writef(fs.Output(), "  2    A test operation's assertion did not hold\n")
	}

	return fs, flags
}

// HandleApply executes the apply command.
func HandleApply(args []string) error {
	fs, flags := SetupApplyFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("apply command requires exactly one document path")
	}
	if flags.PatchPath == "" {
		fs.Usage()
		return fmt.Errorf("apply command requires a patch file via -p or -patch")
	}

	docPath := fs.Arg(0)
	if docPath == StdinFilePath && flags.PatchPath == StdinFilePath {
		return fmt.Errorf("only one input may come from stdin")
	}

	format, err := parseOutputFormat(flags.Format)
	if err != nil {
		return err
	}
	if flags.Output != "" {
		if err := ValidateOutputPath(flags.Output, []string{docPath, flags.PatchPath}); err != nil {
			return err
		}
	}

	doc, err := docload.LoadValue(docPath, docload.FormatUnknown, os.Stdin)
	if err != nil {
		return fmt.Errorf("loading %s: %w", FormatDocPath(docPath), err)
	}
	p, err := docload.LoadPatch(flags.PatchPath, docload.FormatUnknown, os.Stdin)
	if err != nil {
		return fmt.Errorf("loading %s: %w", FormatDocPath(flags.PatchPath), err)
	}

	applier := patch.NewApplier()
	applier.Strict = !flags.Lenient

	result, err := applier.Apply(doc, p)
	if err != nil {
		return fmt.Errorf("applying patch: %w", err)
	}

	data, err := docload.MarshalValue(result, format)
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	return writeOutput(flags.Output, data)
}
