package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/patchtools/internal/cliutil"
	"github.com/erraggy/patchtools/internal/docload"
	"github.com/erraggy/patchtools/pointer"
)

// GetFlags contains flags for the get command.
type GetFlags struct {
	Pointer string
	Format  string
}

// SetupGetFlags creates and configures a FlagSet for the get command.
// Returns the FlagSet and a GetFlags struct with bound flag variables.
func SetupGetFlags() (*flag.FlagSet, *GetFlags) {
	fs := flag.NewFlagSet("get", flag.ContinueOnError)
	flags := &GetFlags{}

	fs.StringVar(&flags.Pointer, "ptr", "", "RFC 6901 pointer text (empty addresses the whole document)")
	fs.StringVar(&flags.Format, "format", FormatJSON, "output format: json or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: patchtools get [flags] <document>\n\n")
		cliutil.Writef(fs.Output(), "Resolve an RFC 6901 JSON Pointer against a JSON or YAML document and\n")
		cliutil.Writef(fs.Output(), "print the addressed value. Within a pointer segment, '~0' escapes '~'\n")
		cliutil.Writef(fs.Output(), "and '~1' escapes '/'.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  patchtools get -ptr /items/0/name doc.json\n")
		cliutil.Writef(fs.Output(), "  patchtools get -ptr /a~1b doc.yaml   # key \"a/b\"\n")
		cliutil.Writef(fs.Output(), "  cat doc.json | patchtools get -ptr /status -\n")
	}

	return fs, flags
}

// HandleGet executes the get command.
func HandleGet(args []string) error {
	fs, flags := SetupGetFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("get command requires exactly one document path")
	}

	format, err := parseOutputFormat(flags.Format)
	if err != nil {
		return err
	}

	ptr, err := pointer.Parse(flags.Pointer)
	if err != nil {
		return fmt.Errorf("parsing pointer: %w", err)
	}

	docPath := fs.Arg(0)
	doc, err := docload.LoadValue(docPath, docload.FormatUnknown, os.Stdin)
	if err != nil {
		return fmt.Errorf("loading %s: %w", FormatDocPath(docPath), err)
	}

	v, err := ptr.Resolve(doc)
	if err != nil {
		return fmt.Errorf("resolving %q: %w", flags.Pointer, err)
	}

	data, err := docload.MarshalValue(v, format)
	if err != nil {
		return fmt.Errorf("encoding value: %w", err)
	}
	return writeOutput("", data)
}
