package commands

import (
	"context"
	"errors"
	"flag"
	"os/signal"
	"syscall"

	"github.com/erraggy/patchtools/internal/cliutil"
	"github.com/erraggy/patchtools/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: patchtools mcp\n\n")
		cliutil.Writef(fs.Output(), "Run the MCP (Model Context Protocol) server over stdio, exposing the\n")
		cliutil.Writef(fs.Output(), "diff, apply, and resolve tools to MCP clients. The server runs until\n")
		cliutil.Writef(fs.Output(), "the client disconnects or the process receives SIGINT/SIGTERM.\n\n")
		cliutil.Writef(fs.Output(), "Configuration is read from PATCHTOOLS_* environment variables; see\n")
		cliutil.Writef(fs.Output(), "the server instructions reported to the client for the full list.\n")
	}

	return fs
}

// HandleMCP executes the mcp command.
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return mcpserver.Run(ctx)
}
