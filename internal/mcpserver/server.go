// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes patchtools capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/patchtools"
)

const serverInstructions = `patchtools MCP server — diffs JSON/YAML documents into RFC 6902 patches, applies patches, and resolves RFC 6901 pointers.

Configuration: All defaults are configurable via PATCHTOOLS_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- PATCHTOOLS_CACHE_FILE_TTL (default: 15m) — cache TTL for documents read from disk
- PATCHTOOLS_CACHE_ENABLED (default: true) — disable document caching entirely
- PATCHTOOLS_MAX_INLINE_SIZE (default: 4MiB) — size limit for inline content
- PATCHTOOLS_APPLY_LENIENT (default: false) — default apply tool to lenient mode

Caching: Decoded documents are cached per session. File entries use path+mtime as key (auto-invalidated on change). A background sweeper removes expired entries every 60s.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		docCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "patchtools", Version: patchtools.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "diff",
		Description: "Compare two JSON or YAML documents and produce an RFC 6902 JSON Patch transforming the base into the revision. Objects diff per key; arrays whose length changed are replaced wholesale. The output applied to the base always reproduces the revision.",
	}, handleDiff)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "apply",
		Description: "Apply an RFC 6902 JSON Patch to a JSON or YAML document and return the patched document. Strict by default: add fails on an existing key, remove/replace fail on an absent target. Set lenient=true for idempotent best-effort semantics (default configurable via PATCHTOOLS_APPLY_LENIENT). A failed test operation is reported distinctly with test_failed=true.",
	}, handleApply)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "resolve",
		Description: "Resolve an RFC 6901 JSON Pointer against a JSON or YAML document and return the addressed value. The empty pointer returns the whole document. Pointer segments escape '~' as '~0' and '/' as '~1'.",
	}, handleResolve)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
