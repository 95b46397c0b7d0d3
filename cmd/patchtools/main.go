// Command patchtools diffs, patches, and inspects JSON and YAML documents
// using RFC 6902 JSON Patch and RFC 6901 JSON Pointer.
package main

import (
	"fmt"
	"os"

	"github.com/erraggy/patchtools"
	"github.com/erraggy/patchtools/cmd/patchtools/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("patchtools v%s\n", patchtools.Version())
	case "help", "-h", "--help":
		printUsage()
	case "diff":
		exitOnError(commands.HandleDiff(os.Args[2:]))
	case "apply":
		exitOnError(commands.HandleApply(os.Args[2:]))
	case "get":
		exitOnError(commands.HandleGet(os.Args[2:]))
	case "mcp":
		exitOnError(commands.HandleMCP(os.Args[2:]))
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean %q?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// knownCommands lists every accepted subcommand for typo suggestions.
var knownCommands = []string{"diff", "apply", "get", "mcp", "version", "help"}

// suggestCommand returns the closest known command within edit distance 2,
// or "" when nothing is close enough to suggest.
func suggestCommand(input string) string {
	best := ""
	bestDist := 3
	for _, cmd := range knownCommands {
		if d := editDistance(input, cmd); d < bestDist {
			best = cmd
			bestDist = d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between two strings.
func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

func exitOnError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if code := commands.ExitCode(err); code != 0 {
		os.Exit(code)
	}
	os.Exit(1)
}

func printUsage() {
	fmt.Printf(`patchtools v%s - JSON Patch and JSON Pointer tooling for JSON/YAML documents

Usage: patchtools <command> [flags] [args]

Commands:
  diff      Compare two documents and emit an RFC 6902 patch
  apply     Apply an RFC 6902 patch to a document
  get       Resolve an RFC 6901 pointer against a document
  mcp       Run the MCP server over stdio
  version   Show version information
  help      Show this help message

Use "patchtools <command> -h" for command-specific flags.

Examples:
  patchtools diff old.json new.json
  patchtools diff -format yaml old.yaml new.yaml
  patchtools apply -p changes.json doc.json
  cat doc.json | patchtools get -ptr /items/0/name -
`, patchtools.Version())
}
