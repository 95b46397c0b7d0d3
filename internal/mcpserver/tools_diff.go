package mcpserver

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/patchtools/differ"
)

type diffInput struct {
	Base     docInput `json:"base"     jsonschema:"The base/original document"`
	Revision docInput `json:"revision" jsonschema:"The revised document to compare against the base"`
}

type diffOutput struct {
	OperationCount int             `json:"operation_count"`
	Patch          json.RawMessage `json:"patch"`
	Summary        string          `json:"summary"`
}

func handleDiff(_ context.Context, _ *mcp.CallToolRequest, input diffInput) (*mcp.CallToolResult, diffOutput, error) {
	base, err := input.Base.resolveValue()
	if err != nil {
		return errResult(err), diffOutput{}, nil
	}

	revision, err := input.Revision.resolveValue()
	if err != nil {
		return errResult(err), diffOutput{}, nil
	}

	p, err := differ.Diff(base, revision)
	if err != nil {
		return errResult(err), diffOutput{}, nil
	}

	data, err := json.Marshal(p)
	if err != nil {
		return errResult(err), diffOutput{}, nil
	}

	output := diffOutput{
		OperationCount: len(p),
		Patch:          data,
	}
	if len(p) == 0 {
		output.Patch = json.RawMessage("[]")
		output.Summary = "No changes detected."
	} else {
		output.Summary = formatCount(len(p), "operation") + " to transform the base into the revision."
	}
	return nil, output, nil
}

func formatCount(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
