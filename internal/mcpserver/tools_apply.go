package mcpserver

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/patchtools/patch"
	"github.com/erraggy/patchtools/patcherrors"
)

type applyInput struct {
	Document docInput `json:"document"          jsonschema:"The document to patch"`
	Patch    docInput `json:"patch"             jsonschema:"The RFC 6902 patch to apply (JSON or YAML)"`
	Lenient  bool     `json:"lenient,omitempty" jsonschema:"Relax existence/absence preconditions on add/remove/replace"`
}

type applyOutput struct {
	Result     json.RawMessage `json:"result,omitempty"`
	TestFailed bool            `json:"test_failed,omitempty"`
	FailedPath string          `json:"failed_path,omitempty"`
	Summary    string          `json:"summary"`
}

func handleApply(_ context.Context, _ *mcp.CallToolRequest, input applyInput) (*mcp.CallToolResult, applyOutput, error) {
	doc, err := input.Document.resolveValue()
	if err != nil {
		return errResult(err), applyOutput{}, nil
	}

	p, err := input.Patch.resolvePatch()
	if err != nil {
		return errResult(err), applyOutput{}, nil
	}

	applier := patch.NewApplier()
	applier.Strict = !input.Lenient && !cfg.ApplyLenient

	result, err := applier.Apply(doc, p)
	if err != nil {
		// A failed test assertion is an expected outcome, not a malformed
		// request: report it in the structured output so clients can branch
		// without parsing error text.
		var tfe *patcherrors.TestFailedError
		if errors.As(err, &tfe) {
			return nil, applyOutput{
				TestFailed: true,
				FailedPath: tfe.Path,
				Summary:    sanitizeError(err),
			}, nil
		}
		return errResult(err), applyOutput{}, nil
	}

	data, err := json.Marshal(result)
	if err != nil {
		return errResult(err), applyOutput{}, nil
	}

	return nil, applyOutput{
		Result:  data,
		Summary: "Applied " + formatCount(len(p), "operation") + ".",
	}, nil
}
