package mcpserver

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/patchtools/pointer"
)

type resolveInput struct {
	Document docInput `json:"document" jsonschema:"The document to resolve against"`
	Pointer  string   `json:"pointer"  jsonschema:"RFC 6901 pointer text; the empty string addresses the whole document"`
}

type resolveOutput struct {
	Value json.RawMessage `json:"value"`
	Kind  string          `json:"kind"`
}

func handleResolve(_ context.Context, _ *mcp.CallToolRequest, input resolveInput) (*mcp.CallToolResult, resolveOutput, error) {
	doc, err := input.Document.resolveValue()
	if err != nil {
		return errResult(err), resolveOutput{}, nil
	}

	ptr, err := pointer.Parse(input.Pointer)
	if err != nil {
		return errResult(err), resolveOutput{}, nil
	}

	v, err := ptr.Resolve(doc)
	if err != nil {
		return errResult(err), resolveOutput{}, nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return errResult(err), resolveOutput{}, nil
	}

	return nil, resolveOutput{
		Value: data,
		Kind:  v.Kind.String(),
	}, nil
}
