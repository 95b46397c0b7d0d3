// Package docload loads documents and patches from files or stdin in either
// JSON or YAML form, normalizing everything to the value model.
package docload

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/patchtools/patch"
	"github.com/erraggy/patchtools/value"
)

// Format identifies the text encoding of a document or patch file.
type Format int

const (
	// FormatUnknown means the format could not be determined.
	FormatUnknown Format = iota
	// FormatJSON is JSON text.
	FormatJSON
	// FormatYAML is YAML text.
	FormatYAML
)

// String returns the format name as used in CLI flags and error messages.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// ParseFormat parses a CLI format name. The empty string is FormatUnknown,
// which callers treat as "detect".
func ParseFormat(name string) (Format, error) {
	switch name {
	case "":
		return FormatUnknown, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatUnknown, fmt.Errorf("docload: unsupported format %q (expected json or yaml)", name)
	}
}

// DetectFormatFromPath detects the format from a file extension.
func DetectFormatFromPath(path string) Format {
	switch filepath.Ext(path) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatUnknown
	}
}

// DetectFormatFromContent detects the format from content bytes. JSON
// documents start with one of the JSON value leaders; anything else is
// treated as YAML, which is a superset for our purposes.
func DetectFormatFromContent(data []byte) Format {
	trimmed := bytes.TrimLeft(data, " \t\n\r")
	if len(trimmed) == 0 {
		return FormatUnknown
	}
	switch trimmed[0] {
	case '{', '[', '"', 't', 'f', 'n', '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		// A bare scalar parses identically either way; prefer the JSON path
		// so numbers keep their JSON semantics.
		if json.Valid(trimmed) {
			return FormatJSON
		}
		return FormatYAML
	default:
		return FormatYAML
	}
}

// detect combines path-based and content-based detection, with an explicit
// format taking precedence over both.
func detect(explicit Format, path string, data []byte) Format {
	if explicit != FormatUnknown {
		return explicit
	}
	if f := DetectFormatFromPath(path); f != FormatUnknown {
		return f
	}
	return DetectFormatFromContent(data)
}

// StdinPath is the conventional CLI placeholder for reading from stdin.
const StdinPath = "-"

// readSource reads the raw bytes of path, where StdinPath means stdin.
func readSource(path string, stdin io.Reader) ([]byte, error) {
	if path == StdinPath {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("docload: reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path) //nolint:gosec // G304 - path is user-provided input (CLI tool)
	if err != nil {
		return nil, fmt.Errorf("docload: reading %s: %w", path, err)
	}
	return data, nil
}

// LoadValue reads and decodes the document at path (StdinPath for stdin)
// into a Value. An explicit format skips detection.
func LoadValue(path string, explicit Format, stdin io.Reader) (*value.Value, error) {
	data, err := readSource(path, stdin)
	if err != nil {
		return nil, err
	}
	v, err := DecodeValue(data, detect(explicit, path, data))
	if err != nil {
		return nil, fmt.Errorf("docload: decoding %s: %w", path, err)
	}
	return v, nil
}

// DecodeValue decodes document bytes in the given format into a Value.
// FormatUnknown falls back to content detection.
func DecodeValue(data []byte, format Format) (*value.Value, error) {
	if format == FormatUnknown {
		format = DetectFormatFromContent(data)
	}
	switch format {
	case FormatJSON:
		return value.Parse(data)
	case FormatYAML:
		var raw any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		return value.FromGo(raw)
	default:
		return nil, fmt.Errorf("cannot determine document format")
	}
}

// LoadPatch reads and decodes the patch at path (StdinPath for stdin). YAML
// patches are normalized through JSON so operation validation has a single
// code path.
func LoadPatch(path string, explicit Format, stdin io.Reader) (patch.Patch, error) {
	data, err := readSource(path, stdin)
	if err != nil {
		return nil, err
	}
	p, err := DecodePatch(data, detect(explicit, path, data))
	if err != nil {
		return nil, fmt.Errorf("docload: decoding %s: %w", path, err)
	}
	return p, nil
}

// DecodePatch decodes patch bytes in the given format.
func DecodePatch(data []byte, format Format) (patch.Patch, error) {
	if format == FormatUnknown {
		format = DetectFormatFromContent(data)
	}
	switch format {
	case FormatJSON:
		return patch.Decode(data)
	case FormatYAML:
		var raw any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		jsonData, err := json.Marshal(normalizeYAML(raw))
		if err != nil {
			return nil, err
		}
		return patch.Decode(jsonData)
	default:
		return nil, fmt.Errorf("cannot determine patch format")
	}
}

// normalizeYAML rewrites map[any]any shapes (produced by some yaml inputs)
// into map[string]any so the result is JSON-marshalable.
func normalizeYAML(raw any) any {
	switch t := raw.(type) {
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, v := range t {
			m[fmt.Sprint(k)] = normalizeYAML(v)
		}
		return m
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, v := range t {
			m[k] = normalizeYAML(v)
		}
		return m
	case []any:
		s := make([]any, len(t))
		for i, v := range t {
			s[i] = normalizeYAML(v)
		}
		return s
	default:
		return raw
	}
}

// MarshalValue encodes v in the given format. JSON output is indented for
// CLI readability; FormatUnknown defaults to JSON.
func MarshalValue(v *value.Value, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(v.Interface())
	default:
		return json.MarshalIndent(v, "", "  ")
	}
}

// MarshalPatch encodes p in the given format; FormatUnknown defaults to
// JSON.
func MarshalPatch(p patch.Patch, format Format) ([]byte, error) {
	if p == nil {
		p = patch.Patch{}
	}
	switch format {
	case FormatYAML:
		data, err := json.Marshal(p)
		if err != nil {
			return nil, err
		}
		var raw any
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		return yaml.Marshal(raw)
	default:
		return json.MarshalIndent(p, "", "  ")
	}
}
