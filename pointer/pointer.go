// Package pointer implements RFC 6901 JSON Pointers over the value model.
//
// A Pointer is an ordered sequence of unescaped segments; the empty sequence
// addresses the document root. Pointer text uses the RFC 6901 escaping
// rules: within a segment, "~1" decodes to "/" and "~0" decodes to "~",
// decoded in that order (so "~01" decodes to "~1", not "/").
package pointer

import (
	"strings"

	"github.com/erraggy/patchtools/patcherrors"
	"github.com/erraggy/patchtools/value"
)

// EndOfArray is the RFC 6901 "-" token addressing one past the end of an
// array. It is valid only as the final segment of an add target and never
// resolves as a read target.
const EndOfArray = "-"

// Pointer is a parsed JSON Pointer: zero or more unescaped segments.
// The empty Pointer denotes the document root. Two pointers are equal iff
// their segment sequences are equal.
type Pointer []string

// Parse parses RFC 6901 pointer text. The empty string is the root pointer;
// any other text must start with "/".
func Parse(text string) (Pointer, error) {
	if text == "" {
		return Pointer{}, nil
	}
	if !strings.HasPrefix(text, "/") {
		return nil, &patcherrors.PointerError{
			Pointer: text,
			Message: `pointer text must be empty or start with "/"`,
		}
	}
	parts := strings.Split(text[1:], "/")
	segs := make(Pointer, len(parts))
	for i, part := range parts {
		segs[i] = unescape(part)
	}
	return segs, nil
}

// MustParse is Parse for known-good pointer text; it panics on error.
// Intended for tests and package-level constants.
func MustParse(text string) Pointer {
	p, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return p
}

// String serializes p back to RFC 6901 text; the root pointer serializes to
// the empty string. Parse(p.String()) always reproduces p.
func (p Pointer) String() string {
	if len(p) == 0 {
		return ""
	}
	var b strings.Builder
	for _, seg := range p {
		b.WriteByte('/')
		b.WriteString(escape(seg))
	}
	return b.String()
}

// IsRoot reports whether p addresses the whole document.
func (p Pointer) IsRoot() bool {
	return len(p) == 0
}

// Last returns the final segment. It must not be called on the root pointer.
func (p Pointer) Last() string {
	return p[len(p)-1]
}

// Parent returns all segments but the last, addressing the container that
// holds p's target. Calling Parent on the root pointer is an error: the
// root has no enclosing container.
func (p Pointer) Parent() (Pointer, error) {
	if len(p) == 0 {
		return nil, &patcherrors.PointerError{
			Pointer: "",
			Message: "the root pointer has no parent",
		}
	}
	parent := make(Pointer, len(p)-1)
	copy(parent, p[:len(p)-1])
	return parent, nil
}

// Child returns a new Pointer with segs appended. The receiver is never
// aliased, so re-rooting child pointers during diffing cannot corrupt
// siblings.
func (p Pointer) Child(segs ...string) Pointer {
	child := make(Pointer, 0, len(p)+len(segs))
	child = append(child, p...)
	child = append(child, segs...)
	return child
}

// Join concatenates two pointers into a fresh Pointer.
func Join(prefix, suffix Pointer) Pointer {
	return prefix.Child(suffix...)
}

// Equal reports whether two pointers address the same location.
func Equal(a, b Pointer) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// escape applies RFC 6901 segment escaping. "~" must be escaped before "/"
// so that unescaping (which decodes "~1" before "~0") round-trips.
func escape(seg string) string {
	seg = strings.ReplaceAll(seg, "~", "~0")
	return strings.ReplaceAll(seg, "/", "~1")
}

// unescape reverses escape: "~1" to "/" first, then "~0" to "~".
func unescape(seg string) string {
	seg = strings.ReplaceAll(seg, "~1", "/")
	return strings.ReplaceAll(seg, "~0", "~")
}

// Index parses an array-index segment: base-10 digits with no sign and no
// leading zeros (except "0" itself). The EndOfArray token is not an index.
func Index(seg string) (int, error) {
	if seg == "" {
		return 0, &patcherrors.PointerError{Segment: seg, Message: "empty array index"}
	}
	if len(seg) > 1 && seg[0] == '0' {
		return 0, &patcherrors.PointerError{Segment: seg, Message: "array index has leading zeros"}
	}
	n := 0
	for i := 0; i < len(seg); i++ {
		c := seg[i]
		if c < '0' || c > '9' {
			return 0, &patcherrors.PointerError{Segment: seg, Message: "array index is not a base-10 integer"}
		}
		digit := int(c - '0')
		if n > (int(^uint(0)>>1)-digit)/10 {
			return 0, &patcherrors.PointerError{Segment: seg, Message: "array index overflows"}
		}
		n = n*10 + digit
	}
	return n, nil
}

// Resolve walks doc following each segment of p and returns the addressed
// value. Object segments require the key to exist; array segments must be
// valid in-range indices. The EndOfArray token never resolves: it is an
// append position, not a location. Resolving the root pointer returns doc.
func (p Pointer) Resolve(doc *value.Value) (*value.Value, error) {
	cur := doc
	for _, seg := range p {
		if cur == nil {
			return nil, &patcherrors.PointerError{
				Pointer: p.String(),
				Segment: seg,
				Message: "path not found",
			}
		}
		switch cur.Kind {
		case value.ObjectKind:
			next, ok := cur.Fields[seg]
			if !ok {
				return nil, &patcherrors.PointerError{
					Pointer: p.String(),
					Segment: seg,
					Message: "path not found: no such key",
				}
			}
			cur = next
		case value.ArrayKind:
			if seg == EndOfArray {
				return nil, &patcherrors.PointerError{
					Pointer: p.String(),
					Segment: seg,
					Message: `"-" addresses the append position and cannot be read`,
				}
			}
			idx, err := Index(seg)
			if err != nil {
				return nil, &patcherrors.PointerError{
					Pointer: p.String(),
					Segment: seg,
					Message: "invalid array index",
					Cause:   err,
				}
			}
			if idx >= len(cur.Elems) {
				return nil, &patcherrors.PointerError{
					Pointer: p.String(),
					Segment: seg,
					Message: "path not found: array index out of range",
				}
			}
			cur = cur.Elems[idx]
		default:
			return nil, &patcherrors.PointerError{
				Pointer: p.String(),
				Segment: seg,
				Message: "path not found: cannot descend into " + cur.Kind.String(),
			}
		}
	}
	return cur, nil
}
