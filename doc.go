// Package patchtools provides tools for diffing and patching JSON-like
// documents with RFC 6902 JSON Patch and RFC 6901 JSON Pointer.
//
// # Overview
//
// The library consists of four primary packages:
//
//   - value: the tagged-union JSON value model shared by everything else
//   - pointer: RFC 6901 JSON Pointers over the value model
//   - differ: compute an RFC 6902 patch between two values
//   - patch: decode, encode, and apply RFC 6902 patches
//
// Structured failures live in patcherrors and work with errors.Is and
// errors.As.
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/patchtools
//
// # Quick Start
//
// Diff two documents and apply the result:
//
//	oldDoc, err := value.Parse(oldJSON)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	newDoc, err := value.Parse(newJSON)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	p, err := differ.Diff(oldDoc, newDoc)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := patch.Apply(oldDoc, p)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// result is structurally equal to newDoc; oldDoc is untouched.
//
// Resolve a pointer:
//
//	v, err := pointer.MustParse("/items/0/name").Resolve(doc)
//
// # Command Line Tool
//
// The patchtools CLI wraps the same packages:
//
//	patchtools diff old.json new.json
//	patchtools apply -p changes.json doc.json
//	patchtools get -ptr /items/0 doc.yaml
//	patchtools mcp
//
// This root package carries only build metadata (Version, Commit,
// BuildTime) stamped via ldflags at release time.
package patchtools
