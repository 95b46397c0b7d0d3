package mcpserver

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/patchtools/value"
)

func TestDocInputValidate(t *testing.T) {
	assert.Error(t, docInput{}.validate(), "neither input set")
	assert.Error(t, docInput{File: "a.json", Content: "{}"}.validate(), "both inputs set")
	assert.NoError(t, docInput{Content: "{}"}.validate())
	assert.NoError(t, docInput{File: "a.json"}.validate())
}

func TestDocInputResolveValueInline(t *testing.T) {
	docCache.reset()

	doc, err := docInput{Content: `{"a": 1}`}.resolveValue()
	require.NoError(t, err)
	assert.Equal(t, 1.0, doc.Fields["a"].Num)

	// YAML inline content is detected by shape.
	doc, err = docInput{Content: "a: 1\nb: [2, 3]\n"}.resolveValue()
	require.NoError(t, err)
	assert.Len(t, doc.Fields["b"].Elems, 2)
}

func TestDocInputResolveValueFile(t *testing.T) {
	docCache.reset()

	path := filepath.Join(t.TempDir(), "doc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: widget\n"), 0o600))

	doc, err := docInput{File: path}.resolveValue()
	require.NoError(t, err)
	assert.Equal(t, "widget", doc.Fields["name"].Str)
}

func TestDocInputResolvePatch(t *testing.T) {
	p, err := docInput{Content: `[{"op":"remove","path":"/a"}]`}.resolvePatch()
	require.NoError(t, err)
	assert.Len(t, p, 1)

	_, err = docInput{Content: `[{"op":"add","path":"/a"}]`}.resolvePatch()
	assert.Error(t, err, "patch validation runs on decode")
}

func TestResolveValueUsesCache(t *testing.T) {
	docCache.reset()
	in := docInput{Content: `{"cached": true}`}

	first, err := in.resolveValue()
	require.NoError(t, err)
	assert.Equal(t, 1, docCache.size())

	second, err := in.resolveValue()
	require.NoError(t, err)
	assert.Same(t, first, second, "second resolve must hit the cache")
}

func TestCacheKeyPerInput(t *testing.T) {
	a := makeCacheKey(docInput{Content: "a"})
	b := makeCacheKey(docInput{Content: "b"})
	assert.NotEqual(t, a, b)
	assert.Empty(t, makeCacheKey(docInput{}))
	assert.Empty(t, makeCacheKey(docInput{File: filepath.Join(t.TempDir(), "missing.json")}), "unstatable files are not cached")
}

func TestCacheEviction(t *testing.T) {
	c := &docCacheStore{entries: make(map[string]*cacheEntry), maxSize: 2}
	c.putWithTTL("a", value.Null(), time.Minute)
	c.putWithTTL("b", value.Null(), time.Minute)
	c.putWithTTL("c", value.Null(), time.Minute)
	assert.Equal(t, 2, c.size(), "oldest entry is evicted at capacity")
	assert.Nil(t, c.get("a"))
	assert.NotNil(t, c.get("c"))
}

func TestCacheExpiry(t *testing.T) {
	c := &docCacheStore{entries: make(map[string]*cacheEntry), maxSize: 10}
	c.putWithTTL("k", value.Null(), -time.Second)
	assert.Nil(t, c.get("k"), "expired entries are lazily removed")
	assert.Equal(t, 0, c.size())
}

func TestCacheSweep(t *testing.T) {
	c := &docCacheStore{entries: make(map[string]*cacheEntry), maxSize: 10}
	c.putWithTTL("stale", value.Null(), -time.Second)
	c.putWithTTL("fresh", value.Null(), time.Minute)
	c.sweep()
	assert.Equal(t, 1, c.size())
	assert.NotNil(t, c.get("fresh"))
}

func TestInlineSizeLimit(t *testing.T) {
	old := cfg.MaxInlineSize
	cfg.MaxInlineSize = 8
	defer func() { cfg.MaxInlineSize = old }()

	_, err := docInput{Content: `{"too":"large for the limit"}`}.resolveValue()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PATCHTOOLS_MAX_INLINE_SIZE")
}
