package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

type rendered struct {
	sum    string
	width  int
	output string
}

// RenderCache remembers rendered previews per note. An entry is reused
// only while the body and width it was rendered for are unchanged.
type RenderCache struct {
	lru    *LRUCache[string, rendered]
	render func(body string, width int) string
}

func NewRenderCache(size int, render func(body string, width int) string) *RenderCache {
	return &RenderCache{
		lru:    NewLRUCache[string, rendered](size),
		render: render,
	}
}

func (c *RenderCache) Render(id, body string, width int) string {
	sum := checksum(body)
	if hit, ok := c.lru.Get(id); ok && hit.sum == sum && hit.width == width {
		return hit.output
	}

	out := c.render(body, width)
	c.lru.Put(id, rendered{sum: sum, width: width, output: out})
	return out
}

// Forget drops the preview of a deleted note.
func (c *RenderCache) Forget(id string) {
	c.lru.Remove(id)
}

func checksum(body string) string {
	h := sha256.Sum256([]byte(body))
	return hex.EncodeToString(h[:])
}
