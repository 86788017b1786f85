// Package assets holds binary assets compiled into the viewer and caches
// their parsed form.
package assets

//go:generate go run ../../cmd/bin2hdr -format go -name SampleBMP -pkg assets -o sample_bmp.go testdata/sample.bmp

import (
	"fmt"
	"sort"
	"sync"

	"github.com/Faultbox/bin2hdr/pkg/formats"
)

// SampleName is the name the built-in sample bitmap is registered under.
const SampleName = "sample.bmp"

// Manager serves compiled-in blobs by name.
type Manager struct {
	blobs map[string][]byte
	cache *Cache
	mu    sync.RWMutex
}

// NewManager creates a manager holding the built-in assets.
func NewManager() *Manager {
	m := &Manager{
		blobs: make(map[string][]byte),
		cache: NewCache(),
	}
	m.Add(SampleName, SampleBMP[:])
	return m
}

// Add registers a blob, replacing any previous blob with the same name.
func (m *Manager) Add(name string, data []byte) {
	m.mu.Lock()
	m.blobs[name] = data
	m.mu.Unlock()
	m.cache.Delete(name)
}

// Load returns the raw bytes of a blob.
func (m *Manager) Load(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.blobs[name]
	if !ok {
		return nil, fmt.Errorf("asset not found: %s", name)
	}
	return data, nil
}

// Bitmap returns the parsed BMP headers of a blob. Parsed results are cached.
func (m *Manager) Bitmap(name string) (*formats.BMP, error) {
	if b, ok := m.cache.Get(name); ok {
		return b, nil
	}

	data, err := m.Load(name)
	if err != nil {
		return nil, err
	}
	b, err := formats.ParseBMP(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}

	m.cache.Set(name, b)
	return b, nil
}

// Names lists registered blobs in sorted order.
func (m *Manager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.blobs))
	for name := range m.blobs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Cache keeps parsed bitmaps by asset name.
type Cache struct {
	data map[string]*formats.BMP
	mu   sync.RWMutex

	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string]*formats.BMP),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) (*formats.BMP, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	b, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return b, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, b *formats.BMP) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = b
}

// Delete drops an item from cache.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
}

// Stats returns cache hit and miss counts.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
