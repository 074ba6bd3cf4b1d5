package flyweight

import (
	"fmt"
	"sync"
)

// TreeKind is the flyweight: intrinsic state shared by every tree of the
// same kind. Immutable after creation.
type TreeKind struct {
	Name    string
	Color   string
	Texture string
}

// KindCache deduplicates TreeKinds by (name, color, texture).
type KindCache struct {
	mu     sync.RWMutex
	kinds  map[string]*TreeKind
	reused int
}

// NewKindCache creates an empty flyweight cache.
func NewKindCache() *KindCache {
	return &KindCache{kinds: make(map[string]*TreeKind)}
}

// Get returns the shared kind, creating it on first request.
func (c *KindCache) Get(name, color, texture string) *TreeKind {
	key := name + "\x00" + color + "\x00" + texture

	c.mu.RLock()
	kind, ok := c.kinds[key]
	c.mu.RUnlock()
	if ok {
		c.mu.Lock()
		c.reused++
		c.mu.Unlock()
		return kind
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if kind, ok := c.kinds[key]; ok {
		c.reused++
		return kind
	}
	kind = &TreeKind{Name: name, Color: color, Texture: texture}
	c.kinds[key] = kind
	return kind
}

// Len returns the number of distinct kinds created.
func (c *KindCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.kinds)
}

// Reused returns how many Get calls were served by sharing.
func (c *KindCache) Reused() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.reused
}

// Tree carries only extrinsic state plus a reference to its shared kind.
type Tree struct {
	X, Y int
	Kind *TreeKind
}

// Forest plants trees through a flyweight cache.
type Forest struct {
	cache *KindCache
	trees []Tree
}

// NewForest creates a forest with its own kind cache.
func NewForest() *Forest {
	return &Forest{cache: NewKindCache()}
}

// Plant adds a tree at (x, y), sharing its kind through the cache.
func (f *Forest) Plant(x, y int, name, color, texture string) {
	kind := f.cache.Get(name, color, texture)
	f.trees = append(f.trees, Tree{X: x, Y: y, Kind: kind})
}

// Trees returns the planted trees.
func (f *Forest) Trees() []Tree { return f.trees }

// Cache exposes the forest's kind cache.
func (f *Forest) Cache() *KindCache { return f.cache }

// Approximate per-object costs used for the memory comparison: a Tree is
// two ints and a pointer; a TreeKind is three string headers plus their
// backing data.
const (
	bytesPerTree = 24
	bytesPerKind = 120
)

// MemoryReport compares the shared layout against embedding a full kind in
// every tree.
type MemoryReport struct {
	Trees          int
	Kinds          int
	WithSharing    int
	WithoutSharing int
}

// Memory computes the comparison for the current forest.
func (f *Forest) Memory() MemoryReport {
	trees, kinds := len(f.trees), f.cache.Len()
	return MemoryReport{
		Trees:          trees,
		Kinds:          kinds,
		WithSharing:    trees*bytesPerTree + kinds*bytesPerKind,
		WithoutSharing: trees * (bytesPerTree - 8 + bytesPerKind),
	}
}

func (r MemoryReport) String() string {
	return fmt.Sprintf(
		"%d trees planted, %d kind objects allocated\n"+
			"Memory with sharing:    %d B (%d B/tree + %d B/kind)\n"+
			"Memory without sharing: %d B\n"+
			"Saved: %d B",
		r.Trees, r.Kinds,
		r.WithSharing, bytesPerTree, bytesPerKind,
		r.WithoutSharing,
		r.WithoutSharing-r.WithSharing,
	)
}
