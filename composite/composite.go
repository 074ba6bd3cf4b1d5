package composite

import (
	"fmt"
	"io"
	"strings"

	"github.com/kbukum/patternkit/errors"
)

// Node is the component interface shared by files and directories.
type Node interface {
	// Name returns the node's name.
	Name() string
	// Size returns the node's size in bytes, aggregated for directories.
	Size() int64
	// Render writes the node (and any children) to w, indented by depth.
	Render(w io.Writer, depth int)
}

// File is a leaf node.
type File struct {
	name string
	size int64
}

// NewFile creates a leaf with a fixed size.
func NewFile(name string, size int64) *File {
	return &File{name: name, size: size}
}

func (f *File) Name() string { return f.name }
func (f *File) Size() int64  { return f.size }

func (f *File) Render(w io.Writer, depth int) {
	fmt.Fprintf(w, "%sFile: %s (%d B)\n", indent(depth), f.name, f.size)
}

// Dir is a composite node holding any mix of files and directories.
type Dir struct {
	name     string
	children []Node
}

// NewDir creates an empty directory.
func NewDir(name string) *Dir {
	return &Dir{name: name}
}

func (d *Dir) Name() string { return d.name }

// Size aggregates the sizes of all children recursively.
func (d *Dir) Size() int64 {
	var total int64
	for _, c := range d.children {
		total += c.Size()
	}
	return total
}

// Add appends a child node.
func (d *Dir) Add(n Node) {
	d.children = append(d.children, n)
}

// Remove deletes the first child with the given name.
func (d *Dir) Remove(name string) error {
	for i, c := range d.children {
		if c.Name() == name {
			d.children = append(d.children[:i], d.children[i+1:]...)
			return nil
		}
	}
	return errors.InvalidInput("name", fmt.Sprintf("no child named %q in %q", name, d.name))
}

// Child returns the i-th child.
func (d *Dir) Child(i int) (Node, error) {
	if i < 0 || i >= len(d.children) {
		return nil, errors.InvalidInput("index", fmt.Sprintf("child index %d out of range [0,%d)", i, len(d.children)))
	}
	return d.children[i], nil
}

// Find searches the subtree depth-first for a node with the given name.
func (d *Dir) Find(name string) (Node, error) {
	if n := d.find(name); n != nil {
		return n, nil
	}
	return nil, errors.InvalidInput("name", fmt.Sprintf("no node named %q under %q", name, d.name))
}

func (d *Dir) find(name string) Node {
	if d.name == name {
		return d
	}
	for _, c := range d.children {
		if c.Name() == name {
			return c
		}
		if sub, ok := c.(*Dir); ok {
			if n := sub.find(name); n != nil {
				return n
			}
		}
	}
	return nil
}

func (d *Dir) Render(w io.Writer, depth int) {
	fmt.Fprintf(w, "%sDirectory: %s\n", indent(depth), d.name)
	for _, c := range d.children {
		c.Render(w, depth+1)
	}
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}
