package hdf5

import (
	"path"
	"sort"

	"github.com/scigo/hdf5ro/internal/index"
)

// Group is a named node in the file's object tree: child groups, child
// datasets, and its own attributes. The tree is built once by Open; a
// Group never re-reads the mapping.
type Group struct {
	idx  *index.Group
	path string
}

// Name returns the group's name, the last path component ("/" for root).
func (g *Group) Name() string {
	if g.path == "/" {
		return "/"
	}
	return path.Base(g.path)
}

// Path returns the full path to this group.
func (g *Group) Path() string { return g.path }

// Groups returns the names of direct child groups, sorted.
func (g *Group) Groups() []string {
	names := make([]string, 0, len(g.idx.Groups))
	for name := range g.idx.Groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Datasets returns the names of direct child datasets, sorted.
func (g *Group) Datasets() []string {
	names := make([]string, 0, len(g.idx.Datasets))
	for name := range g.idx.Datasets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// OpenGroup resolves a relative slash-separated path to a subgroup.
func (g *Group) OpenGroup(relativePath string) (*Group, error) {
	parts := SplitPath(relativePath)
	cur := g.idx
	curPath := g.path
	for _, name := range parts {
		child, ok := cur.Groups[name]
		if !ok {
			return nil, notFound(path.Join(curPath, name))
		}
		cur = child
		curPath = path.Join(curPath, name)
	}
	return &Group{idx: cur, path: curPath}, nil
}

// OpenDataset resolves a relative slash-separated path to a dataset.
func (g *Group) OpenDataset(relativePath string) (*Dataset, error) {
	parts := SplitPath(relativePath)
	if len(parts) == 0 {
		return nil, ErrNotDataset
	}

	cur := g.idx
	curPath := g.path
	for _, name := range parts[:len(parts)-1] {
		child, ok := cur.Groups[name]
		if !ok {
			return nil, notFound(path.Join(curPath, name))
		}
		cur = child
		curPath = path.Join(curPath, name)
	}

	last := parts[len(parts)-1]
	ds, ok := cur.Datasets[last]
	if !ok {
		return nil, notFound(path.Join(curPath, last))
	}
	return &Dataset{idx: ds, path: path.Join(curPath, last)}, nil
}

// Attrs returns the names of this group's attributes.
func (g *Group) Attrs() []string {
	names := make([]string, 0, len(g.idx.Attributes))
	for _, a := range g.idx.Attributes {
		names = append(names, a.Name)
	}
	return names
}

// Attr returns an attribute by name, or nil if not present.
func (g *Group) Attr(name string) *Attribute {
	for _, a := range g.idx.Attributes {
		if a.Name == name {
			return &Attribute{idx: a}
		}
	}
	return nil
}

// HasAttr reports whether the group has an attribute with the given name.
func (g *Group) HasAttr(name string) bool {
	return g.Attr(name) != nil
}
