package hdf5

import "path"

// WalkFunc is called for each object during traversal. path is the full
// path to the object; obj is either *Group or *Dataset.
type WalkFunc func(path string, obj interface{}) error

// Walk traverses every group and dataset in the hierarchy rooted at g,
// depth-first, calling fn for g itself and then for each descendant.
func Walk(g *Group, fn WalkFunc) error {
	if err := fn(g.Path(), g); err != nil {
		return err
	}

	for _, name := range g.Datasets() {
		ds, err := g.OpenDataset(name)
		if err != nil {
			return err
		}
		if err := fn(path.Join(g.Path(), name), ds); err != nil {
			return err
		}
	}

	for _, name := range g.Groups() {
		child, err := g.OpenGroup(name)
		if err != nil {
			return err
		}
		if err := Walk(child, fn); err != nil {
			return err
		}
	}

	return nil
}
