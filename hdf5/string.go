package hdf5

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/scigo/hdf5ro/internal/dtype"
	"github.com/scigo/hdf5ro/internal/message"
)

func writeGroup(b *strings.Builder, g *Group, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(b, "%sgroup %s\n", indent, g.Name())
	writeAttrNames(b, depth+1, g.Attrs())

	for _, name := range g.Datasets() {
		ds, _ := g.OpenDataset(name)
		writeDataset(b, ds, depth+1)
	}
	for _, name := range g.Groups() {
		child, _ := g.OpenGroup(name)
		writeGroup(b, child, depth+1)
	}
}

func writeDataset(b *strings.Builder, d *Dataset, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(b, "%sdataset %s {dimensions=%s, dtype=%s}\n", indent, d.Name(), formatShape(d.Shape()), dtypeName(d.idx.Datatype))
	writeAttrNames(b, depth+1, d.Attrs())
}

func writeAttrNames(b *strings.Builder, depth int, names []string) {
	indent := strings.Repeat("  ", depth)
	for _, name := range names {
		fmt.Fprintf(b, "%s@%s\n", indent, name)
	}
}

func formatShape(dims []uint64) string {
	if len(dims) == 0 {
		return "scalar"
	}
	parts := make([]string, len(dims))
	for i, d := range dims {
		parts[i] = strconv.FormatUint(d, 10)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func dtypeName(dt *message.Datatype) string {
	kind, err := dtype.KindOf(dt)
	if err != nil {
		return fmt.Sprintf("unsupported(class=%d)", dt.Class)
	}
	return kind.String()
}
