package meshio

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// Sentinel errors for table loading.
var (
	// ErrSyntax indicates a table that does not follow the record layout.
	ErrSyntax = errors.New("meshio: malformed table")
	// ErrDuplicateID indicates two nodes or two elements share an id.
	ErrDuplicateID = errors.New("meshio: duplicate id")
	// ErrUnknownNode indicates an element references a node id absent from the node table.
	ErrUnknownNode = errors.New("meshio: unknown node id")
	// ErrNoElements indicates an element table without records.
	ErrNoElements = errors.New("meshio: no elements")
)

// Node is one record of the node table.
type Node struct {
	ID            int
	X, Y          float64
	UX, UY        float64
	BoundaryType  int
	BoundaryIndex int
	Color         int
	Line          int
}

// Element is one record of the element table.
type Element struct {
	ID    int
	Nodes [4]int // node ids, winding order
	Color int
	Line  int
}

// Dataset is a loaded mesh in dense index form. Per-vertex slices are indexed
// like X; per-quad slices like Quads.
type Dataset struct {
	X, Y          []float64
	UX, UY        []float64
	BoundaryType  []int
	BoundaryIndex []int
	VertexColors  []int
	NodeIDs       []int

	Quads      [][4]int
	QuadColors []int
	ElementIDs []int
}

// ParseNodes reads a node table. name is used in error positions only.
func ParseNodes(name string, r io.Reader) ([]Node, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "ParseNodes %s", name)
	}
	file, err := nodeParser.ParseBytes(name, data)
	if err != nil {
		return nil, errors.Wrapf(ErrSyntax, "ParseNodes: %v", err)
	}
	out := make([]Node, 0, len(file.Records))
	for _, rec := range file.Records {
		out = append(out, Node{
			ID:            rec.ID,
			X:             rec.X,
			Y:             rec.Y,
			UX:            rec.UX,
			UY:            rec.UY,
			BoundaryType:  rec.BoundaryType,
			BoundaryIndex: rec.BoundaryIndex,
			Color:         rec.Color,
			Line:          rec.Pos.Line,
		})
	}
	return out, nil
}

// ParseElements reads an element table. name is used in error positions only.
func ParseElements(name string, r io.Reader) ([]Element, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "ParseElements %s", name)
	}
	file, err := elementParser.ParseBytes(name, data)
	if err != nil {
		return nil, errors.Wrapf(ErrSyntax, "ParseElements: %v", err)
	}
	out := make([]Element, 0, len(file.Records))
	for _, rec := range file.Records {
		e := Element{ID: rec.ID, Color: rec.Color, Line: rec.Pos.Line}
		copy(e.Nodes[:], rec.Nodes)
		out = append(out, e)
	}
	return out, nil
}

// readAll terminates the input with a newline so the last record always ends
// with EOL.
func readAll(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Load maps node ids to dense vertex indices in table order and resolves the
// element connectivity against them.
func Load(nodes []Node, elements []Element) (*Dataset, error) {
	if len(elements) == 0 {
		return nil, ErrNoElements
	}
	ds := &Dataset{
		X:             make([]float64, 0, len(nodes)),
		Y:             make([]float64, 0, len(nodes)),
		UX:            make([]float64, 0, len(nodes)),
		UY:            make([]float64, 0, len(nodes)),
		BoundaryType:  make([]int, 0, len(nodes)),
		BoundaryIndex: make([]int, 0, len(nodes)),
		VertexColors:  make([]int, 0, len(nodes)),
		NodeIDs:       make([]int, 0, len(nodes)),
		Quads:         make([][4]int, 0, len(elements)),
		QuadColors:    make([]int, 0, len(elements)),
		ElementIDs:    make([]int, 0, len(elements)),
	}

	index := make(map[int]int, len(nodes))
	for _, n := range nodes {
		if prev, dup := index[n.ID]; dup {
			return nil, errors.Wrapf(ErrDuplicateID, "node %d on line %d (first on line %d)",
				n.ID, n.Line, nodes[prev].Line)
		}
		index[n.ID] = len(ds.X)
		ds.X = append(ds.X, n.X)
		ds.Y = append(ds.Y, n.Y)
		ds.UX = append(ds.UX, n.UX)
		ds.UY = append(ds.UY, n.UY)
		ds.BoundaryType = append(ds.BoundaryType, n.BoundaryType)
		ds.BoundaryIndex = append(ds.BoundaryIndex, n.BoundaryIndex)
		ds.VertexColors = append(ds.VertexColors, n.Color)
		ds.NodeIDs = append(ds.NodeIDs, n.ID)
	}

	seen := make(map[int]int, len(elements))
	for i, e := range elements {
		if prev, dup := seen[e.ID]; dup {
			return nil, errors.Wrapf(ErrDuplicateID, "element %d on line %d (first on line %d)",
				e.ID, e.Line, elements[prev].Line)
		}
		seen[e.ID] = i
		var quad [4]int
		for k, id := range e.Nodes {
			v, ok := index[id]
			if !ok {
				return nil, errors.Wrapf(ErrUnknownNode, "element %d on line %d references node %d",
					e.ID, e.Line, id)
			}
			quad[k] = v
		}
		ds.Quads = append(ds.Quads, quad)
		ds.QuadColors = append(ds.QuadColors, e.Color)
		ds.ElementIDs = append(ds.ElementIDs, e.ID)
	}
	return ds, nil
}

// ReadFiles parses both tables from disk and loads them.
func ReadFiles(nodePath, elementPath string) (*Dataset, error) {
	nodes, err := parseFile(nodePath, ParseNodes)
	if err != nil {
		return nil, err
	}
	elements, err := parseFile(elementPath, ParseElements)
	if err != nil {
		return nil, err
	}
	ds, err := Load(nodes, elements)
	if err != nil {
		return nil, errors.Wrapf(err, "ReadFiles %s, %s", nodePath, elementPath)
	}
	return ds, nil
}

func parseFile[T any](path string, parse func(string, io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "meshio")
	}
	defer f.Close()
	return parse(path, f)
}
