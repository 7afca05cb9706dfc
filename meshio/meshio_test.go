package meshio_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quadmesh/meshio"
)

// twoQuads is a 2×1 strip:
//
//	14──15──16
//	│ 1 │ 2 │
//	11──12──13
const twoQuadNodes = `# id x y ux uy btype bindex color
11  0.0  0.0  0 0  1  0 3
12  1.0  0.0  0 0  1  1 3
13  2.0  0.0  0 0  1  2 3
14  0    1    0 0  1  5 3
15  1.   1.0  0 0  0 -1 3
16  2e0  1.0  0.5 -1.5e-1  1 3 4
`

const twoQuadElements = `# id n1 n2 n3 n4 color
1 11 12 15 14 7

2 12 13 16 15 7`

func TestParseNodes(t *testing.T) {
	nodes, err := meshio.ParseNodes("nodes.txt", strings.NewReader(twoQuadNodes))
	require.NoError(t, err)
	require.Len(t, nodes, 6)

	require.Equal(t, meshio.Node{
		ID: 16, X: 2, Y: 1, UX: 0.5, UY: -0.15,
		BoundaryType: 1, BoundaryIndex: 3, Color: 4, Line: 7,
	}, nodes[5])
	require.Equal(t, 1.0, nodes[4].X)
	require.Equal(t, -1, nodes[4].BoundaryIndex)
}

func TestParseElements(t *testing.T) {
	elems, err := meshio.ParseElements("elems.txt", strings.NewReader(twoQuadElements))
	require.NoError(t, err)
	require.Equal(t, []meshio.Element{
		{ID: 1, Nodes: [4]int{11, 12, 15, 14}, Color: 7, Line: 2},
		{ID: 2, Nodes: [4]int{12, 13, 16, 15}, Color: 7, Line: 4},
	}, elems)
}

func TestParse_Empty(t *testing.T) {
	nodes, err := meshio.ParseNodes("empty", strings.NewReader("# nothing\n\n"))
	require.NoError(t, err)
	require.Empty(t, nodes)
}

func TestParse_Syntax(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		parse func() error
	}{
		{"node missing field", func() error {
			_, err := meshio.ParseNodes("n", strings.NewReader("1 0 0 0 0 1 0\n"))
			return err
		}},
		{"node extra field", func() error {
			_, err := meshio.ParseNodes("n", strings.NewReader("1 0 0 0 0 1 0 3 9\n"))
			return err
		}},
		{"float id", func() error {
			_, err := meshio.ParseNodes("n", strings.NewReader("1.5 0 0 0 0 1 0 3\n"))
			return err
		}},
		{"element with 3 nodes", func() error {
			_, err := meshio.ParseElements("e", strings.NewReader("1 2 3 4 0\n"))
			return err
		}},
		{"garbage", func() error {
			_, err := meshio.ParseElements("e", strings.NewReader("quad 1 2 3 4 0\n"))
			return err
		}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			require.True(t, errors.Is(tc.parse(), meshio.ErrSyntax))
		})
	}
}

func TestLoad(t *testing.T) {
	nodes, err := meshio.ParseNodes("nodes", strings.NewReader(twoQuadNodes))
	require.NoError(t, err)
	elems, err := meshio.ParseElements("elems", strings.NewReader(twoQuadElements))
	require.NoError(t, err)

	ds, err := meshio.Load(nodes, elems)
	require.NoError(t, err)
	require.Equal(t, [][4]int{{0, 1, 4, 3}, {1, 2, 5, 4}}, ds.Quads)
	require.Equal(t, []int{7, 7}, ds.QuadColors)
	require.Equal(t, []int{1, 2}, ds.ElementIDs)
	require.Equal(t, []float64{0, 1, 2, 0, 1, 2}, ds.X)
	require.Equal(t, []int{0, 1, 2, 5, -1, 3}, ds.BoundaryIndex)
	require.Equal(t, []int{3, 3, 3, 3, 3, 4}, ds.VertexColors)
	require.Equal(t, []int{11, 12, 13, 14, 15, 16}, ds.NodeIDs)
}

func TestLoad_Errors(t *testing.T) {
	nodes := []meshio.Node{{ID: 1, Line: 1}, {ID: 2, Line: 2}, {ID: 3, Line: 3}, {ID: 4, Line: 4}}
	quad := meshio.Element{ID: 1, Nodes: [4]int{1, 2, 3, 4}, Line: 1}

	_, err := meshio.Load(nodes, nil)
	require.ErrorIs(t, err, meshio.ErrNoElements)

	_, err = meshio.Load(append(nodes, meshio.Node{ID: 2, Line: 5}), []meshio.Element{quad})
	require.ErrorIs(t, err, meshio.ErrDuplicateID)
	require.Contains(t, err.Error(), "node 2 on line 5 (first on line 2)")

	_, err = meshio.Load(nodes, []meshio.Element{quad, quad})
	require.ErrorIs(t, err, meshio.ErrDuplicateID)

	bad := quad
	bad.Nodes[2] = 9
	_, err = meshio.Load(nodes, []meshio.Element{bad})
	require.ErrorIs(t, err, meshio.ErrUnknownNode)
}

func TestReadFiles(t *testing.T) {
	dir := t.TempDir()
	np := filepath.Join(dir, "mesh.nodes")
	ep := filepath.Join(dir, "mesh.elements")
	require.NoError(t, os.WriteFile(np, []byte(twoQuadNodes), 0o600))
	require.NoError(t, os.WriteFile(ep, []byte(twoQuadElements), 0o600))

	ds, err := meshio.ReadFiles(np, ep)
	require.NoError(t, err)
	require.Len(t, ds.Quads, 2)

	_, err = meshio.ReadFiles(filepath.Join(dir, "missing"), ep)
	require.ErrorIs(t, err, os.ErrNotExist)
}
