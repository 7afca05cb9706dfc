// Command quadpatch loads (or generates) a colored quad mesh, builds its
// neighbour topology and prints the tensor-product patch of every color.
//
// Usage:
//
//	quadpatch -nodes mesh.nodes -elements mesh.elements [-color 3] [-regions]
//	quadpatch -grid 4x6 -split 2 [-v 2]
//
// Colors that do not form a tensor-product patch are logged and skipped; the
// exit status is 1 only when the mesh cannot be loaded or built.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/quadmesh/coloring"
	"github.com/katalvlaran/quadmesh/meshgen"
	"github.com/katalvlaran/quadmesh/meshio"
	"github.com/katalvlaran/quadmesh/quadmesh"
	"github.com/katalvlaran/quadmesh/sticker"
)

type options struct {
	nodes, elements string
	grid            string
	split           int
	color           int
	hasColor        bool
	regions         bool
	noConvexCheck   bool
}

func main() {
	fset := flag.NewFlagSet("quadpatch", flag.ExitOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	var opts options
	var color string
	fset.StringVar(&opts.nodes, "nodes", "", "node table path")
	fset.StringVar(&opts.elements, "elements", "", "element table path")
	fset.StringVar(&opts.grid, "grid", "", "generate a ROWSxCOLS grid instead of reading tables")
	fset.IntVar(&opts.split, "split", 1, "with -grid: number of vertical color bands")
	fset.StringVar(&color, "color", "", "extract only this color")
	fset.BoolVar(&opts.regions, "regions", false, "also list the connected regions of each color")
	fset.BoolVar(&opts.noConvexCheck, "no-convex-check", false, "accept non-convex quads")
	fset.Parse(os.Args[1:])

	if color != "" {
		c, err := strconv.Atoi(color)
		if err != nil {
			klog.Errorf("bad -color %q: %v", color, err)
			klog.Flush()
			os.Exit(2)
		}
		opts.color, opts.hasColor = c, true
	}

	err := run(opts, os.Stdout)
	klog.Flush()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// input is a mesh ready for quadmesh.New and coloring.New.
type input struct {
	x, y          []float64
	quads         [][4]int
	quadColors    []int
	vertexColors  []int
	boundaryIndex []int
}

func load(opts options) (*input, error) {
	if opts.grid != "" {
		rows, cols, err := parseDims(opts.grid)
		if err != nil {
			return nil, err
		}
		if opts.split < 1 {
			return nil, fmt.Errorf("-split must be ≥ 1, got %d", opts.split)
		}
		split := opts.split
		g, err := meshgen.NewGrid(rows, cols, meshgen.WithColorFn(func(_, c int) int {
			return c * split / cols
		}))
		if err != nil {
			return nil, err
		}
		klog.Infof("generated %dx%d grid in %d color bands", rows, cols, split)
		return &input{x: g.X, y: g.Y, quads: g.Quads, quadColors: g.Colors}, nil
	}

	if opts.nodes == "" || opts.elements == "" {
		return nil, fmt.Errorf("either -grid or both -nodes and -elements are required")
	}
	ds, err := meshio.ReadFiles(opts.nodes, opts.elements)
	if err != nil {
		return nil, err
	}
	klog.Infof("loaded %d nodes, %d elements", len(ds.X), len(ds.Quads))
	return &input{
		x: ds.X, y: ds.Y, quads: ds.Quads, quadColors: ds.QuadColors,
		vertexColors: ds.VertexColors, boundaryIndex: ds.BoundaryIndex,
	}, nil
}

func parseDims(s string) (rows, cols int, err error) {
	r, c, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("bad -grid %q, want ROWSxCOLS", s)
	}
	if rows, err = strconv.Atoi(r); err != nil {
		return 0, 0, fmt.Errorf("bad -grid rows %q: %w", r, err)
	}
	if cols, err = strconv.Atoi(c); err != nil {
		return 0, 0, fmt.Errorf("bad -grid cols %q: %w", c, err)
	}
	return rows, cols, nil
}

func run(opts options, w io.Writer) error {
	in, err := load(opts)
	if err != nil {
		return err
	}

	var mopts []quadmesh.Option
	if opts.noConvexCheck {
		mopts = append(mopts, quadmesh.WithoutConvexityCheck())
	}
	mesh, err := quadmesh.New(in.x, in.y, in.quads, mopts...)
	if err != nil {
		return err
	}

	var copts []coloring.Option
	if in.vertexColors != nil {
		copts = append(copts, coloring.WithVertexColors(in.vertexColors))
	}
	if in.boundaryIndex != nil {
		copts = append(copts, coloring.WithBoundaryIndex(in.boundaryIndex))
	}
	colors, err := coloring.New(mesh, in.quadColors, copts...)
	if err != nil {
		return err
	}

	ex, err := sticker.New(mesh, colors, sticker.WithOnVisit(func(q, stage int) {
		klog.V(3).Infof("quad %d -> stage %d", q, stage)
	}))
	if err != nil {
		return err
	}

	targets := ex.AvailableColors()
	if opts.hasColor {
		targets = []int{opts.color}
	}

	failed := 0
	for _, c := range targets {
		if opts.regions {
			regions := ex.Regions(c)
			fmt.Fprintf(w, "color %d: %d region(s)\n", c, len(regions))
			for i, r := range regions {
				fmt.Fprintf(w, "  region %d: %v\n", i, r)
			}
		}
		patch, err := ex.FindColor(c)
		if err != nil {
			klog.Errorf("%v", err)
			failed++
			continue
		}
		stages, elems := patch.Dims()
		klog.V(2).Infof("color %d: %d stages × %d elements", c, stages, elems)
		fmt.Fprintf(w, "color %d: %dx%d\n", c, stages, elems)
		for s, stage := range patch {
			fmt.Fprintf(w, "  stage %d: %v\n", s, stage)
		}
	}
	if failed > 0 {
		klog.Warningf("%d of %d color(s) are not tensor-product patches", failed, len(targets))
	}
	return nil
}
