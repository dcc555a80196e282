package graphio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/pmgraph/graph"
)

// ReadTGF parses a two-file TGF graph: nodePath starts with a node
// count followed by "id x y" lines (0-indexed id); edgePath lists
// "source target weight" lines (0-indexed ids) read until EOF. It
// inserts one node per declared id, built by newNode from its
// coordinates, and one edge per edge line, built by newEdge from its
// weight.
func ReadTGF[V, E any](g graph.Surface[V, E], nodePath, edgePath string, newNode func(x, y float64) V, newEdge func(weight float64) E) error {
	nf, err := os.Open(nodePath)
	if err != nil {
		return readErr(nodePath, err)
	}
	defer nf.Close()

	sc := bufio.NewScanner(nf)
	sc.Split(bufio.ScanWords)

	if !sc.Scan() {
		return readErr(nodePath, fmt.Errorf("%w: missing node count", ErrMalformed))
	}
	numNodes, err := strconv.Atoi(sc.Text())
	if err != nil {
		return readErr(nodePath, fmt.Errorf("%w: malformed node count", ErrMalformed))
	}

	ids := make([]graph.NodeDescriptor, numNodes)
	for i := 0; i < numNodes; i++ {
		ids[i] = g.InsertNode(newNode(0, 0))
	}

	for sc.Scan() {
		idTok := sc.Text()
		if !sc.Scan() {
			return readErr(nodePath, fmt.Errorf("%w: truncated node line", ErrMalformed))
		}
		xTok := sc.Text()
		if !sc.Scan() {
			return readErr(nodePath, fmt.Errorf("%w: truncated node line", ErrMalformed))
		}
		yTok := sc.Text()

		id, err1 := strconv.Atoi(idTok)
		x, err2 := strconv.ParseFloat(xTok, 64)
		y, err3 := strconv.ParseFloat(yTok, 64)
		if err1 != nil || err2 != nil || err3 != nil || id < 0 || id >= numNodes {
			return readErr(nodePath, fmt.Errorf("%w: malformed node line", ErrMalformed))
		}
		g.SetNodeValue(ids[id], newNode(x, y))
	}
	if err := sc.Err(); err != nil {
		return readErr(nodePath, err)
	}

	ef, err := os.Open(edgePath)
	if err != nil {
		return readErr(edgePath, err)
	}
	defer ef.Close()

	esc := bufio.NewScanner(ef)
	for esc.Scan() {
		line := esc.Text()
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return readErr(edgePath, fmt.Errorf("%w: malformed edge line %q", ErrMalformed, line))
		}
		s, err1 := strconv.Atoi(fields[0])
		t, err2 := strconv.Atoi(fields[1])
		w, err3 := strconv.ParseFloat(fields[2], 64)
		if err1 != nil || err2 != nil || err3 != nil || s < 0 || s >= numNodes || t < 0 || t >= numNodes {
			return readErr(edgePath, fmt.Errorf("%w: malformed edge line %q", ErrMalformed, line))
		}
		g.InsertEdge(ids[s], ids[t], newEdge(w))
	}
	if err := esc.Err(); err != nil {
		return readErr(edgePath, err)
	}
	return nil
}

// WriteTGF writes g as a two-file TGF graph: nodePath gets a node count
// followed by "id x y" lines; edgePath gets "source target weight"
// lines. Nodes are 0-indexed in iteration order.
func WriteTGF[V, E any](g graph.Surface[V, E], nodePath, edgePath string, coord func(V) (x, y float64), weight func(E) float64) error {
	ids := make(map[graph.NodeDescriptor]int)
	id := 0

	nf, err := os.Create(nodePath)
	if err != nil {
		return writeErr(nodePath, err)
	}
	defer nf.Close()
	nw := bufio.NewWriter(nf)
	fmt.Fprintf(nw, "%d\n", g.NumNodes())
	for n := range g.Nodes() {
		ids[n] = id
		x, y := coord(g.NodeValue(n))
		fmt.Fprintf(nw, "%d %g %g\n", id, x, y)
		id++
	}
	if err := nw.Flush(); err != nil {
		return writeErr(nodePath, err)
	}

	ef, err := os.Create(edgePath)
	if err != nil {
		return writeErr(edgePath, err)
	}
	defer ef.Close()
	ew := bufio.NewWriter(ef)
	for n := range g.Nodes() {
		for ed := range g.OutEdges(n) {
			fmt.Fprintf(ew, "%d %d %g\n", ids[n], ids[g.Target(ed)], weight(g.EdgeValue(ed)))
		}
	}
	return writeErr(edgePath, ew.Flush())
}
