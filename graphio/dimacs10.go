package graphio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/pmgraph/graph"
)

// ReadDIMACS10 parses a DIMACS 10th Challenge graph file at path: a
// header line "numNodes numEdges" (comment lines starting with '%'
// skipped), followed by one 1-indexed neighbor list per node. It
// inserts numNodes nodes and, for each listed neighbor, one directed
// edge built by newEdge; an undirected file lists both directions so
// the resulting graph is symmetric. If coordPath is non-empty, a
// companion "x y z" line per node (z ignored) sets each node's
// coordinates via newNode.
func ReadDIMACS10[V, E any](g graph.Surface[V, E], path, coordPath string, newNode func(x, y float64) V, newEdge func() E) error {
	f, err := os.Open(path)
	if err != nil {
		return readErr(path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var numNodes, numEdges int
	for sc.Scan() {
		line := sc.Text()
		if line == "" || line[0] == '%' {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return readErr(path, fmt.Errorf("%w: malformed header %q", ErrMalformed, line))
		}
		var errN, errM error
		numNodes, errN = strconv.Atoi(fields[0])
		numEdges, errM = strconv.Atoi(fields[1])
		if errN != nil || errM != nil {
			return readErr(path, fmt.Errorf("%w: malformed header %q", ErrMalformed, line))
		}
		break
	}

	g.Reserve(numNodes, numEdges<<1)
	nodes := make([]graph.NodeDescriptor, numNodes+1)
	for id := 1; id <= numNodes; id++ {
		nodes[id] = g.InsertNode(newNode(0, 0))
	}

	for source := 1; source <= numNodes; source++ {
		var line string
		for sc.Scan() {
			line = sc.Text()
			if line != "" && line[0] == '%' {
				continue
			}
			break
		}
		for _, field := range strings.Fields(line) {
			target, err := strconv.Atoi(field)
			if err != nil {
				return readErr(path, fmt.Errorf("%w: malformed neighbor list %q", ErrMalformed, line))
			}
			g.InsertEdge(nodes[source], nodes[target], newEdge())
		}
	}
	if err := sc.Err(); err != nil {
		return readErr(path, err)
	}

	if coordPath == "" {
		return nil
	}
	return readDIMACS10Coords(coordPath, g, nodes, newNode)
}

func readDIMACS10Coords[V, E any](path string, g graph.Surface[V, E], nodes []graph.NodeDescriptor, newNode func(x, y float64) V) error {
	f, err := os.Open(path)
	if err != nil {
		return readErr(path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for source := 1; source < len(nodes) && sc.Scan(); source++ {
		line := sc.Text()
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return readErr(path, fmt.Errorf("%w: malformed coordinate line %q", ErrMalformed, line))
		}
		x, err1 := strconv.ParseFloat(fields[0], 64)
		y, err2 := strconv.ParseFloat(fields[1], 64)
		if err1 != nil || err2 != nil {
			return readErr(path, fmt.Errorf("%w: malformed coordinate line %q", ErrMalformed, line))
		}
		g.SetNodeValue(nodes[source], newNode(x, y))
	}
	if err := sc.Err(); err != nil {
		return readErr(path, err)
	}
	return nil
}

// WriteDIMACS10 writes g as a DIMACS 10th Challenge neighbor-list file
// at path, 1-indexing nodes in iteration order, and a companion "x y 0"
// coordinate file if coordPath is non-empty.
func WriteDIMACS10[V, E any](g graph.Surface[V, E], path, coordPath string, coord func(V) (x, y float64)) error {
	ids := assignDIMACS9Ids[V, E](g)

	f, err := os.Create(path)
	if err != nil {
		return writeErr(path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%d %d\n", g.NumNodes(), g.NumEdges()/2)
	for n := range g.Nodes() {
		first := true
		for ed := range g.OutEdges(n) {
			if !first {
				fmt.Fprint(w, " ")
			}
			fmt.Fprintf(w, "%d", ids[g.Target(ed)])
			first = false
		}
		fmt.Fprint(w, "\n")
	}
	if err := w.Flush(); err != nil {
		return writeErr(path, err)
	}

	if coordPath == "" {
		return nil
	}

	cf, err := os.Create(coordPath)
	if err != nil {
		return writeErr(coordPath, err)
	}
	defer cf.Close()
	cw := bufio.NewWriter(cf)
	for n := range g.Nodes() {
		x, y := coord(g.NodeValue(n))
		fmt.Fprintf(cw, "%g %g 0\n", x, y)
	}
	return writeErr(coordPath, cw.Flush())
}
