package graphio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/pmgraph/graph"
)

// dimacsArc is one parsed "a" line, held until every arc has been read
// so edges can be inserted in (source, target) order.
type dimacsArc struct {
	source, target int
	weight         int64
}

func parseDIMACS9Arcs(r io.Reader) (numNodes, numEdges int, arcs []dimacsArc, err error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		switch line[0] {
		case 'p':
			fields := strings.Fields(line)
			if len(fields) < 4 {
				return 0, 0, nil, fmt.Errorf("%w: malformed p line %q", ErrMalformed, line)
			}
			numNodes, err = strconv.Atoi(fields[2])
			if err != nil {
				return 0, 0, nil, fmt.Errorf("%w: malformed p line %q", ErrMalformed, line)
			}
			numEdges, err = strconv.Atoi(fields[3])
			if err != nil {
				return 0, 0, nil, fmt.Errorf("%w: malformed p line %q", ErrMalformed, line)
			}
			arcs = make([]dimacsArc, 0, numEdges)
		case 'a':
			fields := strings.Fields(line)
			if len(fields) < 4 {
				return 0, 0, nil, fmt.Errorf("%w: malformed a line %q", ErrMalformed, line)
			}
			u, err1 := strconv.Atoi(fields[1])
			v, err2 := strconv.Atoi(fields[2])
			w, err3 := strconv.ParseInt(fields[3], 10, 64)
			if err1 != nil || err2 != nil || err3 != nil {
				return 0, 0, nil, fmt.Errorf("%w: malformed a line %q", ErrMalformed, line)
			}
			arcs = append(arcs, dimacsArc{source: u, target: v, weight: w})
		}
	}
	if err := sc.Err(); err != nil {
		return 0, 0, nil, err
	}
	return numNodes, numEdges, arcs, nil
}

func readDIMACS9Coords(path string) (map[int][2]float64, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, readErr(path, err)
	}
	defer f.Close()

	coords := make(map[int][2]float64)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if line == "" || line[0] != 'v' {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, readErr(path, fmt.Errorf("%w: malformed v line %q", ErrMalformed, line))
		}
		id, err1 := strconv.Atoi(fields[1])
		x, err2 := strconv.ParseFloat(fields[2], 64)
		y, err3 := strconv.ParseFloat(fields[3], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			return nil, readErr(path, fmt.Errorf("%w: malformed v line %q", ErrMalformed, line))
		}
		coords[id] = [2]float64{x, y}
	}
	if err := sc.Err(); err != nil {
		return nil, readErr(path, err)
	}
	return coords, nil
}

func insertDIMACS9Nodes[V, E any](g graph.Surface[V, E], numNodes int, coords map[int][2]float64, newNode func(x, y float64) V) []graph.NodeDescriptor {
	nodes := make([]graph.NodeDescriptor, numNodes+1)
	for id := 1; id <= numNodes; id++ {
		x, y := 0.0, 0.0
		if c, ok := coords[id]; ok {
			x, y = c[0], c[1]
		}
		nodes[id] = g.InsertNode(newNode(x, y))
	}
	return nodes
}

func sortArcs(arcs []dimacsArc) {
	sort.Slice(arcs, func(i, j int) bool {
		if arcs[i].source != arcs[j].source {
			return arcs[i].source < arcs[j].source
		}
		return arcs[i].target < arcs[j].target
	})
}

// ReadDIMACS9 parses a DIMACS 9th Challenge shortest-path file at path
// (a "p sp n m" problem line followed by 1-indexed "a u v w" arc lines)
// and, if coordPath is non-empty, a companion coordinate file ("v id x
// y" per node). It inserts one node per declared id, built by newNode
// from that node's coordinates (or (0, 0) if coordPath is empty or
// omits an id), and one edge per arc, built by newEdge from its weight.
func ReadDIMACS9[V, E any](g graph.Surface[V, E], path, coordPath string, newNode func(x, y float64) V, newEdge func(weight int64) E) error {
	f, err := os.Open(path)
	if err != nil {
		return readErr(path, err)
	}
	defer f.Close()

	numNodes, numEdges, arcs, err := parseDIMACS9Arcs(f)
	if err != nil {
		return readErr(path, err)
	}

	coords, err := readDIMACS9Coords(coordPath)
	if err != nil {
		return err
	}

	g.Reserve(numNodes, numEdges)
	nodes := insertDIMACS9Nodes(g, numNodes, coords, newNode)

	sortArcs(arcs)
	for _, a := range arcs {
		g.InsertEdge(nodes[a.source], nodes[a.target], newEdge(a.weight))
	}
	return nil
}

// WriteDIMACS9 writes g as a DIMACS 9th Challenge shortest-path file at
// path and, if coordPath is non-empty, a companion coordinate file.
// Node ids are assigned 1-indexed in g's iteration order.
func WriteDIMACS9[V, E any](g graph.Surface[V, E], path, coordPath string, coord func(V) (x, y float64), weight func(E) int64) error {
	ids := assignDIMACS9Ids[V, E](g)

	f, err := os.Create(path)
	if err != nil {
		return writeErr(path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "p sp %d %d\n", g.NumNodes(), g.NumEdges())
	for n := range g.Nodes() {
		for ed := range g.OutEdges(n) {
			fmt.Fprintf(w, "a %d %d %d\n", ids[n], ids[g.Target(ed)], weight(g.EdgeValue(ed)))
		}
	}
	if err := w.Flush(); err != nil {
		return writeErr(path, err)
	}

	if coordPath == "" {
		return nil
	}
	return writeDIMACS9CoordFile(coordPath, g, ids, coord)
}

func assignDIMACS9Ids[V, E any](g graph.Surface[V, E]) map[graph.NodeDescriptor]int {
	ids := make(map[graph.NodeDescriptor]int)
	id := 1
	for n := range g.Nodes() {
		ids[n] = id
		id++
	}
	return ids
}

func writeDIMACS9CoordFile[V, E any](path string, g graph.Surface[V, E], ids map[graph.NodeDescriptor]int, coord func(V) (x, y float64)) error {
	cf, err := os.Create(path)
	if err != nil {
		return writeErr(path, err)
	}
	defer cf.Close()

	cw := bufio.NewWriter(cf)
	fmt.Fprintf(cw, "p aux sp co %d\n", g.NumNodes())
	for n := range g.Nodes() {
		x, y := coord(g.NodeValue(n))
		fmt.Fprintf(cw, "v %d %d %d\n", ids[n], int64(x), int64(y))
	}
	return writeErr(path, cw.Flush())
}

// ReadDIMACS9Double parses two parallel DIMACS 9th Challenge files
// sharing the same node/arc topology — one carrying distances, the
// other travel times — merging them into a single two-criterion edge
// payload built by newEdge(distance, time), mirroring
// DIMACS9DoubleReader's two-pass merge into criteriaList[0]/[1].
func ReadDIMACS9Double[V, E any](g graph.Surface[V, E], distPath, timePath, coordPath string, newNode func(x, y float64) V, newEdge func(distance, time int64) E) error {
	df, err := os.Open(distPath)
	if err != nil {
		return readErr(distPath, err)
	}
	numNodes, numEdges, distArcs, err := parseDIMACS9Arcs(df)
	df.Close()
	if err != nil {
		return readErr(distPath, err)
	}

	tf, err := os.Open(timePath)
	if err != nil {
		return readErr(timePath, err)
	}
	_, _, timeArcs, err := parseDIMACS9Arcs(tf)
	tf.Close()
	if err != nil {
		return readErr(timePath, err)
	}
	times := make(map[[2]int]int64, len(timeArcs))
	for _, a := range timeArcs {
		times[[2]int{a.source, a.target}] = a.weight
	}

	coords, err := readDIMACS9Coords(coordPath)
	if err != nil {
		return err
	}

	g.Reserve(numNodes, numEdges)
	nodes := insertDIMACS9Nodes(g, numNodes, coords, newNode)

	sortArcs(distArcs)
	for _, a := range distArcs {
		g.InsertEdge(nodes[a.source], nodes[a.target], newEdge(a.weight, times[[2]int{a.source, a.target}]))
	}
	return nil
}

// WriteDIMACS9Double writes g's two edge criteria as two parallel
// DIMACS 9th Challenge files, and a coordinate file if coordPath is
// non-empty.
func WriteDIMACS9Double[V, E any](g graph.Surface[V, E], distPath, timePath, coordPath string, coord func(V) (x, y float64), weight func(e E) (distance, time int64)) error {
	ids := assignDIMACS9Ids[V, E](g)

	writeOne := func(path string, pick func(E) int64) error {
		f, err := os.Create(path)
		if err != nil {
			return writeErr(path, err)
		}
		defer f.Close()
		w := bufio.NewWriter(f)
		fmt.Fprintf(w, "p sp %d %d\n", g.NumNodes(), g.NumEdges())
		for n := range g.Nodes() {
			for ed := range g.OutEdges(n) {
				fmt.Fprintf(w, "a %d %d %d\n", ids[n], ids[g.Target(ed)], pick(g.EdgeValue(ed)))
			}
		}
		return writeErr(path, w.Flush())
	}

	if err := writeOne(distPath, func(e E) int64 { d, _ := weight(e); return d }); err != nil {
		return err
	}
	if err := writeOne(timePath, func(e E) int64 { _, t := weight(e); return t }); err != nil {
		return err
	}

	if coordPath == "" {
		return nil
	}
	return writeDIMACS9CoordFile(coordPath, g, ids, coord)
}
