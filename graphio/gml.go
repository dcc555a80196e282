package graphio

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/katalvlaran/pmgraph/graph"
)

// ReadGML parses a GML graph file at path: a sequence of "node [ k v
// ... ]" and "edge [ source s target t k v ... ]" blocks, tokenized on
// whitespace exactly like the original reader's stream extraction (so
// a block may span several lines). Nodes are assigned positions by
// declaration order; an edge's "source"/"target" values index into
// that order, not into the node's own "id" property — which, as in the
// original, is read back as an ordinary property rather than treated
// specially.
func ReadGML[V, E any](g graph.Surface[V, E], path string, newNode func(props map[string]string) V, newEdge func(props map[string]string) E) error {
	f, err := os.Open(path)
	if err != nil {
		return readErr(path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Split(bufio.ScanWords)

	var ids []graph.NodeDescriptor
	for sc.Scan() {
		switch sc.Text() {
		case "node":
			props, err := readGMLBlock(sc)
			if err != nil {
				return readErr(path, err)
			}
			ids = append(ids, g.InsertNode(newNode(props)))
		case "edge":
			props, err := readGMLBlock(sc)
			if err != nil {
				return readErr(path, err)
			}
			source, sOK := props["source"]
			target, tOK := props["target"]
			if !sOK || !tOK {
				return readErr(path, fmt.Errorf("%w: edge missing source/target", ErrMalformed))
			}
			delete(props, "source")
			delete(props, "target")
			s, err1 := strconv.Atoi(source)
			t, err2 := strconv.Atoi(target)
			if err1 != nil || err2 != nil || s < 0 || s >= len(ids) || t < 0 || t >= len(ids) {
				return readErr(path, fmt.Errorf("%w: edge source/target out of range", ErrMalformed))
			}
			g.InsertEdge(ids[s], ids[t], newEdge(props))
		}
	}
	if err := sc.Err(); err != nil {
		return readErr(path, err)
	}
	return nil
}

// readGMLBlock consumes the "[" that opens a node/edge block and every
// key/value pair up to the closing "]".
func readGMLBlock(sc *bufio.Scanner) (map[string]string, error) {
	if !sc.Scan() || sc.Text() != "[" {
		return nil, fmt.Errorf("%w: expected '[' after node/edge", ErrMalformed)
	}
	props := make(map[string]string)
	for sc.Scan() {
		key := sc.Text()
		if key == "]" {
			return props, nil
		}
		if !sc.Scan() {
			return nil, fmt.Errorf("%w: truncated block", ErrMalformed)
		}
		props[key] = sc.Text()
	}
	return nil, fmt.Errorf("%w: unterminated block", ErrMalformed)
}

// WriteGML writes g as a GML graph file at path, 0-indexing nodes in
// iteration order. nodeProps and edgeProps supply any extra properties
// beyond id/source/target.
func WriteGML[V, E any](g graph.Surface[V, E], path string, nodeProps func(V) map[string]string, edgeProps func(E) map[string]string) error {
	f, err := os.Create(path)
	if err != nil {
		return writeErr(path, err)
	}
	defer f.Close()

	ids := make(map[graph.NodeDescriptor]int)
	id := 0
	for n := range g.Nodes() {
		ids[n] = id
		id++
	}

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "graph [")
	for n := range g.Nodes() {
		fmt.Fprintln(w, "node [")
		fmt.Fprintf(w, "id %d\n", ids[n])
		writeGMLProps(w, nodeProps(g.NodeValue(n)), "id")
		fmt.Fprintln(w, "]")
	}
	for n := range g.Nodes() {
		for ed := range g.OutEdges(n) {
			fmt.Fprintln(w, "edge [")
			fmt.Fprintf(w, "source %d\n", ids[n])
			fmt.Fprintf(w, "target %d\n", ids[g.Target(ed)])
			writeGMLProps(w, edgeProps(g.EdgeValue(ed)), "source", "target")
			fmt.Fprintln(w, "]")
		}
	}
	fmt.Fprintln(w, "]")
	return writeErr(path, w.Flush())
}

func writeGMLProps(w *bufio.Writer, props map[string]string, skip ...string) {
	skipSet := make(map[string]struct{}, len(skip))
	for _, k := range skip {
		skipSet[k] = struct{}{}
	}
	keys := make([]string, 0, len(props))
	for k := range props {
		if _, ok := skipSet[k]; ok {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "%s %s\n", k, props[k])
	}
}
