package graphio

import (
	"encoding/json"
	"os"

	"github.com/katalvlaran/pmgraph/graph"
)

type jsonNode struct {
	ID    int            `json:"id"`
	Props map[string]any `json:"props,omitempty"`
}

type jsonEdge struct {
	Source int            `json:"s"`
	Target int            `json:"t"`
	Props  map[string]any `json:"props,omitempty"`
}

type jsonGraph struct {
	Nodes []jsonNode `json:"nodes"`
	Edges []jsonEdge `json:"edges"`
}

type jsonDocument struct {
	Graph jsonGraph `json:"graph"`
}

// WriteJSON writes g to path as {"graph":{"nodes":[...],"edges":[...]}},
// 0-indexing nodes in iteration order. nodeProps and edgeProps, if
// non-nil, attach arbitrary per-element fields under "props"; there is
// no corresponding reader, matching the original format's write-only
// role as a visualization/export target.
func WriteJSON[V, E any](g graph.Surface[V, E], path string, nodeProps func(V) map[string]any, edgeProps func(E) map[string]any) error {
	ids := make(map[graph.NodeDescriptor]int)
	id := 0
	doc := jsonDocument{Graph: jsonGraph{
		Nodes: make([]jsonNode, 0, g.NumNodes()),
		Edges: make([]jsonEdge, 0, g.NumEdges()),
	}}

	for n := range g.Nodes() {
		ids[n] = id
		var props map[string]any
		if nodeProps != nil {
			props = nodeProps(g.NodeValue(n))
		}
		doc.Graph.Nodes = append(doc.Graph.Nodes, jsonNode{ID: id, Props: props})
		id++
	}
	for n := range g.Nodes() {
		for ed := range g.OutEdges(n) {
			var props map[string]any
			if edgeProps != nil {
				props = edgeProps(g.EdgeValue(ed))
			}
			doc.Graph.Edges = append(doc.Graph.Edges, jsonEdge{Source: ids[n], Target: ids[g.Target(ed)], Props: props})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return writeErr(path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return writeErr(path, err)
	}
	return nil
}
