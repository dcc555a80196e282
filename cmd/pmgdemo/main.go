// Command pmgdemo loads a DIMACS10 road map into a packed memory graph,
// runs a breadth-first search from an arbitrary node, and reports the
// maximum edge/node distance reached — a Go rendering of the original
// reference implementation's own example program.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/pmgraph/graph"
	"github.com/katalvlaran/pmgraph/graphio"
	"github.com/katalvlaran/pmgraph/pmg"
)

type nodeInfo struct {
	marked   bool
	distance int
	x, y     float64
}

type edgeInfo struct {
	distance int
}

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

	var path, mapName string
	pflag.StringVar(&path, "path", "", "directory containing the DIMACS10 map files")
	pflag.StringVar(&mapName, "map", "", "map name, without the .osm.graph/.osm.xyz suffix")
	pflag.Parse()

	if path == "" || mapName == "" {
		log.Fatal().Msg("both --path and --map are required")
	}

	mapFile := path + "/" + mapName + ".osm.graph"
	coordFile := path + "/" + mapName + ".osm.xyz"

	g := pmg.New[nodeInfo, edgeInfo]()
	newNode := func(x, y float64) nodeInfo { return nodeInfo{x: x, y: y} }
	newEdge := func() edgeInfo { return edgeInfo{} }
	if err := graphio.ReadDIMACS10[nodeInfo, edgeInfo](g, mapFile, coordFile, newNode, newEdge); err != nil {
		log.Fatal().Err(err).Str("map", mapFile).Msg("failed to read map")
	}
	log.Info().Int("nodes", g.NumNodes()).Int("edges", g.NumEdges()).Msg("map loaded")

	s, ok := g.ChooseNode()
	if !ok {
		log.Fatal().Msg("map has no nodes")
	}

	calcDistances(g, s)

	log.Info().
		Int("maxEdgeDistance", findMaxEdgeDistance(g)).
		Int("maxNodeDistance", findMaxNodeDistance(g)).
		Msg("distances computed")
}

// calcDistances runs a breadth-first search from s, recording the hop
// distance from s on every reachable node and the edge that first
// reached it.
func calcDistances(g *pmg.Graph[nodeInfo, edgeInfo], s graph.NodeDescriptor) {
	for n := range g.Nodes() {
		v := g.NodeValue(n)
		v.marked = false
		g.SetNodeValue(n, v)
	}

	queue := []graph.NodeDescriptor{s}
	sv := g.NodeValue(s)
	sv.marked = true
	sv.distance = 0
	g.SetNodeValue(s, sv)

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		ud := g.NodeValue(u).distance

		for ed := range g.OutEdges(u) {
			v := g.Target(ed)
			if g.NodeValue(v).marked {
				continue
			}
			ev := g.EdgeValue(ed)
			ev.distance = ud
			g.SetEdgeValue(ed, ev)

			vv := g.NodeValue(v)
			vv.marked = true
			vv.distance = ud + 1
			g.SetNodeValue(v, vv)
			queue = append(queue, v)
		}
	}
}

func findMaxEdgeDistance(g *pmg.Graph[nodeInfo, edgeInfo]) int {
	max := 0
	for n := range g.Nodes() {
		for ed := range g.OutEdges(n) {
			if d := g.EdgeValue(ed).distance; d > max {
				max = d
			}
		}
	}
	return max
}

func findMaxNodeDistance(g *pmg.Graph[nodeInfo, edgeInfo]) int {
	max := 0
	for n := range g.Nodes() {
		if d := g.NodeValue(n).distance; d > max {
			max = d
		}
	}
	return max
}
