// Package graphio reads and writes graph.Surface[V, E] graphs in the
// handful of plain-text formats the original reference implementation
// supports: DIMACS 9th Challenge (single and dual-criterion), DIMACS
// 10th Challenge's neighbor-list format, GML, TGF, and a JSON writer.
//
// Every function is generic over the graph's node and edge payload
// types; callers supply small constructor/accessor closures (newNode,
// coord, weight, ...) so graphio never needs to know what a node or
// edge payload actually looks like, the same convention
// multicriteria/arcflags uses for its coordinate and weight callbacks.
//
// Every reader and writer takes file paths and reports failures as a
// *PathError wrapping the underlying cause and the offending filename;
// there are no io.Reader/io.Writer variants.
package graphio
