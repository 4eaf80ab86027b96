package pipeline

// Node is a named state in the turn workflow.
type Node string

const (
	NodeRouter  Node = "router"
	NodeNews    Node = "news"
	NodeFormat  Node = "format"
	NodeGeneral Node = "general"
	NodeEnd     Node = "end"
)

// Edge is one allowed transition in the workflow graph.
type Edge struct {
	From Node
	To   Node
}

// graphEdges is the static shape of the turn workflow: the router fans out
// to the news or general path, the news path always passes through format,
// and both paths terminate.
var graphEdges = []Edge{
	{From: NodeRouter, To: NodeNews},
	{From: NodeRouter, To: NodeGeneral},
	{From: NodeNews, To: NodeFormat},
	{From: NodeFormat, To: NodeEnd},
	{From: NodeGeneral, To: NodeEnd},
}

// Nodes returns the workflow's named nodes in execution order.
func Nodes() []Node {
	return []Node{NodeRouter, NodeNews, NodeFormat, NodeGeneral, NodeEnd}
}

// Edges returns a copy of the workflow's transition table.
func Edges() []Edge {
	out := make([]Edge, len(graphEdges))
	copy(out, graphEdges)
	return out
}

// validTransition reports whether from -> to is an edge of the graph.
func validTransition(from, to Node) bool {
	for _, e := range graphEdges {
		if e.From == from && e.To == to {
			return true
		}
	}
	return false
}
