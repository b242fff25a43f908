package latex

import "strings"

// String renders node into a string. Rendering stops at the first node of unknown kind and String returns output
// written so far, use Render to get the error. Nodes accepted by Builder always render completely.
func String(node *Node) string {
	var out strings.Builder
	_ = Render(&out, node)

	return out.String()
}
