package sgf

import "strings"

var valueEscaper = strings.NewReplacer(`\`, `\\`, `]`, `\]`)

// Render writes the collection in SGF text form.
func (c *Collection) Render() string {
	var builder strings.Builder
	for _, tree := range c.Trees {
		tree.render(&builder)
	}
	return builder.String()
}

func (c *Collection) String() string {
	return c.Render()
}

func (t *GameTree) render(builder *strings.Builder) {
	builder.WriteString("(")
	for _, node := range t.Nodes {
		node.render(builder)
	}
	for _, child := range t.Children {
		child.render(builder)
	}
	builder.WriteString(")")
}

func (n *Node) render(builder *strings.Builder) {
	builder.WriteString(";")
	for _, name := range n.names {
		builder.WriteString(name)
		for _, v := range n.properties[name] {
			builder.WriteString("[")
			builder.WriteString(EscapeValue(v))
			builder.WriteString("]")
		}
	}
}

// EscapeValue escapes the characters that would end or corrupt a property
// value.
func EscapeValue(v string) string {
	return valueEscaper.Replace(v)
}
