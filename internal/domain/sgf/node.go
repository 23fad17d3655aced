package sgf

// Node is a set of properties such as B[pd] or AB[dd][pp]. Property order is
// kept so that output is reproducible.
type Node struct {
	names      []string
	properties map[string][]string
}

func NewNode() *Node {
	return &Node{properties: make(map[string][]string)}
}

// Valuer is a value with an SGF text form, such as a point or a result.
type Valuer interface {
	Sgf() string
}

// SetProperty replaces the values of name with value.
func (n *Node) SetProperty(name, value string) {
	n.set(name, []string{value})
}

// SetPropertyList replaces the values of name with values. An empty list
// removes the property.
func (n *Node) SetPropertyList(name string, values ...string) {
	if len(values) == 0 {
		n.Remove(name)
		return
	}
	n.set(name, append([]string(nil), values...))
}

// SetPropertyIfPresent sets name only when value is not empty.
func (n *Node) SetPropertyIfPresent(name, value string) {
	if value != "" {
		n.SetProperty(name, value)
	}
}

func (n *Node) SetValue(name string, v Valuer) {
	n.SetProperty(name, v.Sgf())
}

// SetValues is SetPropertyList for typed values.
func SetValues[T Valuer](n *Node, name string, values ...T) {
	texts := make([]string, len(values))
	for i, v := range values {
		texts[i] = v.Sgf()
	}
	n.SetPropertyList(name, texts...)
}

// SetOptional sets name when value is not nil.
func SetOptional[T Valuer](n *Node, name string, value *T) {
	if value != nil {
		n.SetValue(name, *value)
	}
}

func (n *Node) set(name string, values []string) {
	if _, ok := n.properties[name]; !ok {
		n.names = append(n.names, name)
	}
	n.properties[name] = values
}

func (n *Node) Remove(name string) {
	if _, ok := n.properties[name]; !ok {
		return
	}
	delete(n.properties, name)
	for i, existing := range n.names {
		if existing == name {
			n.names = append(n.names[:i], n.names[i+1:]...)
			break
		}
	}
}

// Property returns the values of name.
func (n *Node) Property(name string) ([]string, bool) {
	values, ok := n.properties[name]
	return values, ok
}

// Names returns the property names in insertion order.
func (n *Node) Names() []string {
	names := make([]string, len(n.names))
	copy(names, n.names)
	return names
}
