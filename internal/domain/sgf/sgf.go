package sgf

import "gib2sgf/internal/domain/game"

// Collection is the content of an SGF file: one or more game trees.
type Collection struct {
	Trees []*GameTree
}

// GameTree is a main line of nodes followed by its variations.
type GameTree struct {
	Nodes    []*Node
	Children []*GameTree
}

func NewCollection(trees ...*GameTree) *Collection {
	return &Collection{Trees: trees}
}

func NewGameTree() *GameTree {
	return &GameTree{}
}

func (t *GameTree) AddNode(node *Node) {
	t.Nodes = append(t.Nodes, node)
}

func (t *GameTree) AddChild(child *GameTree) {
	t.Children = append(t.Children, child)
}

// AddMove appends a node holding a single B or W property. A pass is written
// as an empty value.
func (t *GameTree) AddMove(move game.Move) {
	node := NewNode()
	value := ""
	if !move.Pass {
		value = move.Point.Sgf()
	}
	node.SetProperty(move.Color.SgfColor(), value)
	t.AddNode(node)
}
