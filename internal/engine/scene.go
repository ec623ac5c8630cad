package engine

// Scene owns the root of a node tree.
type Scene struct {
	Name string
	Root *Node
}

func NewScene(name string) *Scene {
	return &Scene{
		Name: name,
		Root: NewNode(name, KindOther),
	}
}

// Add attaches n (and its subtree) directly under the root.
func (s *Scene) Add(n *Node) {
	s.Root.AddChild(n)
}

// Start starts the components of every node, parents first.
func (s *Scene) Start() {
	s.Root.Walk(func(n *Node) bool {
		n.Start()
		return true
	})
}

// Update runs one component update over the whole tree.
func (s *Scene) Update(deltaTime float32) {
	s.Root.Walk(func(n *Node) bool {
		n.Update(deltaTime)
		return true
	})
}
