package inspect

// Node is one component in the inspection tree: the split view, a pane, a
// gutter or the status bar.
type Node struct {
	// Type is the component type ("SplitView", "Pane", "Gutter", ...).
	Type string `json:"type"`

	// ID tells siblings of the same type apart, e.g. a pane title.
	ID string `json:"id,omitempty"`

	// Bounds is the cell rectangle the component covers.
	Bounds Bounds `json:"bounds"`

	// Visible is false for hidden and collapsed components.
	Visible bool `json:"visible"`

	State map[string]interface{} `json:"state,omitempty"`

	Styles *StyleInfo `json:"styles,omitempty"`

	Children []*Node `json:"children,omitempty"`

	// Content is the text drawn by the component, if any.
	Content string `json:"content,omitempty"`

	// Truncated is set when Content did not fit.
	Truncated *TruncationInfo `json:"truncated,omitempty"`
}

// Bounds is a rectangle in terminal cells.
type Bounds struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Area returns the number of cells covered.
func (b Bounds) Area() int {
	if b.Width <= 0 || b.Height <= 0 {
		return 0
	}
	return b.Width * b.Height
}

// StyleInfo is the part of a lipgloss style worth looking at.
type StyleInfo struct {
	Foreground string `json:"foreground,omitempty"`
	Background string `json:"background,omitempty"`

	Bold      bool `json:"bold,omitempty"`
	Italic    bool `json:"italic,omitempty"`
	Underline bool `json:"underline,omitempty"`

	Border      string `json:"border,omitempty"`
	BorderColor string `json:"border_color,omitempty"`
	Padding     []int  `json:"padding,omitempty"` // [top, right, bottom, left]

	// AppliedStyles names the registered styles in use.
	AppliedStyles []string `json:"applied_styles,omitempty"`
}

// TruncationInfo describes text cut to fit its component.
type TruncationInfo struct {
	// OriginalLength is the cell width of the full text.
	OriginalLength int `json:"original_length"`

	// DisplayLength is the cell width left for it.
	DisplayLength int `json:"display_length"`

	Ellipsis bool `json:"ellipsis"`

	OriginalText string `json:"original_text,omitempty"`
}

// NewNode creates a visible node of the given type.
func NewNode(nodeType string) *Node {
	return &Node{
		Type:    nodeType,
		Visible: true,
		State:   make(map[string]interface{}),
	}
}

// WithID sets the node ID and returns the node for chaining.
func (n *Node) WithID(id string) *Node {
	n.ID = id
	return n
}

// WithBounds sets the node bounds and returns the node for chaining.
func (n *Node) WithBounds(x, y, width, height int) *Node {
	n.Bounds = Bounds{X: x, Y: y, Width: width, Height: height}
	return n
}

// WithVisible sets visibility and returns the node for chaining.
func (n *Node) WithVisible(visible bool) *Node {
	n.Visible = visible
	return n
}

// WithState adds a state key-value pair and returns the node for chaining.
func (n *Node) WithState(key string, value interface{}) *Node {
	if n.State == nil {
		n.State = make(map[string]interface{})
	}
	n.State[key] = value
	return n
}

// WithStyles sets the node styles and returns the node for chaining.
func (n *Node) WithStyles(styles *StyleInfo) *Node {
	n.Styles = styles
	return n
}

// WithChildren sets the node children and returns the node for chaining.
func (n *Node) WithChildren(children []*Node) *Node {
	n.Children = children
	return n
}

// AddChild adds a child node and returns the parent for chaining.
func (n *Node) AddChild(child *Node) *Node {
	n.Children = append(n.Children, child)
	return n
}

// WithContent sets the node content and returns the node for chaining.
func (n *Node) WithContent(content string) *Node {
	n.Content = content
	return n
}

// WithTruncation records that text of width original was cut to displayed
// cells.
func (n *Node) WithTruncation(original, displayed int, hasEllipsis bool) *Node {
	n.Truncated = &TruncationInfo{
		OriginalLength: original,
		DisplayLength:  displayed,
		Ellipsis:       hasEllipsis,
		OriginalText:   n.Content,
	}
	return n
}

// Walk calls fn for n and every descendant, parents first. Returning false
// skips the children of that node.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Find returns the first node of the given type, and ID when id is not
// empty, in walk order.
func (n *Node) Find(nodeType, id string) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if found != nil {
			return false
		}
		if c.Type == nodeType && (id == "" || c.ID == id) {
			found = c
			return false
		}
		return true
	})
	return found
}

// FindAll returns every node of the given type in walk order.
func (n *Node) FindAll(nodeType string) []*Node {
	var out []*Node
	n.Walk(func(c *Node) bool {
		if c.Type == nodeType {
			out = append(out, c)
		}
		return true
	})
	return out
}
