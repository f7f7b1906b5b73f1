package layout

// Width breakpoints
const (
	// MinWidth is the narrowest terminal the split view is laid out for.
	MinWidth = 40

	// StandardWidth is the threshold for standard layout.
	StandardWidth = 100

	// FullWidth is the threshold for full layout.
	FullWidth = 140
)

// Height breakpoints
const (
	// MinHeight is the shortest terminal the split view is laid out for.
	MinHeight = 10

	// StandardHeight is the threshold for standard layout.
	StandardHeight = 24

	// FullHeight is the threshold for full layout.
	FullHeight = 40
)

// Status bar constraints
const (
	// StatusMinHeight is the key hint line alone.
	StatusMinHeight = 1

	// StatusStandardHeight adds the notification line.
	StatusStandardHeight = 2

	// HelpMaxHeight caps the full help listing.
	HelpMaxHeight = 8
)

// Pane constraints
const (
	// PaneBorderCells is what a border takes from a pane along each axis.
	PaneBorderCells = 2

	// PaneMinBorderedCells is the smallest pane that still gets a border.
	PaneMinBorderedCells = PaneBorderCells + 1
)
