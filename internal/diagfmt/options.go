package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto keeps the path as it was given to the file set.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always uses absolute paths.
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color    bool
	Context  int // source lines shown above the primary line
	PathMode PathMode
	// BaseDir anchors PathModeRelative; the working directory when empty.
	BaseDir   string
	ShowNotes bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	IncludePositions bool // adds line/col
	PathMode         PathMode
	BaseDir          string
	Max              int // caps the output, not the bag
	IncludeNotes     bool
}
