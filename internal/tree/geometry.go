package tree

import "github.com/bwhmather/hayward/internal/wlcore"

// Rect is the pixel-rectangle type shared with the toolkit boundary.
type Rect = wlcore.Rect

// Border is the floating-window decoration kind (spec §4.2).
type Border int

const (
	BorderNone Border = iota
	BorderPixel
	BorderNormal
	BorderClientSide
)

// ContentInsets returns the left, top, right, bottom pixel insets a border
// kind subtracts from a window's bounding rectangle to get its content
// rectangle.
func (b Border) ContentInsets(borderWidth, titlebarHeight float64) (left, top, right, bottom float64) {
	switch b {
	case BorderNone:
		return 0, 0, 0, 0
	case BorderPixel:
		return borderWidth, borderWidth, borderWidth, borderWidth
	case BorderNormal:
		return borderWidth, titlebarHeight, borderWidth, borderWidth
	case BorderClientSide:
		return 0, 0, 0, 0
	default:
		return 0, 0, 0, 0
	}
}

// ColumnLayout is a Column's child-display mode (spec §3.4).
type ColumnLayout int

const (
	LayoutSplit ColumnLayout = iota
	LayoutStacked
)

// FocusMode indicates which of a Workspace's two surface populations holds
// the currently focused member (spec §3.5).
type FocusMode int

const (
	FocusTiling FocusMode = iota
	FocusFloating
)

// SmartGaps selects when outer gaps disappear for a workspace with a single
// visible container (spec §4.2, resolved definition in SPEC_FULL.md §9).
type SmartGaps int

const (
	SmartGapsOff SmartGaps = iota
	SmartGapsOn
	SmartGapsInverse
)

// HideEdgeBorders selects which sides of a window's border are suppressed
// when that side coincides with its workspace's usable-rectangle edge
// (spec §6). Mirrors config.HideEdgeBorders one-for-one; kept as a separate
// type so internal/tree has no dependency on internal/config.
type HideEdgeBorders int

const (
	HideEdgeBordersNone HideEdgeBorders = iota
	HideEdgeBordersVertical
	HideEdgeBordersHorizontal
	HideEdgeBordersBoth
	// HideEdgeBordersSmart suppresses all edge borders only when the
	// workspace holds a single visible container and no gaps are
	// configured.
	HideEdgeBordersSmart
	// HideEdgeBordersSmartNoGaps suppresses all edge borders whenever the
	// workspace holds a single visible container, regardless of gaps.
	HideEdgeBordersSmartNoGaps
)

// edgeMask is a bitset of the four sides of a rectangle.
type edgeMask int

const (
	edgeLeft edgeMask = 1 << iota
	edgeTop
	edgeRight
	edgeBottom
)

// MinSaneSize is the minimum inner width/height gaps may not shrink a
// workspace's usable rectangle below (P8).
const MinSaneSize = 100.0

// DefaultFloatingMinW/H are the "automatic" floating minimum dimensions
// (spec §4.2: "0 means automatic: 75x50 min").
const (
	DefaultFloatingMinW = 75.0
	DefaultFloatingMinH = 50.0
)

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
