package canvas

import "fmt"

// debugMode mirrors the most recently set Canvas debug flag so that element
// operations (which lack a Canvas pointer) can check it cheaply. Only valid
// with a single Canvas; multiple Canvases with differing debug modes will
// reflect whichever called SetDebugMode last.
var debugMode bool

// debugCheckDisposed panics with a descriptive message when a disposed
// element is used in a tree operation. Callers skip this outside debug mode.
func debugCheckDisposed(e *Element, op string) {
	if e.IsDisposed() {
		panic(fmt.Sprintf("canvas debug: %s on disposed element %q (ID %d)", op, e.Name, e.ID))
	}
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(e *Element) {
	depth := 0
	for p := e; p != nil; p = p.parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		logger.Warn("canvas: tree depth exceeds threshold",
			"element", e.Name, "depth", depth, "threshold", debugMaxTreeDepth)
	}
}

// debugCheckChildCount warns if an element has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(e *Element) {
	if e.numChildren > debugMaxChildCount {
		logger.Warn("canvas: child count exceeds threshold",
			"element", e.Name, "children", e.numChildren, "threshold", debugMaxChildCount)
	}
}

// contractViolation reports a broken caller contract. It panics in debug
// mode and logs a warning otherwise, letting the caller continue.
func contractViolation(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if debugMode {
		panic("canvas debug: " + msg)
	}
	logger.Warn("canvas: contract violation", "detail", msg)
}
