package maskrle

import "github.com/yyyoichi/maskrle/internal/runs"

// Run is one "start length" pair. Start is the 1-indexed column-major
// position of the first foreground pixel.
type Run = runs.Run
