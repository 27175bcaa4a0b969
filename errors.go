package vtcore

import "errors"

// ErrAllocation is wrapped by errors NewFrameBuffer/Resize return when the
// requested grid cannot be allocated.
var ErrAllocation = errors.New("vtcore: frame buffer allocation failed")
