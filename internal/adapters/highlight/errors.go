package highlight

import "errors"

// ErrHighlight marks a failed highlighting pass.
var ErrHighlight = errors.New("highlight failed")
