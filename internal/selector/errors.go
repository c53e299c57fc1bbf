package selector

import "errors"

// ErrSelector indicates a selector token that cannot be parsed.
var ErrSelector = errors.New("selector: malformed selector")
