package sprinkle

import "errors"

// ErrNoArts is returned by Stream when the sprite library is empty; there is
// nothing to place and the reference tool treats this as a usage error
// rather than silently passing input through unchanged.
var ErrNoArts = errors.New("sprinkle: sprite library is empty")
