package broadcast

import "errors"

// ErrClosed is returned by Publish after the broadcaster has been closed.
var ErrClosed = errors.New("broadcaster is closed")
