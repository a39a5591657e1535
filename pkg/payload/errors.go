package payload

import "errors"

var (
	ErrUnsupportedFormat = errors.New("payload: unsupported format")
	ErrNotAnObject       = errors.New("payload: document is not an object")
	ErrDecode            = errors.New("payload: decode failed")
)
