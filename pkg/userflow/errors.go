package userflow

import "errors"

// ErrDirectoryLookup wraps failures of the username Directory.
var ErrDirectoryLookup = errors.New("userflow: username lookup failed")
