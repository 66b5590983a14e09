package strutil

import "errors"

// ErrInvalidNamespace is returned when a UUID namespace is neither a known
// alias nor a valid UUID.
var ErrInvalidNamespace = errors.New("invalid uuid namespace")
