package sanitizer

import "errors"

// ErrUnknownPolicy is returned by ParsePolicy for names it does not recognise.
var ErrUnknownPolicy = errors.New("unknown sanitizer policy")
