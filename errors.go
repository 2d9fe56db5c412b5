package krill

import "errors"

// ErrInvalidArgument is wrapped by every error caused by an input which cannot be evaluated,
// such as an unknown libration point or a mass ratio outside of ]0;1[.
var ErrInvalidArgument = errors.New("invalid argument")
