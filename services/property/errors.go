package property

import "errors"

// ErrNotOwner signals that the caller does not own the listing it is
// trying to mutate.
var ErrNotOwner = errors.New("property belongs to another account")
