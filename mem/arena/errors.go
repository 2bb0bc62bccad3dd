package arena

import "errors"

// ErrNoSpace indicates that no free block large enough was found. The arena
// does not grow; the caller must free memory or build a larger arena.
var ErrNoSpace = errors.New("arena: no free block large enough")
