package scan

import "fmt"

// PositionError reports a transition whose position is outside the matrix.
// That is a contract violation by the matrix scanner and is fatal: silently
// dropping the transition would desynchronize illumination state from the
// physical keys.
type PositionError struct {
	Pos     int
	NumKeys int
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("scan: position %d outside matrix [0,%d)", e.Pos, e.NumKeys)
}
