package results

import "errors"

// Sentinel kinds for result shaping errors.
var (
	// ErrNoRoundName means a scored exercise has no round-exercise metadata.
	// That is corrupt reference data, not a normal miss, and fails the request.
	ErrNoRoundName = errors.New("no round name for scored exercise")
)
