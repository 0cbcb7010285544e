// Package lifecycle holds shared constants for component start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds connect, ping and shutdown operations during
// application start and stop.
const DefaultTimeout = 15 * time.Second
