// Package lifecycle holds shared lifecycle constants for startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds lifecycle operations such as graceful shutdown and
// startup connectivity checks.
const DefaultTimeout = 10 * time.Second
