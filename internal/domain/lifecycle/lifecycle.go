// Package lifecycle holds process-wide lifecycle settings.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of servers and closing of external clients.
const DefaultTimeout = 10 * time.Second
