// Package lifecycle holds timing constants shared by start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every start or stop hook of a component.
const DefaultTimeout = 10 * time.Second
