package utils

import (
	"time"
)

// NowUTC returns current time in UTC. Services take it as their default
// clock; tests swap in a fixed one.
func NowUTC() time.Time {
	return time.Now().UTC()
}
