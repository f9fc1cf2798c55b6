package utils

import (
	"sync/atomic"
	"time"
)

var lastID atomic.Int64

// GenerateID returns a millisecond-timestamp identifier that is strictly
// increasing within the process, so bulk inserts landing in the same
// millisecond (the 7-row daily seeding, template cloning) cannot collide.
func GenerateID() int64 {
	for {
		now := time.Now().UnixMilli()
		last := lastID.Load()
		if now <= last {
			now = last + 1
		}
		if lastID.CompareAndSwap(last, now) {
			return now
		}
	}
}
