package game

import (
	"math"
	"strconv"
	"time"
)

// elapsedSeconds rounds the played time to whole seconds
func elapsedSeconds(start, now time.Time) int {
	return int(math.Round(now.Sub(start).Seconds()))
}

// parseIndex converts a client-sent index, returning -1 on garbage
func parseIndex(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return -1
	}
	return n
}

// RemainingSeconds reports the whole seconds left before the deadline
func RemainingSeconds(s Session, now time.Time) int {
	return int(math.Round(s.Deadline().Sub(now).Seconds()))
}
