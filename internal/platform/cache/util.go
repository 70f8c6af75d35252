package cache

import (
	"time"
)

// TimeUntilNextMidnightUTC returns the duration until the next UTC day
// starts. Daily snapshot tables are recalculated once per day by the
// ingestion job, so their cache entries expire at the day boundary.
func TimeUntilNextMidnightUTC() time.Duration {
	now := time.Now().UTC()
	next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).Add(24 * time.Hour)
	return next.Sub(now)
}
