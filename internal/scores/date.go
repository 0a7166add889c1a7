package scores

import "time"

// gameDateZone approximates US Eastern time with a constant UTC-5 offset.
// It is intentionally not DST-aware: the calendar date picked for the
// daily digest keeps the fixed offset year-round.
var gameDateZone = time.FixedZone("ET", -5*60*60)

// GameDateAt returns the calendar date of the given instant in the fixed
// UTC-5 zone, formatted as YYYY-MM-DD.
func GameDateAt(now time.Time) string {
	return now.In(gameDateZone).Format("2006-01-02")
}

// ResolveGameDate returns the target date for the games fetch.
// If dateOverride is non-empty, it is returned as-is; otherwise today's
// date in the fixed UTC-5 zone is used.
func ResolveGameDate(dateOverride string) string {
	if dateOverride != "" {
		return dateOverride
	}
	return GameDateAt(time.Now())
}
