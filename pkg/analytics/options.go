package analytics

import "time"

// Options controls the clock and time zone used to bucket events.
type Options struct {
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	// Location is the zone calendar days and hours are computed in.
	// Defaults to time.Local.
	Location *time.Location
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now().In(o.location())
	}
	return time.Now().In(o.location())
}

func (o Options) location() *time.Location {
	if o.Location != nil {
		return o.Location
	}
	return time.Local
}

// startOfDay returns the first instant of calendar day k in loc. Zones
// that start DST at 00:00 have no local midnight on that day, and
// time.Date normalizes it into the previous day.
func startOfDay(k dayKey, loc *time.Location) time.Time {
	t := time.Date(k.y, k.m, k.d, 0, 0, 0, 0, loc)
	for keyOf(t) != k {
		t = t.Add(time.Hour)
	}
	return t
}
