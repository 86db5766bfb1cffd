// Package timezone holds the application clock and calendar date helpers.
//
// Now reports the current time in the zone named by APP_TIMEZONE, loaded when the package is
// imported. Booking ranges are calendar dates and do not depend on that zone:
//
//	start, err := timezone.ParseDate("2024-03-09")
//	days := timezone.DaysBetween(start, end)
package timezone
