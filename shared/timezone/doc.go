// Package timezone pins every time value the service produces to one configured location.
//
// Usage:
//
//	now := timezone.Now()                              // current time in app timezone
//	day, err := timezone.ParseDate("2020-01-28")       // midnight of a calendar date
//	day = timezone.Date(someTime)                      // drop the clock part
//
// The location comes from APP_TIMEZONE (IANA names such as "UTC" or "Europe/London")
// and is loaded when the package is imported. Unknown names fall back to UTC.
package timezone
