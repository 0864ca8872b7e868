// Package timezone provides the application's time handling.
//
// All persisted instants are absolute (UTC). Local calendar concerns are
// resolved against a fixed reference offset configured through
// RESERVATION_REFERENCE_OFFSET_MINUTES, never against the host timezone
// database, so results are identical on every host.
//
// Usage Examples:
//
//  1. Day filtering:
//     start, end, err := timezone.DayRange("2025-09-15", -180)
//
//  2. Display text for notifications:
//     text := timezone.FormatDisplay(instant, -180) // "15/09/2025, 05:00"
//
//  3. App-configured offset:
//     start, end, err := timezone.AppDayRange("2025-09-15")
package timezone
