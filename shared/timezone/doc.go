// Package timezone keeps the application clock in the location configured by
// APP_TIMEZONE. Photo upload timestamps are taken from Now().
//
// Use standard IANA names such as "UTC" or "Asia/Jakarta"; anything that fails
// to load falls back to UTC.
package timezone
