// Package cache stores computed BISKO results on disk so that recomputing
// an unchanged input document is a file read.
//
// Entries are JSON files named after a SHA256 digest of the input document
// and the reference tables it was computed against, and expire after a
// configurable TTL. Changing any input byte yields a different key.
package cache
