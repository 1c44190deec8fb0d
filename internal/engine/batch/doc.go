// Package batch computes the BISKO balance of many regions, one input
// document each, with a bounded number of concurrent runs.
//
// A failing region does not stop the others: every document yields an
// Outcome carrying either its result or its error. Progress callbacks fire
// after each finished region and may be used for UI updates or logging.
package batch
