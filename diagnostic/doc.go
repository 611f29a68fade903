// Package diagnostic provides the structured errors and warnings reported while
// reviving a document.
//
// Fatal conditions are returned as *Error values wrapping one of the sentinel
// errors, so callers can use errors.Is for the kind and errors.As for the
// location (tag, anchor, node path, line and column). Non-fatal conditions
// (fallbacks, deprecated hooks, dropped attributes) are collected in
// Diagnostics for the duration of one decode pass.
package diagnostic
