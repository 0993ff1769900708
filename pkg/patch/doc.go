// Package patch applies a plan to one file and classifies what happened:
// applied, already patched, no change, not found or failed. Faults and
// panics are turned into a failed result and never reach the caller.
package patch
