// Package convert implements the Convert customization hook: bringing
// foreign Go values into the heap.Value model. The core package defines
// the seam — a Registry of reflect.Type-keyed converter functions —
// rather than every possible source type, keeping the core small and
// letting callers plug in their own domain types.
package convert
