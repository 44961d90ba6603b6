// Package heap implements the mutable, in-memory representation of
// the value model: a tagged sum over null, boolean, integer,
// decimal, string, array, and object, with reference-counted array/object
// containers and copy-on-write mutation.
//
// A heap.Value is a plain Go struct passed by value. Copying it with an
// ordinary assignment or function call shares any underlying array/object
// storage the way copying a Go slice header shares its backing array —
// cheap, but not yet a tracked alias. Call Alias when a second logical
// owner needs mutation-isolation honored: Alias bumps the shared
// container's refcount so the next mutation on either copy clones before
// writing. Mutating a Value nobody has Alias-ed is always done in place.
package heap
