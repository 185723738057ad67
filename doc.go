// Package vec implements a growable sequence container that separates
// raw slot ownership (rawmem.Buffer) from element lifetimes. A Vector
// tracks how many leading slots hold live values, grows capacity
// geometrically, and routes every construction, copy, move, and drop
// of an element through its Ops, so a failing element operation can be
// unwound without corrupting the sequence.
//
// Vectors have single-writer value semantics: there is no internal
// locking, and sharing one across goroutines requires external
// synchronization by the caller.
package vec
