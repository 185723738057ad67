// Package rawmem provides the untyped storage layer underneath
// vec.Vector. A Buffer reserves slots for a fixed number of elements
// and only ever does slot arithmetic; it never constructs, copies, or
// drops an element. Which slots hold live values is bookkeeping that
// belongs to the typed container above.
//
// The package is dependency-free and single-threaded by contract.
package rawmem
