// Package resultstore remembers the last compile outcome of every document
// so that long-running commands can tell changed documents from unchanged
// ones.
//
// # Concurrency Model
//
// Documents are compiled concurrently and every compile records its own
// path. Keys are independent, so the in-memory store uses sync.Map rather
// than a global lock.
package resultstore
