// Package memoryengine provides a process-local kvstore.Store backed by a map.
//
// It is the engine of choice for unit tests and demos: no external
// dependencies, no durability. Documents are copied on the way in and out, so
// callers cannot alias the engine's internal state.
package memoryengine
