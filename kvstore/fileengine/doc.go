// Package fileengine provides a kvstore.Store that keeps one JSON file per key
// in a directory, mirroring the browser-local storage layout the circulation
// data originally lived in.
//
// Saves are atomic: the document is written to a temporary file in the same
// directory and renamed over the target, so a crash mid-write never leaves a
// truncated document behind. There is no atomicity across keys.
package fileengine
