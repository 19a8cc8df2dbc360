// Package bulkimport parses bulk student registration input into the inputs
// consumed by the store's batch registration.
//
// Two line-oriented formats are accepted: free text with whitespace-separated
// fields and CSV. Both are lenient on purpose: a line that does not start
// with an all-digits student number degrades to "the whole line is the name"
// instead of being rejected. Validation happens later, per entry, inside the
// store.
package bulkimport
