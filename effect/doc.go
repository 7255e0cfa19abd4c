// Package effect edits the binary effect container: a header pointer table,
// a set of variable-length sections, and the record data inside them.
//
// The container exists in two mirrors at once: a byte store (a file image or
// a window into a live emulated process) and a parsed Document owned by the
// editing session. The packages here keep the two consistent when records are
// inserted or deleted: the delta calculator compares the model against the
// freshly-read layout, the relocation engine shifts bytes and rewrites the
// downstream pointers, and the synchronizer sequences one structural edit
// after another inside an apply-all transaction.
//
// Everything is single-writer and synchronous. The caller guarantees
// exclusive access to the store for the duration of an Apply (for a live
// mirror, by pausing the emulated process).
package effect
