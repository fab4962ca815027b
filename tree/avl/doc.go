// Package avl is an AVL tree kept in a flat arena of nodes.
//
// Nodes refer to each other by slot index (tree.Index) instead of by
// pointer, and slots freed by deletion are handed out again before
// the arena grows, so a tree that sees a steady mix of inserts and
// deletes stops allocating.
//
// Duplicate keys are allowed. A new key that ties with an existing
// one is placed to its right, so Values lists equal keys in the
// order the tree happens to hold them, which is not guaranteed to
// be insertion order once rotations have run.
//
// A Tree is not safe for concurrent use. Mutating a tree while one
// of its iterators is in use is undefined; Values returns a copy and
// has no such restriction.
package avl
