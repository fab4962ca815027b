package avl

import "github.com/ansel1/merry"

var (
	// ErrInvalidIndex is returned for a slot index that is out of
	// range or refers to a deleted node. The tree is not modified.
	// The offending index is attached as the "index" value.
	ErrInvalidIndex = merry.New("invalid slot index")

	// ErrCorrupt is returned by Check when an invariant does not hold.
	ErrCorrupt = merry.New("tree invariant violated")
)

func invalidIndex(i any) error {
	return merry.Here(ErrInvalidIndex).WithValue("index", i).Appendf("slot %v", i)
}

func corrupt(format string, args ...any) error {
	return merry.Here(ErrCorrupt).Appendf(format, args...)
}
