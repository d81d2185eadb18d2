package metadata

import (
	"github.com/wcdocs/argtypes/errors"
)

// IsValidTagName reports whether v is usable as a component tag name.
//
// Nil and empty-string inputs are merely absent and report false without
// an error. Any non-string value is malformed and fails with
// ErrInvalidTagName. The any-typed signature exists for hosts that pass
// values straight out of untyped JSON; the typed entry points can only
// reach the absent path.
func IsValidTagName(v any) (bool, error) {
	if v == nil {
		return false, nil
	}
	s, ok := v.(string)
	if !ok {
		return false, errors.NewInvalidTagName(v)
	}
	return s != "", nil
}

// IsValidDocument reports whether doc carries a usable components list.
//
// A nil document is merely absent and reports false without an error.
// A non-nil document whose components list is missing fails with
// ErrInvalidDocument.
func IsValidDocument(doc *Document) (bool, error) {
	if doc == nil {
		return false, nil
	}
	if doc.Components == nil {
		return false, errors.NewInvalidDocument("components list is missing")
	}
	return true, nil
}
