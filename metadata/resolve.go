package metadata

import (
	"strings"

	"go.uber.org/zap"
)

// Resolve finds the component in doc whose tag matches tagName, ignoring
// case, using the default registry's logger for the miss warning.
func Resolve(tagName string, doc *Document) (*Component, error) {
	return defaultRegistry.Resolve(tagName, doc)
}

// Resolve finds the component in doc whose tag matches tagName, ignoring
// case.
//
// Absent inputs (empty tag name, nil document) resolve to nil without an
// error or warning. A document without a components list fails with
// ErrInvalidDocument. A miss on a valid document is reported as a warning
// through the registry logger and resolves to nil; callers must treat a
// nil result as "nothing to render". When two tags differ only by case,
// the first match in document order wins.
func (r *Registry) Resolve(tagName string, doc *Document) (*Component, error) {
	if ok, err := IsValidTagName(tagName); err != nil || !ok {
		return nil, err
	}
	if ok, err := IsValidDocument(doc); err != nil || !ok {
		return nil, err
	}

	for i := range doc.Components {
		if strings.EqualFold(doc.Components[i].Tag, tagName) {
			// Return a copy to prevent external mutation
			cmp := doc.Components[i]
			return &cmp, nil
		}
	}

	r.log().Warn("component not found in documentation document",
		zap.String("tag", tagName))
	return nil, nil
}
