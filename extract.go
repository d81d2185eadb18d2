package argtypes

import (
	"github.com/wcdocs/argtypes/metadata"
)

// Extract builds the full descriptor mapping for the component tagged
// tagName in doc. The six facet mappers run with the same options and
// their outputs merge in the fixed order props, events, methods, slots,
// styles, parts; later facets overwrite earlier ones on a key collision.
// Returns nil when the component cannot be resolved.
func Extract(tagName string, doc *metadata.Document, opts Options) (map[string]ArgType, error) {
	cmp, err := metadata.Resolve(tagName, doc)
	if err != nil || cmp == nil {
		return nil, err
	}

	merged := make(map[string]ArgType)
	for _, facet := range []map[string]ArgType{
		PropArgTypes(cmp.Props, opts),
		EventArgTypes(cmp.Events, opts),
		MethodArgTypes(cmp.Methods, opts),
		SlotArgTypes(cmp.Slots, opts),
		StyleArgTypes(cmp.Styles, opts),
		PartArgTypes(cmp.Parts, opts),
	} {
		for key, arg := range facet {
			merged[key] = arg
		}
	}
	return merged, nil
}

// Extractor extracts descriptors for a tag against the currently
// registered document with a fixed option set.
type Extractor func(tagName string) (map[string]ArgType, error)

// NewExtractor returns an Extractor closing over opts. The registered
// document is read on every call, not captured at creation time.
func NewExtractor(opts Options) Extractor {
	return func(tagName string) (map[string]ArgType, error) {
		return Extract(tagName, metadata.GetDocument(), opts)
	}
}

// DefaultExtractor extracts with default options (lowerCamelCase keys).
var DefaultExtractor = NewExtractor(Options{})

// Description returns the free-text description of the component tagged
// tagName in the currently registered document. The long-form readme is
// preferred; the short doc comment is the fallback. Returns "" when the
// component cannot be resolved.
func Description(tagName string) (string, error) {
	cmp, err := metadata.Resolve(tagName, metadata.GetDocument())
	if err != nil || cmp == nil {
		return "", err
	}
	if cmp.Readme != "" {
		return cmp.Readme, nil
	}
	return cmp.Docs, nil
}

// RegisterDocument stores doc as the process-wide document read by
// DefaultExtractor and Description. No validation is performed; any
// prior document is replaced.
func RegisterDocument(doc *metadata.Document) {
	metadata.Register(doc)
}

// RegisteredDocument returns the currently registered document, or nil
// if none was registered.
func RegisteredDocument() *metadata.Document {
	return metadata.GetDocument()
}
