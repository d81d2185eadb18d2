// Package argtypes translates the docs-JSON metadata a UI-component
// compiler emits into the control-descriptor mapping an interactive
// documentation tool consumes.
//
// The host registers a document once at startup, then asks for the
// descriptor mapping of a component tag:
//
//	argtypes.RegisterDocument(doc)
//
//	args, err := argtypes.DefaultExtractor("my-card")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for key, arg := range args {
//		fmt.Printf("%s -> %s\n", key, arg.Table.Category)
//	}
//
// Each of a component's six facets (props, events, methods, slots, CSS
// custom properties, CSS shadow parts) maps to descriptor entries keyed
// by a derived identifier; only props carry an editable control, the
// rest exist for display grouping.
package argtypes
