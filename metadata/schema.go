// Package metadata provides structures for the component documentation
// document produced by a UI-component compiler, together with the
// process-wide registry the host registers that document into.
package metadata

// Document is the top-level docs-JSON container registered by the host.
// It is produced by an external compiler tool and merely consumed here.
type Document struct {
	Timestamp  string        `json:"timestamp,omitempty"` // Generation timestamp
	Compiler   *CompilerInfo `json:"compiler,omitempty"`  // Producing compiler identity
	Components []Component   `json:"components"`          // All documented components
}

// CompilerInfo identifies the compiler that produced a document.
type CompilerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Component captures the documentation of a single UI component.
// Components are looked up by case-insensitive exact match on Tag.
type Component struct {
	Tag           string   `json:"tag"`                     // Unique element tag (e.g. "my-card")
	Readme        string   `json:"readme,omitempty"`        // Long-form readme text
	Docs          string   `json:"docs,omitempty"`          // Short doc comment text
	Encapsulation string   `json:"encapsulation,omitempty"` // "shadow", "scoped" or ""
	Props         []Prop   `json:"props,omitempty"`         // Public properties
	Events        []Event  `json:"events,omitempty"`        // Emitted events
	Methods       []Method `json:"methods,omitempty"`       // Public methods
	Slots         []Slot   `json:"slots,omitempty"`         // Content slots
	Styles        []Style  `json:"styles,omitempty"`        // CSS custom properties
	Parts         []Part   `json:"parts,omitempty"`         // CSS shadow parts
}

// Prop documents one public property of a component.
type Prop struct {
	Name     string      `json:"name"`             // Member name
	Attr     string      `json:"attr,omitempty"`   // Markup attribute name, preferred as descriptor key
	Type     string      `json:"type"`             // Declared type text
	Docs     string      `json:"docs,omitempty"`   // Doc comment text
	Required bool        `json:"required"`         // Whether the prop must be set
	Default  string      `json:"default,omitempty"` // Default value text
	Values   []TypeValue `json:"values,omitempty"` // Permitted literals for union types
}

// TypeValue is one permitted literal of a union-typed prop.
type TypeValue struct {
	Type  string `json:"type"`            // Primitive kind of the literal
	Value string `json:"value,omitempty"` // Literal text
}

// Event documents one event a component emits.
type Event struct {
	Event  string `json:"event"`            // Emitted event name
	Docs   string `json:"docs,omitempty"`   // Doc comment text
	Detail string `json:"detail,omitempty"` // Payload type text
}

// Method documents one public method of a component.
type Method struct {
	Name      string `json:"name"`                // Method name
	Docs      string `json:"docs,omitempty"`      // Doc comment text
	Signature string `json:"signature,omitempty"` // Full signature text
}

// Slot documents one content slot. An empty name is the default slot.
type Slot struct {
	Name string `json:"name,omitempty"`
	Docs string `json:"docs,omitempty"`
}

// Style documents one CSS custom property exposed by a component.
type Style struct {
	Name string `json:"name"`
	Docs string `json:"docs,omitempty"`
}

// Part documents one CSS shadow part exposed by a component.
type Part struct {
	Name string `json:"name"`
	Docs string `json:"docs,omitempty"`
}

// Tags returns the component tags of doc in document order.
func Tags(doc *Document) []string {
	if doc == nil {
		return nil
	}
	tags := make([]string, 0, len(doc.Components))
	for _, c := range doc.Components {
		tags = append(tags, c.Tag)
	}
	return tags
}
