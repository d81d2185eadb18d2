package argtypes

// ControlType enumerates the editor controls a prop descriptor can
// request from the host.
type ControlType string

const (
	ControlText    ControlType = "text"
	ControlNumber  ControlType = "number"
	ControlBoolean ControlType = "boolean"
	ControlRadio   ControlType = "radio"
	ControlSelect  ControlType = "select"
	ControlObject  ControlType = "object"
)

// Table category labels, used by the host to group descriptors.
const (
	CategoryProps   = "props"
	CategoryEvents  = "events"
	CategoryMethods = "methods"
	CategorySlots   = "slots"
	CategoryStyles  = "css custom properties"
	CategoryParts   = "css shadow parts"
)

// ArgType describes how one facet item of a component is rendered and
// edited by the host documentation tool.
type ArgType struct {
	// Name is the original identifier of the facet item
	Name string `json:"name,omitempty"`

	// Description is the item's doc text
	Description string `json:"description,omitempty"`

	// Type carries the required flag for props; a fixed void marker for
	// every other facet
	Type *TypeInfo `json:"type,omitempty"`

	// Control selects the editor control; nil for non-interactive facets
	Control *Control `json:"control,omitempty"`

	// Options lists the permitted literal values of a union-typed prop
	Options []string `json:"options,omitempty"`

	// Table is the display grouping block
	Table *Table `json:"table,omitempty"`

	// Action is the event name the host should log as an action when it
	// fires; set for events only
	Action string `json:"action,omitempty"`
}

// TypeInfo carries the type summary of a descriptor.
type TypeInfo struct {
	Name     string `json:"name,omitempty"`
	Required bool   `json:"required,omitempty"`
}

// Control selects an editor control kind.
type Control struct {
	Type ControlType `json:"type"`
}

// Table groups a descriptor in the host's documentation table.
type Table struct {
	Category     string   `json:"category,omitempty"`
	Type         *Summary `json:"type,omitempty"`
	DefaultValue *Summary `json:"defaultValue,omitempty"`
}

// Summary is a short display summary with optional longer detail.
type Summary struct {
	Summary string `json:"summary,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

// Options configures key derivation for the facet mappers.
type Options struct {
	// DashCase selects hyphen-separated lowercase descriptor keys
	// instead of the default lowerCamelCase keys.
	DashCase bool `json:"dashCase"`
}
