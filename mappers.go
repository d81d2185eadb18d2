package argtypes

import (
	utilstrings "github.com/wcdocs/argtypes/internal/util/strings"
	"github.com/wcdocs/argtypes/metadata"
)

// Up to this many permitted values render as radio buttons; more become
// a select dropdown.
const radioOptionLimit = 4

// deriveKey applies the configured casing to a raw facet key.
func deriveKey(raw string, opts Options) string {
	if opts.DashCase {
		return utilstrings.ToKebabCase(raw)
	}
	return utilstrings.ToLowerCamelCase(raw)
}

func typeSummary(s string) *Summary {
	if s == "" {
		return nil
	}
	return &Summary{Summary: s}
}

func voidType() *TypeInfo {
	return &TypeInfo{Name: "void"}
}

// PropArgTypes maps component props to control descriptors. The markup
// attribute name is preferred over the member name as the raw key.
// Returns nil when props is absent.
func PropArgTypes(props []metadata.Prop, opts Options) map[string]ArgType {
	if props == nil {
		return nil
	}
	result := make(map[string]ArgType, len(props))
	for _, p := range props {
		name := p.Name
		if p.Attr != "" {
			name = p.Attr
		}
		control, options := propControl(p)
		result[deriveKey(name, opts)] = ArgType{
			Name:        name,
			Description: p.Docs,
			Type:        &TypeInfo{Required: p.Required},
			Control:     control,
			Options:     options,
			Table: &Table{
				Category:     CategoryProps,
				Type:         typeSummary(p.Type),
				DefaultValue: typeSummary(p.Default),
			},
		}
	}
	return result
}

// propControl synthesizes the editor control for a prop, together with
// the permitted literal options of a union-typed prop.
func propControl(p metadata.Prop) (*Control, []string) {
	switch KindOf(p.Type) {
	case KindString:
		return &Control{Type: ControlText}, nil
	case KindNumber:
		return &Control{Type: ControlNumber}, nil
	case KindBoolean:
		return &Control{Type: ControlBoolean}, nil
	case KindFunction, KindVoid:
		// Not editable from a documentation surface.
		return nil, nil
	}

	// Union or object type: only string- and number-typed literals can
	// back an option list.
	var options []string
	for _, v := range p.Values {
		if v.Type == "string" || v.Type == "number" {
			options = append(options, v.Value)
		}
	}
	switch {
	case len(options) == 0:
		return &Control{Type: ControlObject}, nil
	case len(options) <= radioOptionLimit:
		return &Control{Type: ControlRadio}, options
	default:
		return &Control{Type: ControlSelect}, options
	}
}

// EventArgTypes maps emitted events to action descriptors. Events carry
// no editable control; the action marker tells the host to log firings.
// Returns nil when events is absent.
func EventArgTypes(events []metadata.Event, opts Options) map[string]ArgType {
	if events == nil {
		return nil
	}
	result := make(map[string]ArgType, len(events))
	for _, e := range events {
		result[deriveKey("event-"+e.Event, opts)] = ArgType{
			Name:        e.Event,
			Description: e.Docs,
			Type:        voidType(),
			Action:      e.Event,
			Table: &Table{
				Category: CategoryEvents,
				Type:     typeSummary(e.Detail),
			},
		}
	}
	return result
}

// MethodArgTypes maps public methods to display-only descriptors.
// Returns nil when methods is absent.
func MethodArgTypes(methods []metadata.Method, opts Options) map[string]ArgType {
	if methods == nil {
		return nil
	}
	result := make(map[string]ArgType, len(methods))
	for _, m := range methods {
		result[deriveKey("method-"+m.Name, opts)] = ArgType{
			Name:        m.Name,
			Description: m.Docs,
			Type:        voidType(),
			Table: &Table{
				Category: CategoryMethods,
				Type:     typeSummary(m.Signature),
			},
		}
	}
	return result
}

// SlotArgTypes maps content slots to display-only descriptors. The
// unnamed default slot keys as "_default". Returns nil when slots is
// absent.
func SlotArgTypes(slots []metadata.Slot, opts Options) map[string]ArgType {
	if slots == nil {
		return nil
	}
	result := make(map[string]ArgType, len(slots))
	for _, s := range slots {
		name := s.Name
		if name == "" {
			name = "_default"
		}
		result[deriveKey("slot-"+name, opts)] = ArgType{
			Name:        name,
			Description: s.Docs,
			Type:        voidType(),
			Table: &Table{
				Category: CategorySlots,
			},
		}
	}
	return result
}

// StyleArgTypes maps CSS custom properties to display-only descriptors.
// Returns nil when styles is absent.
func StyleArgTypes(styles []metadata.Style, opts Options) map[string]ArgType {
	if styles == nil {
		return nil
	}
	result := make(map[string]ArgType, len(styles))
	for _, s := range styles {
		result[deriveKey(CategoryStyles+"-"+s.Name, opts)] = ArgType{
			Name:        s.Name,
			Description: s.Docs,
			Type:        voidType(),
			Table: &Table{
				Category: CategoryStyles,
			},
		}
	}
	return result
}

// PartArgTypes maps CSS shadow parts to display-only descriptors.
// Returns nil when parts is absent.
func PartArgTypes(parts []metadata.Part, opts Options) map[string]ArgType {
	if parts == nil {
		return nil
	}
	result := make(map[string]ArgType, len(parts))
	for _, p := range parts {
		result[deriveKey(CategoryParts+"-"+p.Name, opts)] = ArgType{
			Name:        p.Name,
			Description: p.Docs,
			Type:        voidType(),
			Table: &Table{
				Category: CategoryParts,
			},
		}
	}
	return result
}
