package argtypes

// PropKind is the closed set of prop type kinds that select an editor
// control.
type PropKind string

const (
	KindString   PropKind = "string"
	KindNumber   PropKind = "number"
	KindBoolean  PropKind = "boolean"
	KindFunction PropKind = "function"
	KindVoid     PropKind = "void"
	KindOther    PropKind = "other"
)

// KindOf classifies a declared prop type. Anything outside the primitive
// set (unions, object types, type references) is KindOther and resolves
// its control from the prop's permitted values.
func KindOf(declared string) PropKind {
	switch declared {
	case "string":
		return KindString
	case "number":
		return KindNumber
	case "boolean":
		return KindBoolean
	case "function":
		return KindFunction
	case "void":
		return KindVoid
	default:
		return KindOther
	}
}
