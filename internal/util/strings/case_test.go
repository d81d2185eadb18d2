package strings

import "testing"

func TestToKebabCase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"myEvent", "my-event"},
		{"event-myEvent", "event-my-event"},
		{"MY-ELEMENT", "my-element"},
		{"already-kebab", "already-kebab"},
		{"css custom properties---background", "css-custom-properties-background"},
		{"HTTPRequest", "http-request"},
		{"slot-_default", "slot-default"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := ToKebabCase(tt.input); got != tt.want {
			t.Errorf("ToKebabCase(%q): got %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestToLowerCamelCase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"myEvent", "myEvent"},
		{"event-myEvent", "eventMyEvent"},
		{"MY-ELEMENT", "myElement"},
		{"is-open", "isOpen"},
		{"css custom properties---background", "cssCustomPropertiesBackground"},
		{"HTTPRequest", "httpRequest"},
		{"slot-_default", "slotDefault"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := ToLowerCamelCase(tt.input); got != tt.want {
			t.Errorf("ToLowerCamelCase(%q): got %q, want %q", tt.input, got, tt.want)
		}
	}
}
