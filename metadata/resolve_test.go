package metadata

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	argerrors "github.com/wcdocs/argtypes/errors"
)

func testDocument() *Document {
	return &Document{
		Components: []Component{
			{Tag: "my-card", Readme: "# my-card"},
			{Tag: "my-button"},
		},
	}
}

func TestResolve_Found(t *testing.T) {
	cmp, err := Resolve("my-button", testDocument())
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if cmp == nil {
		t.Fatal("Resolve returned nil for an existing tag")
	}
	if cmp.Tag != "my-button" {
		t.Errorf("Tag: got %s, want my-button", cmp.Tag)
	}
}

func TestResolve_CaseInsensitive(t *testing.T) {
	for _, tag := range []string{"my-card", "MY-CARD", "My-Card"} {
		cmp, err := Resolve(tag, testDocument())
		if err != nil {
			t.Fatalf("Resolve(%q) failed: %v", tag, err)
		}
		if cmp == nil || cmp.Tag != "my-card" {
			t.Errorf("Resolve(%q): expected my-card, got %+v", tag, cmp)
		}
	}
}

func TestResolve_AbsentInputs(t *testing.T) {
	cmp, err := Resolve("", testDocument())
	if cmp != nil || err != nil {
		t.Errorf("empty tag: got (%v, %v), want (nil, nil)", cmp, err)
	}

	cmp, err = Resolve("my-card", nil)
	if cmp != nil || err != nil {
		t.Errorf("nil document: got (%v, %v), want (nil, nil)", cmp, err)
	}
}

func TestResolve_InvalidDocument(t *testing.T) {
	_, err := Resolve("my-card", &Document{})
	if !errors.Is(err, argerrors.ErrInvalidDocument) {
		t.Errorf("got error %v, want ErrInvalidDocument", err)
	}
}

func TestResolve_NotFoundWarns(t *testing.T) {
	defer Reset()

	core, logs := observer.New(zap.WarnLevel)
	SetLogger(zap.New(core))

	cmp, err := Resolve("no-such-tag", testDocument())
	if cmp != nil || err != nil {
		t.Fatalf("got (%v, %v), want (nil, nil)", cmp, err)
	}

	if logs.Len() != 1 {
		t.Fatalf("warning count: got %d, want 1", logs.Len())
	}
	entry := logs.All()[0]
	if entry.Level != zap.WarnLevel {
		t.Errorf("log level: got %v, want warn", entry.Level)
	}
	if got := entry.ContextMap()["tag"]; got != "no-such-tag" {
		t.Errorf("logged tag: got %v, want no-such-tag", got)
	}
}

func TestResolve_AbsentInputsDoNotWarn(t *testing.T) {
	defer Reset()

	core, logs := observer.New(zap.WarnLevel)
	SetLogger(zap.New(core))

	Resolve("", testDocument())
	Resolve("my-card", nil)

	if logs.Len() != 0 {
		t.Errorf("warning count: got %d, want 0", logs.Len())
	}
}

func TestResolve_FirstMatchWins(t *testing.T) {
	doc := &Document{
		Components: []Component{
			{Tag: "my-card", Docs: "first"},
			{Tag: "MY-CARD", Docs: "second"},
		},
	}

	cmp, err := Resolve("my-card", doc)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if cmp.Docs != "first" {
		t.Errorf("Docs: got %s, want first (document order wins)", cmp.Docs)
	}
}

func TestResolve_ReturnsCopy(t *testing.T) {
	doc := testDocument()

	cmp, err := Resolve("my-card", doc)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	cmp.Tag = "mutated"
	if doc.Components[0].Tag != "my-card" {
		t.Error("Resolve must return a copy, not a reference into the document")
	}
}

func TestTags(t *testing.T) {
	tags := Tags(testDocument())
	if len(tags) != 2 || tags[0] != "my-card" || tags[1] != "my-button" {
		t.Errorf("Tags: got %v, want [my-card my-button]", tags)
	}

	if Tags(nil) != nil {
		t.Error("Tags(nil) should be nil")
	}
}
