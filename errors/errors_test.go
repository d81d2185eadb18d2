package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestInputError_Error(t *testing.T) {
	err := NewInvalidTagName(42)
	if !strings.HasPrefix(err.Error(), CodeInvalidTagName+": ") {
		t.Errorf("error string missing code prefix: %s", err.Error())
	}
	if !strings.Contains(err.Error(), "int") {
		t.Errorf("error string should name the offending type: %s", err.Error())
	}
}

func TestInputError_IsMatchesByCode(t *testing.T) {
	if !stderrors.Is(NewInvalidTagName(42), ErrInvalidTagName) {
		t.Error("NewInvalidTagName should match ErrInvalidTagName")
	}
	if !stderrors.Is(NewInvalidDocument("components list is missing"), ErrInvalidDocument) {
		t.Error("NewInvalidDocument should match ErrInvalidDocument")
	}
	if stderrors.Is(NewInvalidTagName(42), ErrInvalidDocument) {
		t.Error("tag name error must not match document error")
	}
}
