package metadata

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/wcdocs/argtypes/errors"
)

// Registry holds the most recently registered documentation document.
// The host registers once at startup; every lookup reads from it. The
// document is replaced wholesale on each registration, never partially
// mutated.
type Registry struct {
	mu     sync.RWMutex
	doc    *Document
	logger *zap.Logger
}

// NewRegistry returns an empty registry with a nop logger.
func NewRegistry() *Registry {
	return &Registry{logger: zap.NewNop()}
}

// Global registry instance
var defaultRegistry = NewRegistry()

// Set stores doc verbatim, replacing any prior document. No validation
// is performed at write time.
func (r *Registry) Set(doc *Document) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.doc = doc
}

// Document returns the currently stored document.
// Returns nil if no document has been registered.
func (r *Registry) Document() *Document {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.doc
}

// SetLogger replaces the registry's logger. Lookup misses are reported
// through it at warn level. A nil logger restores the nop logger.
func (r *Registry) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logger = logger
}

func (r *Registry) log() *zap.Logger {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.logger
}

// Register stores doc in the default registry.
// This is called by the host once at startup; later calls replace the
// whole document.
func Register(doc *Document) {
	defaultRegistry.Set(doc)
}

// RegisterJSON decodes data and registers the resulting document in the
// default registry. Decode failures and documents without a components
// list are rejected with ErrInvalidDocument.
func RegisterJSON(data []byte) error {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return errors.NewInvalidDocument(err.Error())
	}
	if _, err := IsValidDocument(&doc); err != nil {
		return err
	}
	Register(&doc)
	return nil
}

// GetDocument returns the document held by the default registry.
// Returns nil if no document has been registered.
func GetDocument() *Document {
	return defaultRegistry.Document()
}

// SetLogger replaces the default registry's logger.
func SetLogger(logger *zap.Logger) {
	defaultRegistry.SetLogger(logger)
}

// Reset clears the default registry (used for testing).
func Reset() {
	defaultRegistry.Set(nil)
	defaultRegistry.SetLogger(nil)
}
