package repository

import (
	"github.com/Kosench/memshort/internal/model"
)

// URLRepository is the mapping store. Every method is atomic with respect to
// concurrent callers.
type URLRepository interface {
	// Insert writes the record for code unconditionally, replacing any existing one.
	Insert(code, originalURL, token string) error
	// Create writes the record only if code is free, otherwise ErrShortCodeExists.
	Create(code, originalURL, token string) error
	// Lookup returns a copy of the record; changes to it do not reach the store.
	Lookup(code string) (model.URL, bool)
	IncrementClick(code string) bool
	ValidateToken(code, token string) bool
	Len() int
}
