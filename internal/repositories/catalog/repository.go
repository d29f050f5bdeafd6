// Package catalog provides the interface for loading the item and rune
// reference tables
package catalog

//go:generate mockgen -destination=mock/mock_repository.go -package=catalogmock github.com/KirkDiggler/dragonwilds-editor/internal/repositories/catalog Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/dragonwilds-editor/internal/entities"
)

// Repository defines the interface for reading a catalog
type Repository interface {
	// Load reads every entry of one catalog
	// Returns errors.InvalidArgument for an unknown kind or malformed content
	// Returns errors.NotFound if the catalog does not exist
	// Returns errors.Internal for storage failures
	Load(ctx context.Context, input LoadInput) (*LoadOutput, error)
}

// Writer defines the interface for backends that can be populated
type Writer interface {
	// Store replaces one catalog
	// Returns errors.InvalidArgument for an unknown kind
	// Returns errors.Internal for storage failures
	Store(ctx context.Context, input StoreInput) (*StoreOutput, error)
}

// ReadWriter is a catalog backend that supports both directions
type ReadWriter interface {
	Repository
	Writer
}

// Maintainer defines housekeeping for shared backends
type Maintainer interface {
	// Verify decodes every stored catalog and reports the ones that fail
	// Returns errors.Internal for storage failures
	Verify(ctx context.Context, input VerifyInput) (*VerifyOutput, error)

	// Delete removes a stored catalog and its import time
	// Returns errors.InvalidArgument for an empty key
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// SharedRepository is a catalog backend shared between installs
type SharedRepository interface {
	ReadWriter
	Maintainer
}

// LoadInput defines the input for loading a catalog
type LoadInput struct {
	Kind entities.CatalogKind
}

// LoadOutput defines the output for loading a catalog
type LoadOutput struct {
	Kind    entities.CatalogKind
	Source  string
	Entries []entities.CatalogEntry
	// UpdatedAt is when a shared catalog was last stored. Zero for files.
	UpdatedAt time.Time
}

// StoreInput defines the input for storing a catalog
type StoreInput struct {
	Kind    entities.CatalogKind
	Entries []entities.CatalogEntry
}

// StoreOutput defines the output for storing a catalog
type StoreOutput struct {
	Source  string
	Entries int
}

// VerifyInput defines the input for verifying stored catalogs
type VerifyInput struct{}

// CorruptCatalog is a stored catalog that failed to decode
type CorruptCatalog struct {
	Key    string
	Reason string
}

// VerifyOutput defines the output for verifying stored catalogs
type VerifyOutput struct {
	Checked   int
	Corrupted []CorruptCatalog
}

// DeleteInput defines the input for deleting a stored catalog
type DeleteInput struct {
	Key string
}

// DeleteOutput defines the output for deleting a stored catalog
type DeleteOutput struct {
	Deleted int64
}
