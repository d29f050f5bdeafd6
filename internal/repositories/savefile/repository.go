// Package savefile provides the interface for character save persistence
package savefile

//go:generate mockgen -destination=mock/mock_repository.go -package=savefilemock github.com/KirkDiggler/dragonwilds-editor/internal/repositories/savefile Repository

import (
	"context"

	"github.com/KirkDiggler/dragonwilds-editor/internal/entities"
)

// Repository defines the interface for save file persistence
type Repository interface {
	// Load reads and parses a save file
	// Returns errors.InvalidArgument for an empty path or content that is not a JSON object
	// Returns errors.NotFound if the file doesn't exist
	// Returns errors.PermissionDenied if the file cannot be read
	// Returns errors.Internal for other failures
	Load(ctx context.Context, input LoadInput) (*LoadOutput, error)

	// Save serializes the document and overwrites the file in place
	// Returns errors.InvalidArgument for an empty path or nil document
	// Returns errors.NotFound if the parent directory is gone
	// Returns errors.PermissionDenied if the file cannot be written
	// Returns errors.Internal for other failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// List returns the save files (*.json) in a directory, sorted by name
	// Returns errors.InvalidArgument for an empty directory
	// Returns errors.NotFound if the directory doesn't exist
	// Returns errors.Internal for other failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// LoadInput defines the input for loading a save file
type LoadInput struct {
	Path string
}

// LoadOutput defines the output for loading a save file
type LoadOutput struct {
	Path     string
	Document *entities.Document
}

// SaveInput defines the input for saving a save file
type SaveInput struct {
	Path     string
	Document *entities.Document
}

// SaveOutput defines the output for saving a save file
type SaveOutput struct {
	Path         string
	BytesWritten int
}

// ListInput defines the input for listing save files
type ListInput struct {
	Dir string
}

// ListOutput defines the output for listing save files
type ListOutput struct {
	Paths []string
}
