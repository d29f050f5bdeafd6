package savefile

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/KirkDiggler/dragonwilds-editor/internal/entities"
	"github.com/KirkDiggler/dragonwilds-editor/internal/errors"
)

const (
	defaultFileMode os.FileMode = 0o644
	saveFileExt                 = ".json"

	// Error messages
	errPathEmpty   = "save file path cannot be empty"
	errDocumentNil = "document cannot be nil"
	errDirEmpty    = "save directory cannot be empty"
)

type fileRepository struct {
	mode os.FileMode
}

// FileConfig contains configuration for the filesystem save repository.
type FileConfig struct {
	// Mode is used when Save has to create the file. Existing files keep
	// their permissions.
	Mode os.FileMode
}

// NewFile creates a filesystem-backed save repository. A nil config uses
// the defaults.
func NewFile(cfg *FileConfig) Repository {
	mode := defaultFileMode
	if cfg != nil && cfg.Mode != 0 {
		mode = cfg.Mode
	}
	return &fileRepository{mode: mode}
}

func (r *fileRepository) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	if input.Path == "" {
		return nil, errors.InvalidArgument(errPathEmpty)
	}

	data, err := os.ReadFile(input.Path)
	if err != nil {
		return nil, errors.FromFS(err, input.Path, "failed to read save file")
	}

	doc, err := entities.DecodeDocument(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse save file %s", input.Path).
			WithMeta("path", input.Path)
	}

	slog.InfoContext(ctx, "save file loaded",
		"path", input.Path,
		"bytes", len(data),
		"character", doc.CharacterName())

	return &LoadOutput{
		Path:     input.Path,
		Document: doc,
	}, nil
}

// Save truncates and rewrites the file. There is no temp file and rename:
// a failure part way through can leave a partial file behind.
func (r *fileRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Path == "" {
		return nil, errors.InvalidArgument(errPathEmpty)
	}
	if input.Document == nil {
		return nil, errors.InvalidArgument(errDocumentNil)
	}

	data, err := input.Document.Encode()
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(input.Path, data, r.mode); err != nil {
		return nil, errors.FromFS(err, input.Path, "failed to write save file")
	}

	slog.InfoContext(ctx, "save file written",
		"path", input.Path,
		"bytes", len(data))

	return &SaveOutput{
		Path:         input.Path,
		BytesWritten: len(data),
	}, nil
}

func (r *fileRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.Dir == "" {
		return nil, errors.InvalidArgument(errDirEmpty)
	}

	dirEntries, err := os.ReadDir(input.Dir)
	if err != nil {
		return nil, errors.FromFS(err, input.Dir, "failed to list save directory")
	}

	paths := make([]string, 0, len(dirEntries))
	for _, e := range dirEntries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), saveFileExt) {
			continue
		}
		paths = append(paths, filepath.Join(input.Dir, e.Name()))
	}
	sort.Strings(paths)

	slog.DebugContext(ctx, "save files listed",
		"dir", input.Dir,
		"count", len(paths))

	return &ListOutput{Paths: paths}, nil
}
