// Package editor implements the save editing session: it owns the open
// document and both catalogs, and every edit the UI or CLI makes goes
// through it.
package editor

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/dragonwilds-editor/internal/entities"
	"github.com/KirkDiggler/dragonwilds-editor/internal/errors"
	"github.com/KirkDiggler/dragonwilds-editor/internal/repositories/savefile"
)

const errNoDocument = "Load a file first!"

// Config holds the dependencies for an editing session
type Config struct {
	SaveRepo savefile.Repository
	Items    *entities.Catalog
	Runes    *entities.Catalog
	// EventBus is optional; a private bus is created when nil
	EventBus events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.SaveRepo == nil {
		vb.RequiredField("SaveRepo")
	}
	if c.Items == nil {
		vb.RequiredField("Items")
	}
	if c.Runes == nil {
		vb.RequiredField("Runes")
	}

	return vb.Build()
}

// Session is one editor run. It is not safe for concurrent use; the UI
// drives it from a single event loop.
type Session struct {
	saveRepo savefile.Repository
	catalogs map[entities.CatalogKind]*entities.Catalog
	bus      events.EventBus

	path      string
	doc       *entities.Document
	character *entities.CharacterRef
}

// NewSession creates a session with no document open
func NewSession(cfg *Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	bus := cfg.EventBus
	if bus == nil {
		bus = events.NewBus()
	}

	return &Session{
		saveRepo: cfg.SaveRepo,
		catalogs: map[entities.CatalogKind]*entities.Catalog{
			entities.CatalogItems: cfg.Items,
			entities.CatalogRunes: cfg.Runes,
		},
		bus: bus,
	}, nil
}

// Subscribe registers fn for one event type and returns the subscription id
func (s *Session) Subscribe(eventType string, fn events.HandlerFunc) string {
	return s.bus.SubscribeFunc(eventType, 0, fn)
}

// Loaded reports whether a document is open
func (s *Session) Loaded() bool {
	return s.doc != nil
}

// Path returns the open save path, empty when none
func (s *Session) Path() string {
	return s.path
}

// Document returns the open document, nil when none
func (s *Session) Document() *entities.Document {
	return s.doc
}

// CharacterName returns the open character's display name
func (s *Session) CharacterName() string {
	if s.doc == nil {
		return ""
	}
	return s.doc.CharacterName()
}

// Catalog returns the catalog of the given kind
func (s *Session) Catalog(kind entities.CatalogKind) *entities.Catalog {
	return s.catalogs[kind]
}

// Open loads a save file and makes it the session's document. When loading
// fails the previously open document, if any, stays open.
func (s *Session) Open(ctx context.Context, path string) (*OpenOutput, error) {
	output, err := s.saveRepo.Load(ctx, savefile.LoadInput{Path: path})
	if err != nil {
		return nil, errors.Wrap(err, "Could not load JSON")
	}

	s.path = output.Path
	s.doc = output.Document
	s.character = &entities.CharacterRef{Path: s.path, Name: s.doc.CharacterName()}

	s.publish(ctx, EventDocumentOpened, s.character)

	return &OpenOutput{
		Path:          s.path,
		CharacterName: s.character.Name,
		Skills:        len(s.doc.Skills()),
		Slots:         len(s.doc.InventorySlots()),
	}, nil
}

// Save overwrites the open file with the current document. On failure the
// in-memory document is kept so the save can be retried.
func (s *Session) Save(ctx context.Context) (*SaveOutput, error) {
	if err := s.requireDocument(); err != nil {
		return nil, err
	}

	output, err := s.saveRepo.Save(ctx, savefile.SaveInput{
		Path:     s.path,
		Document: s.doc,
	})
	if err != nil {
		return nil, errors.Wrap(err, "Could not save")
	}

	s.publish(ctx, EventDocumentSaved, s.character)

	return &SaveOutput{
		Path:         output.Path,
		BytesWritten: output.BytesWritten,
	}, nil
}

func (s *Session) requireDocument() error {
	if s.doc == nil {
		return errors.FailedPrecondition(errNoDocument)
	}
	return nil
}

func (s *Session) publish(ctx context.Context, eventType string, target core.Entity) {
	if err := s.bus.Publish(ctx, events.NewGameEvent(eventType, s.character, target)); err != nil {
		slog.WarnContext(ctx, "event handler failed",
			"event", eventType,
			"target", target.GetID(),
			"error", err)
	}
}
