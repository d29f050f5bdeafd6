package editor

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/dragonwilds-editor/internal/entities"
)

// Skills returns the open character's skills in document order
func (s *Session) Skills() []entities.Skill {
	if s.doc == nil {
		return nil
	}
	return s.doc.Skills()
}

// SetXP overwrites the Xp of the skill at index
func (s *Session) SetXP(ctx context.Context, index int, value int64) (int64, error) {
	if err := s.requireDocument(); err != nil {
		return 0, err
	}

	if err := s.doc.SetSkillXP(index, value); err != nil {
		return 0, err
	}

	s.skillChanged(ctx, index, value)
	return value, nil
}

// AddXP adds amount to the Xp of the skill at index, treating a missing Xp
// as zero
func (s *Session) AddXP(ctx context.Context, index int, amount int64) (int64, error) {
	if err := s.requireDocument(); err != nil {
		return 0, err
	}

	current, err := s.doc.SkillXP(index)
	if err != nil {
		return 0, err
	}

	total := current + amount
	if err := s.doc.SetSkillXP(index, total); err != nil {
		return 0, err
	}

	s.skillChanged(ctx, index, total)
	return total, nil
}

// Level50 sets the skill to the level 50 experience total
func (s *Session) Level50(ctx context.Context, index int) (int64, error) {
	return s.SetXP(ctx, index, entities.Level50XP)
}

// Boost adds the fixed bonus amount to the skill
func (s *Session) Boost(ctx context.Context, index int) (int64, error) {
	return s.AddXP(ctx, index, entities.BoostXP)
}

// ResetXP sets the skill's Xp to zero
func (s *Session) ResetXP(ctx context.Context, index int) (int64, error) {
	return s.SetXP(ctx, index, 0)
}

func (s *Session) skillChanged(ctx context.Context, index int, xp int64) {
	skills := s.doc.Skills()
	ref := &entities.SkillRef{Index: index, ID: skills[index].ID}

	slog.DebugContext(ctx, "skill xp changed",
		"index", index,
		"skill", skills[index].Label(),
		"xp", xp)

	s.publish(ctx, EventSkillXPChanged, ref)
}
