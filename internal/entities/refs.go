package entities

import (
	"strconv"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Entity types used as event sources and targets
const (
	EntityTypeCharacter = "character"
	EntityTypeSkill     = "skill"
	EntityTypeSlot      = "inventory_slot"
)

// CharacterRef identifies the open save file
type CharacterRef struct {
	Path string
	Name string
}

// GetID returns the save file path
func (c *CharacterRef) GetID() string {
	return c.Path
}

// GetType returns the entity type for rpg-toolkit
func (c *CharacterRef) GetType() string {
	return EntityTypeCharacter
}

// SkillRef identifies a skill by its position
type SkillRef struct {
	Index int
	ID    string
}

// GetID returns the skill position; ids are not guaranteed unique
func (s *SkillRef) GetID() string {
	return strconv.Itoa(s.Index)
}

// GetType returns the entity type for rpg-toolkit
func (s *SkillRef) GetType() string {
	return EntityTypeSkill
}

// SlotRef identifies an inventory slot
type SlotRef struct {
	Slot int
}

// GetID returns the slot's Inventory key
func (s *SlotRef) GetID() string {
	return SlotKey(s.Slot)
}

// GetType returns the entity type for rpg-toolkit
func (s *SlotRef) GetType() string {
	return EntityTypeSlot
}

var (
	_ core.Entity = (*CharacterRef)(nil)
	_ core.Entity = (*SkillRef)(nil)
	_ core.Entity = (*SlotRef)(nil)
)
