package entities

import (
	"fmt"
	"strings"
)

// Skill XP presets offered by the editor
const (
	// Level50XP is the experience total the game treats as level 50
	Level50XP int64 = 100_000
	// BoostXP is the amount added by the boost action
	BoostXP int64 = 100_000_000
)

type skillName struct {
	prefix string
	label  string
}

// Skill ids carry a random suffix, so they are matched by prefix.
// Order matters: the first matching prefix wins.
var skillNames = []skillName{
	{prefix: "4pefO9k", label: "Attack"},
	{prefix: "Wf3i7Ha", label: "Artisan"},
	{prefix: "waK-8Ey", label: "Construction"},
	{prefix: "Tn7t6DQ", label: "Cooking"},
	{prefix: "0hreSMR", label: "Magic"},
	{prefix: "jqX0Gh6", label: "Mining"},
	{prefix: "heq7u88", label: "Ranged"},
	{prefix: "NOqC-z-", label: "Runecrafting"},
	{prefix: "4zYUGF5", label: "Woodcutting"},
}

// SkillLabel resolves the display name for the skill at index
func SkillLabel(id string, index int) string {
	for _, n := range skillNames {
		if strings.HasPrefix(id, n.prefix) {
			return n.label
		}
	}
	return fmt.Sprintf("Skill %d", index+1)
}

// Skill is a read view of one entry of Skills.Skills
type Skill struct {
	Index int
	ID    string
	XP    int64
}

// Label resolves the skill's display name
func (s Skill) Label() string {
	return SkillLabel(s.ID, s.Index)
}
