package entities

import (
	"bytes"
	"encoding/json"
	"io"
	"sort"
	"strconv"

	"github.com/KirkDiggler/dragonwilds-editor/internal/errors"
)

// Save document keys
const (
	keyMetaData  = "meta_data"
	keyCharName  = "char_name"
	keySkills    = "Skills"
	keySkillID   = "Id"
	keySkillXP   = "Xp"
	keyInventory = "Inventory"
	keyGUID      = "GUID"
	keyItemData  = "ItemData"
	keyCount     = "Count"

	// UnknownCharacterName is shown when meta_data.char_name is missing
	UnknownCharacterName = "<unknown>"
)

// InventoryEntry is the value stored under an Inventory slot key
type InventoryEntry struct {
	GUID     string
	ItemData any
	Count    int
}

// Document is one character save. The JSON tree is kept as decoded, with
// numbers as json.Number, so fields this editor does not know about are
// written back exactly as they were read.
type Document struct {
	root map[string]any
}

// DecodeDocument parses a save file. The top level must be a JSON object.
func DecodeDocument(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var root map[string]any
	if err := dec.Decode(&root); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "save file is not a JSON object")
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.InvalidArgument("save file has trailing data after the JSON object")
	}
	if root == nil {
		return nil, errors.InvalidArgument("save file is not a JSON object")
	}

	return &Document{root: root}, nil
}

// Encode serializes the document with four-space indentation
func (d *Document) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(d.root); err != nil {
		return nil, errors.Wrap(err, "failed to encode save document")
	}
	return buf.Bytes(), nil
}

// Root exposes the decoded tree
func (d *Document) Root() map[string]any {
	return d.root
}

// CharacterName returns meta_data.char_name
func (d *Document) CharacterName() string {
	meta, ok := d.root[keyMetaData].(map[string]any)
	if !ok {
		return UnknownCharacterName
	}
	name, ok := meta[keyCharName].(string)
	if !ok {
		return UnknownCharacterName
	}
	return name
}

func (d *Document) skillList() []any {
	skills, ok := d.root[keySkills].(map[string]any)
	if !ok {
		return nil
	}
	list, _ := skills[keySkills].([]any)
	return list
}

func (d *Document) skillAt(index int) (map[string]any, error) {
	list := d.skillList()
	if index < 0 || index >= len(list) {
		return nil, errors.OutOfRangef("skill index %d out of range [0,%d)", index, len(list))
	}
	skill, ok := list[index].(map[string]any)
	if !ok {
		return nil, errors.DataLossf("skill %d is not an object", index)
	}
	return skill, nil
}

// Skills returns the skills in document order
func (d *Document) Skills() []Skill {
	list := d.skillList()
	out := make([]Skill, 0, len(list))
	for i, raw := range list {
		skill, _ := raw.(map[string]any)
		id, _ := skill[keySkillID].(string)
		out = append(out, Skill{
			Index: i,
			ID:    id,
			XP:    toInt64(skill[keySkillXP]),
		})
	}
	return out
}

// SkillXP returns the Xp of the skill at index, 0 when unset. Xp is a
// whole number: a fractional stored value is truncated toward zero here,
// and stays untouched in the document until the skill is edited.
func (d *Document) SkillXP(index int) (int64, error) {
	skill, err := d.skillAt(index)
	if err != nil {
		return 0, err
	}
	return toInt64(skill[keySkillXP]), nil
}

// SetSkillXP overwrites the Xp of the skill at index. Id is left alone.
func (d *Document) SetSkillXP(index int, xp int64) error {
	skill, err := d.skillAt(index)
	if err != nil {
		return err
	}
	skill[keySkillXP] = json.Number(strconv.FormatInt(xp, 10))
	return nil
}

func (d *Document) inventory(create bool) map[string]any {
	inv, ok := d.root[keyInventory].(map[string]any)
	if !ok && create {
		inv = make(map[string]any)
		d.root[keyInventory] = inv
	}
	return inv
}

// InventoryEntry reads the entry stored for slot
func (d *Document) InventoryEntry(slot int) (InventoryEntry, bool) {
	raw, ok := d.inventory(false)[SlotKey(slot)]
	if !ok {
		return InventoryEntry{}, false
	}
	entry, _ := raw.(map[string]any)
	guid, _ := entry[keyGUID].(string)
	return InventoryEntry{
		GUID:     guid,
		ItemData: entry[keyItemData],
		Count:    int(toInt64(entry[keyCount])),
	}, true
}

// SetInventoryEntry replaces whatever is stored for slot
func (d *Document) SetInventoryEntry(slot int, entry InventoryEntry) {
	d.inventory(true)[SlotKey(slot)] = map[string]any{
		keyGUID:     entry.GUID,
		keyItemData: cloneValue(entry.ItemData),
		keyCount:    json.Number(strconv.Itoa(entry.Count)),
	}
}

// DeleteInventoryEntry removes the slot key, reporting whether it existed
func (d *Document) DeleteInventoryEntry(slot int) bool {
	inv := d.inventory(false)
	key := SlotKey(slot)
	if _, ok := inv[key]; !ok {
		return false
	}
	delete(inv, key)
	return true
}

// InventorySlots lists the numeric slot keys present, ascending.
// Keys that are not integers are skipped.
func (d *Document) InventorySlots() []int {
	inv := d.inventory(false)
	slots := make([]int, 0, len(inv))
	for key := range inv {
		slot, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		slots = append(slots, slot)
	}
	sort.Ints(slots)
	return slots
}

func toInt64(v any) int64 {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i
		}
		if f, err := n.Float64(); err == nil {
			return int64(f)
		}
	case float64:
		return int64(n)
	case int:
		return int64(n)
	case int64:
		return n
	}
	return 0
}

// cloneValue deep-copies decoded JSON so catalog values are never aliased
// into a document.
func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = cloneValue(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = cloneValue(val)
		}
		return out
	default:
		return v
	}
}
