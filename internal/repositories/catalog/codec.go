package catalog

import (
	"bytes"
	"encoding/json"
	"math"

	"github.com/KirkDiggler/dragonwilds-editor/internal/entities"
	"github.com/KirkDiggler/dragonwilds-editor/internal/errors"
)

// rawEntry lets the decoder tell a missing name from an empty one
type rawEntry struct {
	Name     *string     `json:"name"`
	GUID     string      `json:"GUID"`
	ItemData any         `json:"ItemData"`
	Max      json.Number `json:"max"`
}

func decodeEntries(data []byte) ([]entities.CatalogEntry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw []rawEntry
	if err := dec.Decode(&raw); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "catalog is not a JSON array of entries")
	}

	entries := make([]entities.CatalogEntry, 0, len(raw))
	for i, r := range raw {
		if r.Name == nil {
			return nil, errors.InvalidArgumentf("catalog entry %d has no name", i)
		}
		maxCount, err := decodeMax(r.Max)
		if err != nil {
			return nil, errors.Wrapf(err, "catalog entry %q", *r.Name)
		}
		entries = append(entries, entities.CatalogEntry{
			Name:     *r.Name,
			GUID:     r.GUID,
			ItemData: r.ItemData,
			Max:      maxCount,
		})
	}

	return entries, nil
}

// decodeMax accepts any whole number, including tools that write 99.0.
// A missing max is 0.
func decodeMax(n json.Number) (int, error) {
	if n == "" {
		return 0, nil
	}

	var v int64
	if i, err := n.Int64(); err == nil {
		v = i
	} else {
		f, ferr := n.Float64()
		if ferr != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
			return 0, errors.InvalidArgumentf("max %s is not a whole number", n)
		}
		v = int64(f)
	}

	if v < 0 {
		return 0, errors.InvalidArgumentf("negative max %d", v)
	}
	if v > math.MaxInt32 {
		return 0, errors.InvalidArgumentf("max %d is too large", v)
	}
	return int(v), nil
}

func encodeEntries(entries []entities.CatalogEntry) ([]byte, error) {
	if entries == nil {
		entries = []entities.CatalogEntry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal catalog entries")
	}
	return data, nil
}

func validateKind(kind entities.CatalogKind) error {
	switch kind {
	case entities.CatalogItems, entities.CatalogRunes:
		return nil
	default:
		return errors.InvalidArgumentf("unknown catalog kind %q", kind)
	}
}
