// Package saves provides the interface for save slot persistence
package saves

//go:generate mockgen -destination=mock/mock_repository.go -package=savesmock github.com/KirkDiggler/rpg-adventure/internal/repositories/saves Repository

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strconv"

	"github.com/KirkDiggler/rpg-adventure/internal/errors"
)

const (
	// Error messages
	errInvalidSlot = "slot must be at least 1"
	errNilData     = "save data cannot be nil"
)

// Repository defines the interface for save slot persistence.
// Each numbered slot holds one JSON document.
type Repository interface {
	// Save stores the document in the slot, replacing any previous save
	// Returns errors.InvalidArgument for a bad slot or nil data
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Load retrieves the document in the slot
	// Returns errors.InvalidArgument for a bad slot
	// Returns errors.NotFound if the slot is empty
	// Returns errors.DataLoss if the stored document is not valid JSON
	// Returns errors.Internal for storage failures
	Load(ctx context.Context, input LoadInput) (*LoadOutput, error)

	// Delete empties the slot
	// Returns errors.InvalidArgument for a bad slot
	// Returns errors.NotFound if the slot is already empty
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// SaveInput defines the input for saving a slot
type SaveInput struct {
	Slot int
	Data map[string]any
}

// SaveOutput defines the output for saving a slot
type SaveOutput struct {
	// Location describes where the document ended up (file path, key, row)
	Location string
}

// LoadInput defines the input for loading a slot
type LoadInput struct {
	Slot int
}

// LoadOutput defines the output for loading a slot
type LoadOutput struct {
	Data map[string]any
}

// DeleteInput defines the input for deleting a slot
type DeleteInput struct {
	Slot int
}

// DeleteOutput defines the output for deleting a slot
type DeleteOutput struct{}

func validateSlot(slot int) error {
	if slot < 1 {
		return errors.InvalidArgument(errInvalidSlot).WithMeta("slot", slot)
	}
	return nil
}

func validateSave(input SaveInput) error {
	if err := validateSlot(input.Slot); err != nil {
		return err
	}
	if input.Data == nil {
		return errors.InvalidArgument(errNilData)
	}
	return nil
}

// decode parses a stored document. Whole numbers come back as int and
// everything else numeric as float64, so a saved int loads unchanged.
func decode(slot int, raw []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var data map[string]any
	if err := dec.Decode(&data); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeDataLoss, "save slot %d is corrupted", slot).
			WithMeta("slot", slot)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.DataLossf("save slot %d has trailing data", slot).WithMeta("slot", slot)
	}
	if data == nil {
		return nil, errors.DataLossf("save slot %d holds no document", slot).WithMeta("slot", slot)
	}

	for key, value := range data {
		data[key] = normalize(value)
	}
	return data, nil
}

func normalize(value any) any {
	switch v := value.(type) {
	case json.Number:
		if i, err := strconv.ParseInt(v.String(), 10, 0); err == nil {
			return int(i)
		}
		if f, err := v.Float64(); err == nil {
			return f
		}
		return v.String()
	case map[string]any:
		for key, inner := range v {
			v[key] = normalize(inner)
		}
		return v
	case []any:
		for i, inner := range v {
			v[i] = normalize(inner)
		}
		return v
	default:
		return value
	}
}
