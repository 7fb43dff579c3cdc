package saves

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/KirkDiggler/rpg-adventure/internal/errors"
)

type fileRepository struct {
	dir string
}

// FileConfig contains configuration for the file save repository
type FileConfig struct {
	// Dir holds one save_<slot>.json per slot; created on first save
	Dir string
}

// Validate validates the FileConfig
func (cfg *FileConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Dir == "" {
		return errors.InvalidArgument("save directory cannot be empty")
	}
	return nil
}

// NewFile creates a save repository backed by JSON files
func NewFile(cfg *FileConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &fileRepository{dir: cfg.Dir}, nil
}

func (r *fileRepository) path(slot int) string {
	return filepath.Join(r.dir, fmt.Sprintf("save_%d.json", slot))
}

func (r *fileRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(input.Data, "", "    ")
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal save data")
	}

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create save directory %s", r.dir)
	}

	// Write then rename so a crash never leaves a half-written slot
	path := r.path(input.Slot)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return nil, errors.Wrapf(err, "failed to write save slot %d", input.Slot)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return nil, errors.Wrapf(err, "failed to replace save slot %d", input.Slot)
	}

	return &SaveOutput{Location: path}, nil
}

func (r *fileRepository) Load(_ context.Context, input LoadInput) (*LoadOutput, error) {
	if err := validateSlot(input.Slot); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(r.path(input.Slot))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("save slot %d is empty", input.Slot)
		}
		return nil, errors.Wrapf(err, "failed to read save slot %d", input.Slot)
	}

	data, err := decode(input.Slot, raw)
	if err != nil {
		return nil, err
	}

	return &LoadOutput{Data: data}, nil
}

func (r *fileRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateSlot(input.Slot); err != nil {
		return nil, err
	}

	if err := os.Remove(r.path(input.Slot)); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("save slot %d is empty", input.Slot)
		}
		return nil, errors.Wrapf(err, "failed to delete save slot %d", input.Slot)
	}

	return &DeleteOutput{}, nil
}
