package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileSlotRepo implements SlotRepo with one "<key>.json" file per slot
// inside a directory. Writes go to a temp file and are renamed into place
// so a crash never leaves a half-written slot.
type FileSlotRepo struct {
	dir string
}

// NewFileSlotRepo creates a FileSlotRepo rooted at dir. The directory is
// created on first write.
func NewFileSlotRepo(dir string) *FileSlotRepo {
	return &FileSlotRepo{dir: dir}
}

func (r *FileSlotRepo) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("invalid slot key %q", key)
	}
	return filepath.Join(r.dir, key+".json"), nil
}

func (r *FileSlotRepo) Get(ctx context.Context, key string) ([]byte, error) {
	p, err := r.path(key)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("slot %q: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	return b, nil
}

func (r *FileSlotRepo) Put(ctx context.Context, key string, value []byte) error {
	p, err := r.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	tmp, err := os.CreateTemp(r.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		return fmt.Errorf("write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close file: %w", err)
	}
	if err := os.Rename(tmp.Name(), p); err != nil {
		return fmt.Errorf("rename file: %w", err)
	}
	return nil
}

func (r *FileSlotRepo) Delete(ctx context.Context, key string) error {
	p, err := r.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove: %w", err)
	}
	return nil
}
