package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/niksmo/ecom-admin/internal/core/domain"
	"github.com/niksmo/ecom-admin/internal/core/port"
)

var _ port.TokenStore = (*FileTokenStore)(nil)

// FileTokenStore keeps the tokens as a JSON file readable only by the
// owner.
type FileTokenStore struct {
	path string
}

func NewFileTokenStore(path string) (FileTokenStore, error) {
	if path == "" {
		return FileTokenStore{}, errors.New("token file path is empty")
	}
	return FileTokenStore{filepath.Clean(path)}, nil
}

func (s FileTokenStore) Load(ctx context.Context) (domain.Tokens, bool, error) {
	const op = "FileTokenStore.Load"

	if err := ctx.Err(); err != nil {
		return domain.Tokens{}, false, fmt.Errorf("%s: %w", op, err)
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.Tokens{}, false, nil
	}
	if err != nil {
		return domain.Tokens{}, false, fmt.Errorf("%s: %w", op, err)
	}

	t, err := decodeTokens(data)
	if err != nil {
		return domain.Tokens{}, false, fmt.Errorf("%s: %w", op, err)
	}
	return t, true, nil
}

// Save replaces the file atomically.
func (s FileTokenStore) Save(ctx context.Context, t domain.Tokens) error {
	const op = "FileTokenStore.Save"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	data, err := encodeTokens(t)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tmp, err := os.CreateTemp(dir, ".tokens-*")
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s FileTokenStore) Delete(ctx context.Context) error {
	const op = "FileTokenStore.Delete"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
