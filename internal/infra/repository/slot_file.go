package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	repo "storefront/internal/repository"
)

// ディレクトリにkeyごとのファイルで保存するスロット
type FileSlotRepository struct {
	dir string
	mu  sync.Mutex
}

var _ repo.SlotRepository = (*FileSlotRepository)(nil)

// DI（ディレクトリが無ければ作る）
func NewFileSlotRepository(dir string) (*FileSlotRepository, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create slot dir: %w", err)
	}
	return &FileSlotRepository{dir: dir}, nil
}

func (r *FileSlotRepository) path(key string) string {
	return filepath.Join(r.dir, url.PathEscape(key))
}

func (r *FileSlotRepository) Get(ctx context.Context, key string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, err := os.ReadFile(r.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return "", repo.ErrSlotNotFound
	}
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// tmpに書いてからrenameする（途中で落ちても壊れない）
func (r *FileSlotRepository) Set(ctx context.Context, key string, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tmp, err := os.CreateTemp(r.dir, ".slot-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(value); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, r.path(key)); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}

func (r *FileSlotRepository) Remove(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	err := os.Remove(r.path(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
