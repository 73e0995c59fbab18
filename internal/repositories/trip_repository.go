package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"roamio/internal/models/db_models"
	"roamio/pkg/utils"
)

// TripRepository is the saved-trips store: an ordered list read and
// rewritten wholesale on every mutation.
type TripRepository interface {
	Load(ctx context.Context) ([]db_models.TripRecord, error)
	Append(ctx context.Context, record db_models.TripRecord) error
}

func NewTripRepository(path string) TripRepository {
	return &JSONTripRepository{path: path}
}

// JSONTripRepository keeps trips as a pretty-printed JSON array in one file.
// mu serialises callers inside this process only; separate processes still
// race and the last writer wins.
type JSONTripRepository struct {
	path string
	mu   sync.Mutex
}

func (r *JSONTripRepository) Load(ctx context.Context) ([]db_models.TripRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load(ctx)
}

func (r *JSONTripRepository) Append(ctx context.Context, record db_models.TripRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	trips, err := r.load(ctx)
	if err != nil {
		return err
	}

	return r.write(append(trips, record))
}

func (r *JSONTripRepository) load(ctx context.Context) ([]db_models.TripRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := r.ensureFile(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", utils.ErrTripStore, r.path, err)
	}

	trips := []db_models.TripRecord{}
	if len(bytes.TrimSpace(data)) == 0 {
		return trips, nil
	}
	if err := json.Unmarshal(data, &trips); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %w", utils.ErrTripStore, r.path, err)
	}
	if trips == nil {
		// a literal null in the file
		trips = []db_models.TripRecord{}
	}

	return trips, nil
}

// ensureFile materialises an empty array the first time the store is touched.
func (r *JSONTripRepository) ensureFile() error {
	_, err := os.Stat(r.path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: stat %s: %w", utils.ErrTripStore, r.path, err)
	}

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: create dir %s: %w", utils.ErrTripStore, dir, err)
		}
	}

	return r.write([]db_models.TripRecord{})
}

// write replaces the store through a temp file and rename, so readers never
// see a half-written array.
func (r *JSONTripRepository) write(trips []db_models.TripRecord) error {
	data, err := json.MarshalIndent(trips, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode: %w", utils.ErrTripStore, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %w", utils.ErrTripStore, err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: chmod %s: %w", utils.ErrTripStore, tmp.Name(), err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: write %s: %w", utils.ErrTripStore, tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %w", utils.ErrTripStore, tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("%w: replace %s: %w", utils.ErrTripStore, r.path, err)
	}

	return nil
}
