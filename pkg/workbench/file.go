package workbench

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/framewright/framewright/pkg/errors"
	"github.com/framewright/framewright/pkg/frame"
)

const (
	designsFile  = "designs.json"
	sizesFile    = "sizes.json"
	settingsFile = "settings.json"
)

// FileStore is a file-based workbench for CLI use. Each collection
// lives in its own JSON file under the base directory.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFileStore creates a file-based workbench store.
// If baseDir is empty, defaults to ~/.config/framewright/workbench/
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeStore, err, "get home dir")
		}
		baseDir = filepath.Join(home, ".config", "framewright", "workbench")
	}
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "create workbench dir")
	}
	return &FileStore{baseDir: baseDir}, nil
}

// Path returns the base directory for workbench files.
func (s *FileStore) Path() string {
	return s.baseDir
}

// readFile decodes the JSON file name into v. A missing file leaves v
// untouched and reports found = false.
func (s *FileStore) readFile(name string, v any) (bool, error) {
	path := filepath.Join(s.baseDir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Wrap(errors.ErrCodeStore, err, "read %s", path)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, errors.Wrap(errors.ErrCodeStore, err, "parse %s", path)
	}
	return true, nil
}

func (s *FileStore) writeFile(name string, v any) error {
	path := filepath.Join(s.baseDir, name)
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "marshal %s", name)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "write %s", path)
	}
	return nil
}

func (s *FileStore) ListDesigns(ctx context.Context) ([]SavedDesign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var list []SavedDesign
	if _, err := s.readFile(designsFile, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *FileStore) GetDesign(ctx context.Context, name string) (SavedDesign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var list []SavedDesign
	if _, err := s.readFile(designsFile, &list); err != nil {
		return SavedDesign{}, err
	}
	for _, d := range list {
		if d.Name == name {
			return d, nil
		}
	}
	return SavedDesign{}, errors.New(errors.ErrCodeDesignNotFound, "design %q not found", name)
}

func (s *FileStore) SaveDesign(ctx context.Context, d SavedDesign) (SavedDesign, error) {
	if err := errors.ValidateDesignName(d.Name); err != nil {
		return SavedDesign{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var list []SavedDesign
	if _, err := s.readFile(designsFile, &list); err != nil {
		return SavedDesign{}, err
	}

	now := nowUTC()
	d.UpdatedAt = now

	replaced := false
	for i := range list {
		if list[i].Name == d.Name {
			d.ID = list[i].ID
			d.CreatedAt = list[i].CreatedAt
			list[i] = d
			replaced = true
			break
		}
	}
	if !replaced {
		d.ID = uuid.NewString()
		d.CreatedAt = now
		list = append(list, d)
	}

	if err := s.writeFile(designsFile, list); err != nil {
		return SavedDesign{}, err
	}
	return d, nil
}

func (s *FileStore) DeleteDesign(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var list []SavedDesign
	if _, err := s.readFile(designsFile, &list); err != nil {
		return err
	}

	kept := list[:0]
	for _, d := range list {
		if d.Name != name {
			kept = append(kept, d)
		}
	}
	if len(kept) == len(list) {
		return errors.New(errors.ErrCodeDesignNotFound, "design %q not found", name)
	}
	return s.writeFile(designsFile, kept)
}

func (s *FileStore) ListSizes(ctx context.Context) ([]frame.Size, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var list []frame.Size
	if _, err := s.readFile(sizesFile, &list); err != nil {
		return nil, err
	}
	sortSizes(list)
	return list, nil
}

func (s *FileStore) SaveSize(ctx context.Context, size frame.Size) error {
	if err := validateSize(size); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var list []frame.Size
	if _, err := s.readFile(sizesFile, &list); err != nil {
		return err
	}

	key := sizeKey(size.Name)
	replaced := false
	for i := range list {
		if sizeKey(list[i].Name) == key {
			list[i] = size
			replaced = true
			break
		}
	}
	if !replaced {
		list = append(list, size)
	}
	return s.writeFile(sizesFile, list)
}

func (s *FileStore) DeleteSize(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var list []frame.Size
	if _, err := s.readFile(sizesFile, &list); err != nil {
		return err
	}

	key := sizeKey(name)
	kept := list[:0]
	for _, sz := range list {
		if sizeKey(sz.Name) != key {
			kept = append(kept, sz)
		}
	}
	if len(kept) == len(list) {
		return errors.New(errors.ErrCodeNotFound, "size %q not found", name)
	}
	return s.writeFile(sizesFile, kept)
}

func (s *FileStore) LoadSettings(ctx context.Context) (Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	settings := DefaultSettings()
	if _, err := s.readFile(settingsFile, &settings); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

func (s *FileStore) SaveSettings(ctx context.Context, settings Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeFile(settingsFile, settings)
}

func (s *FileStore) Ping(ctx context.Context) error {
	if _, err := os.Stat(s.baseDir); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "workbench dir")
	}
	return nil
}

func (s *FileStore) Close() error { return nil }

var _ Store = (*FileStore)(nil)
