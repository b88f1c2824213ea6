package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/nfrund/sevahub/internal/domain"
	"github.com/spf13/afero"
)

// FileSource serves reference data read from a JSON file. Reload swaps the
// data atomically; a failed reload keeps the previous data.
type FileSource struct {
	fs   afero.Fs
	path string

	mu   sync.RWMutex
	data *StaticSource
}

// NewFileSource reads path from fs and returns a ready source.
func NewFileSource(fs afero.Fs, path string) (*FileSource, error) {
	s := &FileSource{fs: fs, path: path}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path is the file the source reads.
func (s *FileSource) Path() string { return s.path }

// Reload re-reads the file.
func (s *FileSource) Reload() error {
	raw, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return fmt.Errorf("read catalog %s: %w", s.path, err)
	}

	var d Data
	if err := json.Unmarshal(raw, &d); err != nil {
		return fmt.Errorf("parse catalog %s: %w", s.path, err)
	}

	s.mu.Lock()
	s.data = NewStaticSource(d)
	s.mu.Unlock()
	return nil
}

func (s *FileSource) current() *StaticSource {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

func (s *FileSource) Applications(ctx context.Context) ([]domain.Application, error) {
	return s.current().Applications(ctx)
}

func (s *FileSource) Recommendations(ctx context.Context) ([]domain.Recommendation, error) {
	return s.current().Recommendations(ctx)
}

func (s *FileSource) PostedOpportunities(ctx context.Context) ([]domain.PostedOpportunity, error) {
	return s.current().PostedOpportunities(ctx)
}

func (s *FileSource) Applicants(ctx context.Context) ([]domain.Applicant, error) {
	return s.current().Applicants(ctx)
}
