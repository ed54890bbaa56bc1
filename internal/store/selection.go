package store

import (
	"sync"

	"github.com/MKhiriev/sharepoint-uploader/models"
)

var _ FileSelection = (*Selection)(nil)

// Selection is the in-memory [FileSelection]. It is safe for concurrent use.
type Selection struct {
	mu    sync.RWMutex
	files []models.FileHandle
	index map[string]struct{}
}

func NewSelection() *Selection {
	return &Selection{index: make(map[string]struct{})}
}

func (s *Selection) Add(files ...models.FileHandle) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	added := 0
	for _, f := range files {
		if f == nil {
			continue
		}
		if _, ok := s.index[f.Path()]; ok {
			continue
		}
		s.index[f.Path()] = struct{}{}
		s.files = append(s.files, f)
		added++
	}

	return added
}

func (s *Selection) Remove(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[path]; !ok {
		return false
	}
	delete(s.index, path)

	for i, f := range s.files {
		if f.Path() == path {
			s.files = append(s.files[:i:i], s.files[i+1:]...)
			break
		}
	}

	return true
}

func (s *Selection) Files() []models.FileHandle {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.FileHandle, len(s.files))
	copy(out, s.files)
	return out
}

func (s *Selection) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.files)
}

func (s *Selection) TotalSize() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total int64
	for _, f := range s.files {
		total += f.Size()
	}
	return total
}

func (s *Selection) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.files = nil
	s.index = make(map[string]struct{})
}
