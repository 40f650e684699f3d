// Package store keeps saved builds in memory. The engine makes no
// concurrency guarantees about shared state, so every mutation here is
// guarded by a single mutex.
package store

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ByteBuilderAI/ByteBuilder-API/internal/models"
)

type SavedBuild struct {
	ID         string                     `json:"id"`
	Name       string                     `json:"name"`
	Components map[string]*models.Listing `json:"components"`
	Report     *models.BuildReport        `json:"report,omitempty"`
	CreatedAt  time.Time                  `json:"created_at"`
}

type BuildStore struct {
	mu     sync.Mutex
	builds map[string]SavedBuild
}

func NewBuildStore() *BuildStore {
	return &BuildStore{builds: make(map[string]SavedBuild)}
}

// Save stores a build under a fresh id and returns the stored record.
func (s *BuildStore) Save(name string, components map[string]*models.Listing, report *models.BuildReport) SavedBuild {
	build := SavedBuild{
		ID:         uuid.NewString(),
		Name:       name,
		Components: components,
		Report:     report,
		CreatedAt:  time.Now().UTC(),
	}

	s.mu.Lock()
	s.builds[build.ID] = build
	s.mu.Unlock()

	return build
}

func (s *BuildStore) Get(id string) (SavedBuild, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	build, ok := s.builds[id]
	return build, ok
}

// List returns all saved builds, oldest first.
func (s *BuildStore) List() []SavedBuild {
	s.mu.Lock()
	builds := make([]SavedBuild, 0, len(s.builds))
	for _, build := range s.builds {
		builds = append(builds, build)
	}
	s.mu.Unlock()

	sort.Slice(builds, func(i, j int) bool {
		if builds[i].CreatedAt.Equal(builds[j].CreatedAt) {
			return builds[i].ID < builds[j].ID
		}
		return builds[i].CreatedAt.Before(builds[j].CreatedAt)
	})
	return builds
}
