package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ByteBuilderAI/ByteBuilder-API/internal/models"
)

func TestSaveAndGet(t *testing.T) {
	s := NewBuildStore()

	components := map[string]*models.Listing{
		"cpu": {Title: "Intel Core i7-13700K Processor"},
	}
	saved := s.Save("gaming rig", components, nil)

	require.NotEmpty(t, saved.ID)
	assert.False(t, saved.CreatedAt.IsZero())

	got, ok := s.Get(saved.ID)
	require.True(t, ok)
	assert.Equal(t, "gaming rig", got.Name)
	assert.Equal(t, components, got.Components)
}

func TestGetMissing(t *testing.T) {
	s := NewBuildStore()

	_, ok := s.Get("nope")
	assert.False(t, ok)
}

func TestListReturnsAllBuilds(t *testing.T) {
	s := NewBuildStore()
	first := s.Save("first", nil, nil)
	second := s.Save("second", nil, nil)

	builds := s.List()

	require.Len(t, builds, 2)
	ids := []string{builds[0].ID, builds[1].ID}
	assert.Contains(t, ids, first.ID)
	assert.Contains(t, ids, second.ID)
}

func TestConcurrentSaves(t *testing.T) {
	s := NewBuildStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Save("parallel", nil, nil)
		}()
	}
	wg.Wait()

	assert.Len(t, s.List(), 50)
}
