package client

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bomkeeper/internal/domain/bom"
)

func TestStore(t *testing.T) {
	recs := []bom.Record{{ID: "1"}, {ID: "2"}, {ID: "3"}}

	t.Run("replace and snapshot", func(t *testing.T) {
		s := NewStore()
		s.Replace(recs)

		snap := s.Snapshot()
		snap[0].ID = "changed"

		got, ok := s.Find("1")
		assert.True(t, ok)
		assert.Equal(t, "1", got.ID)
		assert.Equal(t, 3, s.Len())
	})

	t.Run("remove", func(t *testing.T) {
		s := NewStore()
		s.Replace(recs)

		assert.True(t, s.Remove("2"))
		assert.False(t, s.Remove("2"))
		_, ok := s.Find("2")
		assert.False(t, ok)
		assert.Equal(t, 2, s.Len())
	})

	t.Run("older load is dropped", func(t *testing.T) {
		s := NewStore()
		first := s.Begin()
		second := s.Begin()

		assert.True(t, s.ReplaceIfNewer(second, recs[:2]))
		assert.False(t, s.ReplaceIfNewer(first, recs))
		assert.Equal(t, 2, s.Len())
	})

	t.Run("load issued before delete is dropped", func(t *testing.T) {
		s := NewStore()
		s.Replace(recs)

		gen := s.Begin()
		s.Remove("3")
		assert.False(t, s.ReplaceIfNewer(gen, recs))
		assert.Equal(t, 2, s.Len())

		assert.True(t, s.ReplaceIfNewer(s.Begin(), recs[:1]))
		assert.Equal(t, 1, s.Len())
	})
}
