package middleware

import (
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
)

func TestContainer_GetAllAndClear(t *testing.T) {
	mc := NewContainer()
	noop := func(ctx huma.Context, next func(huma.Context)) { next(ctx) }

	mc.Add(noop)
	mc.Add(noop)

	got := mc.GetAllAndClear()
	assert.Len(t, got, 2)
	assert.Empty(t, mc.GetAllAndClear())
}
