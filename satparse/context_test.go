package satparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariableGetDefault(t *testing.T) {
	ctx := NewContext()

	id, err := ctx.VariableGet("x", VariableDefault)
	require.NoError(t, err)
	assert.Equal(t, 0, id)

	again, err := ctx.VariableGet("x", VariableDefault)
	require.NoError(t, err)
	assert.Equal(t, id, again)

	other, err := ctx.VariableGet("y", VariableDefault)
	require.NoError(t, err)
	assert.Equal(t, 1, other)
}

func TestVariableGetFlagMatrix(t *testing.T) {
	t.Run("CREATE first then second fails", func(t *testing.T) {
		ctx := NewContext()
		id, err := ctx.VariableGet("x", VariableCreate)
		require.NoError(t, err)
		assert.Equal(t, 0, id)

		_, err = ctx.VariableGet("x", VariableCreate)
		assert.ErrorIs(t, err, ErrCreateAlreadyExists)
	})

	t.Run("REF on fresh name fails, succeeds after DEFAULT", func(t *testing.T) {
		ctx := NewContext()
		_, err := ctx.VariableGet("x", VariableRef)
		assert.ErrorIs(t, err, ErrRefNotFound)

		id, err := ctx.VariableGet("x", VariableDefault)
		require.NoError(t, err)
		assert.Equal(t, 0, id)

		again, err := ctx.VariableGet("x", VariableRef)
		require.NoError(t, err)
		assert.Equal(t, id, again)
	})

	t.Run("CREATE|REF is incompatible", func(t *testing.T) {
		ctx := NewContext()
		_, err := ctx.VariableGet("x", VariableCreate|VariableRef)
		assert.ErrorIs(t, err, ErrIncompatibleFlags)
	})

	t.Run("UNIQUE without CREATE is incompatible", func(t *testing.T) {
		ctx := NewContext()
		_, err := ctx.VariableGet("x", VariableUnique)
		assert.ErrorIs(t, err, ErrIncompatibleFlags)
	})

	t.Run("CREATE|UNIQUE mints distinct anonymous ids and never interns a name", func(t *testing.T) {
		ctx := NewContext()
		first, err := ctx.VariableGet("", VariableCreate|VariableUnique)
		require.NoError(t, err)
		assert.Equal(t, 0, first)

		second, err := ctx.VariableGet("", VariableCreate|VariableUnique)
		require.NoError(t, err)
		assert.Equal(t, 1, second)

		assert.Equal(t, 0, ctx.VariableCount())
	})
}

func TestVariableGetIdsAreDenseAndMonotonic(t *testing.T) {
	ctx := NewContext()
	names := []string{"a", "b", "c", "d"}
	for i, name := range names {
		id, err := ctx.VariableGet(name, VariableDefault)
		require.NoError(t, err)
		assert.Equal(t, i, id)
	}
	assert.Equal(t, len(names), ctx.VariableCount())
}

func TestVariableName(t *testing.T) {
	ctx := NewContext()
	id, err := ctx.VariableGet("x", VariableDefault)
	require.NoError(t, err)

	name, ok := ctx.VariableName(id)
	require.True(t, ok)
	assert.Equal(t, "x", name)

	_, ok = ctx.VariableName(id + 1)
	assert.False(t, ok)
}

func TestVariableNameNeverResolvesUniqueIds(t *testing.T) {
	ctx := NewContext()
	id, err := ctx.VariableGet("", VariableCreate|VariableUnique)
	require.NoError(t, err)

	_, ok := ctx.VariableName(id)
	assert.False(t, ok)
}
