//go:build unit

package item_test

import (
	"testing"

	"shareit/internal/domain/item"
	"shareit/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ItemBuilder)
	errIs  error
}

func TestItem(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewItemBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, b.OwnerID, actual.OwnerID())
		assert.Equal(t, "Cordless Drill", actual.Name())
		assert.True(t, actual.Available())
		assert.True(t, actual.IsOwnedBy(b.OwnerID))
		assert.False(t, actual.IsOwnedBy(uuid.New()))
	})

	t.Run("name and description validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty name",
				mutate: func(b *builder.ItemBuilder) { b.Name = "" },
				errIs:  item.ErrEmptyName,
			},
			{
				name:   "whitespace name",
				mutate: func(b *builder.ItemBuilder) { b.Name = "   " },
				errIs:  item.ErrEmptyName,
			},
			{
				name:   "empty description",
				mutate: func(b *builder.ItemBuilder) { b.Description = "" },
				errIs:  item.ErrEmptyDescription,
			},
			{
				name:   "unavailable item is still creatable",
				mutate: func(b *builder.ItemBuilder) { b.Available = false },
			},
		})
	})
}

func TestItemPatch(t *testing.T) {
	ptr := func(s string) *string { return &s }
	boolPtr := func(b bool) *bool { return &b }

	t.Run("patches only present fields", func(t *testing.T) {
		i, err := builder.NewItemBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, i.Patch(ptr("Impact Driver"), nil, boolPtr(false)))
		assert.Equal(t, "Impact Driver", i.Name())
		assert.Equal(t, "18V drill with two batteries", i.Description())
		assert.False(t, i.Available())
	})

	t.Run("rejects blank values without mutating", func(t *testing.T) {
		i, err := builder.NewItemBuilder().BuildDomain()
		require.NoError(t, err)

		require.ErrorIs(t, i.Patch(ptr(" "), nil, nil), item.ErrEmptyName)
		require.ErrorIs(t, i.Patch(nil, ptr(""), nil), item.ErrEmptyDescription)
		assert.Equal(t, "Cordless Drill", i.Name())
		assert.Equal(t, "18V drill with two batteries", i.Description())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewItemBuilder()
			tc.mutate(b)

			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}
