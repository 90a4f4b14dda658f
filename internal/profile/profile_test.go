package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCollection() Collection {
	return Collection{
		{Username: "alice", Email: "a@x.com", Alias: "a"},
		{Username: "bob", Email: "b@y.com", Alias: "b"},
		{Username: "carol", Email: "c@z.com", Alias: "c"},
	}
}

func TestFindByAlias(t *testing.T) {
	c := testCollection()

	user, ok := c.FindByAlias("b")
	require.True(t, ok)
	assert.Equal(t, "bob", user.Username)

	_, ok = c.FindByAlias("missing")
	assert.False(t, ok)
}

func TestHasFields(t *testing.T) {
	c := testCollection()

	assert.True(t, c.HasAlias("a"))
	assert.True(t, c.HasUsername("carol"))
	assert.True(t, c.HasEmail("b@y.com"))

	assert.False(t, c.HasAlias("alice"))
	assert.False(t, c.HasUsername("a"))
	assert.False(t, c.HasEmail("bob"))
}

func TestRemoveByAliasKeepsOrder(t *testing.T) {
	c := testCollection()

	kept, removed := c.RemoveByAlias("b")
	require.True(t, removed)
	assert.Equal(t, []string{"a", "c"}, kept.Aliases())

	kept, removed = c.RemoveByAlias("missing")
	assert.False(t, removed)
	assert.Equal(t, []string{"a", "b", "c"}, kept.Aliases())
}

func TestAliasesEmpty(t *testing.T) {
	assert.Empty(t, Collection{}.Aliases())
}
