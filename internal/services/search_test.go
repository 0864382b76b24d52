package services

import (
	"testing"
	"time"

	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchRequiresQuery(t *testing.T) {
	newTestDB(t)
	search := NewSearchService()

	_, err := search.Search("   ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSearchCaseInsensitive(t *testing.T) {
	newTestDB(t)
	search := NewSearchService()
	alice := createUser(t, "Alice", models.AccountTypePublic)
	createUser(t, "bob", models.AccountTypePublic)
	createPostAt(t, alice, "Alignment matters", time.Now().Add(-time.Hour))

	result, err := search.Search("ali")
	require.NoError(t, err)
	require.Len(t, result.Users, 1)
	assert.Equal(t, alice.ID, result.Users[0].ID)
	require.Len(t, result.Posts, 1)
	assert.Equal(t, "Alignment matters", result.Posts[0].Content)
}

func TestSearchCollectsHashtagsFromMatchedPosts(t *testing.T) {
	newTestDB(t)
	search := NewSearchService()
	alice := createUser(t, "alice", models.AccountTypePublic)

	base := time.Now().Add(-time.Hour)
	createPostAt(t, alice, "shipping #golang services", base)
	createPostAt(t, alice, "shipping more #golang and #docker", base.Add(time.Minute))
	createPostAt(t, alice, "unrelated #rust note", base.Add(2*time.Minute))

	result, err := search.Search("shipping")
	require.NoError(t, err)
	assert.Len(t, result.Posts, 2)
	assert.ElementsMatch(t, []string{"golang", "docker"}, result.Hashtags)
}

func TestAllPostsCachedUntilInvalidated(t *testing.T) {
	newTestDB(t)
	search := NewSearchService()
	alice := createUser(t, "alice", models.AccountTypePublic)
	createPostAt(t, alice, "first", time.Now().Add(-time.Hour))

	posts, err := search.AllPosts()
	require.NoError(t, err)
	require.Len(t, posts, 1)

	createPostAt(t, alice, "second", time.Now())
	cached, err := search.AllPosts()
	require.NoError(t, err)
	assert.Len(t, cached, 1)

	invalidateSearchCache()
	fresh, err := search.AllPosts()
	require.NoError(t, err)
	assert.Len(t, fresh, 2)
}

func TestAllUsersCached(t *testing.T) {
	newTestDB(t)
	search := NewSearchService()
	createUser(t, "alice", models.AccountTypePublic)

	users, err := search.AllUsers()
	require.NoError(t, err)
	require.Len(t, users, 1)

	createUser(t, "bob", models.AccountTypePublic)
	cached, err := search.AllUsers()
	require.NoError(t, err)
	assert.Len(t, cached, 1)
}
