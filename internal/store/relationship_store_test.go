package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowRejectsDuplicateEdge(t *testing.T) {
	gw := testGateway(t)
	rels := NewRelationshipStore(gw)
	a := createUser(t, gw, "alice")
	b := createUser(t, gw, "bob")

	rel, err := rels.Follow(a.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, rel.FollowerID)
	assert.Equal(t, b.ID, rel.FollowingID)

	_, err = rels.Follow(a.ID, b.ID)
	assert.ErrorIs(t, err, ErrDuplicateRelationship)

	// The reverse edge is independent.
	_, err = rels.Follow(b.ID, a.ID)
	assert.NoError(t, err)
}

func TestUnfollowIsIdempotent(t *testing.T) {
	gw := testGateway(t)
	rels := NewRelationshipStore(gw)
	a := createUser(t, gw, "alice")
	b := createUser(t, gw, "bob")

	_, err := rels.Follow(a.ID, b.ID)
	require.NoError(t, err)

	require.NoError(t, rels.Unfollow(a.ID, b.ID))
	require.NoError(t, rels.Unfollow(a.ID, b.ID))

	// Unfollowing a pair that never existed also succeeds.
	require.NoError(t, rels.Unfollow(a.ID, uuid.New()))
}

func TestListFollowingPreloadsProfiles(t *testing.T) {
	gw := testGateway(t)
	rels := NewRelationshipStore(gw)
	a := createUser(t, gw, "alice")
	b := createUser(t, gw, "bob")
	c := createUser(t, gw, "carol")

	_, err := rels.Follow(a.ID, b.ID)
	require.NoError(t, err)
	_, err = rels.Follow(a.ID, c.ID)
	require.NoError(t, err)

	list, err := rels.ListFollowing(a.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)

	followed := map[string]bool{}
	for _, rel := range list {
		require.NotNil(t, rel.Following)
		followed[rel.Following.Username] = true
	}
	assert.True(t, followed["bob"])
	assert.True(t, followed["carol"])
}

func TestStatsCountsBothDirections(t *testing.T) {
	gw := testGateway(t)
	rels := NewRelationshipStore(gw)
	a := createUser(t, gw, "alice")
	b := createUser(t, gw, "bob")
	c := createUser(t, gw, "carol")

	_, err := rels.Follow(a.ID, b.ID)
	require.NoError(t, err)
	_, err = rels.Follow(c.ID, a.ID)
	require.NoError(t, err)
	_, err = rels.Follow(b.ID, a.ID)
	require.NoError(t, err)

	stats, err := rels.Stats(a.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.FollowingCount)
	assert.EqualValues(t, 2, stats.FollowersCount)
}

func TestSuggestExcludesSelfAndFollowed(t *testing.T) {
	gw := testGateway(t)
	rels := NewRelationshipStore(gw)
	a := createUser(t, gw, "alice")
	b := createUser(t, gw, "bob")
	createUser(t, gw, "carol")
	createUser(t, gw, "dave")

	_, err := rels.Follow(a.ID, b.ID)
	require.NoError(t, err)

	suggestions, err := rels.Suggest(a.ID, 10)
	require.NoError(t, err)
	require.Len(t, suggestions, 2)
	for _, p := range suggestions {
		assert.NotEqual(t, a.ID, p.ID)
		assert.NotEqual(t, b.ID, p.ID)
	}

	// Unfollowing makes the user eligible again.
	require.NoError(t, rels.Unfollow(a.ID, b.ID))
	suggestions, err = rels.Suggest(a.ID, 10)
	require.NoError(t, err)
	assert.Len(t, suggestions, 3)
}

func TestSuggestHonorsLimit(t *testing.T) {
	gw := testGateway(t)
	rels := NewRelationshipStore(gw)
	a := createUser(t, gw, "alice")
	createUser(t, gw, "bob")
	createUser(t, gw, "carol")

	suggestions, err := rels.Suggest(a.ID, 1)
	require.NoError(t, err)
	assert.Len(t, suggestions, 1)
}
