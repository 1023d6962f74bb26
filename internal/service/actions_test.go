package service_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ojonugwa/igala-names/backend/internal/service"
	"github.com/ojonugwa/igala-names/backend/internal/testhelpers"
)

func TestToggleLikeRoundTrip(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewNameActionService(db)
	ctx := context.Background()
	userID := testhelpers.CreateTestUser(t, db, "ene@example.com")

	active, err := svc.ToggleLike(ctx, userID, "omojo")
	require.NoError(t, err)
	assert.True(t, active)

	status, err := svc.Status(ctx, userID, "omojo")
	require.NoError(t, err)
	assert.True(t, status.Liked)
	assert.False(t, status.Favorited)

	active, err = svc.ToggleLike(ctx, userID, "omojo")
	require.NoError(t, err)
	assert.False(t, active)

	status, err = svc.Status(ctx, userID, "omojo")
	require.NoError(t, err)
	assert.False(t, status.Liked)
}

func TestLikeAndFavoriteAreIndependent(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewNameActionService(db)
	ctx := context.Background()
	userID := testhelpers.CreateTestUser(t, db, "ene@example.com")

	_, err := svc.ToggleFavorite(ctx, userID, "omojo")
	require.NoError(t, err)

	status, err := svc.Status(ctx, userID, "omojo")
	require.NoError(t, err)
	assert.False(t, status.Liked)
	assert.True(t, status.Favorited)

	// toggling the like leaves the favorite alone
	_, err = svc.ToggleLike(ctx, userID, "omojo")
	require.NoError(t, err)

	status, err = svc.Status(ctx, userID, "omojo")
	require.NoError(t, err)
	assert.True(t, status.Liked)
	assert.True(t, status.Favorited)
}

func TestToggleRequiresAuthentication(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewNameActionService(db)
	ctx := context.Background()

	_, err := svc.ToggleLike(ctx, uuid.Nil, "omojo")
	assert.ErrorIs(t, err, service.ErrAuthenticationRequired)

	_, err = svc.ToggleFavorite(ctx, uuid.Nil, "omojo")
	assert.ErrorIs(t, err, service.ErrAuthenticationRequired)

	_, err = svc.Status(ctx, uuid.Nil, "omojo")
	assert.ErrorIs(t, err, service.ErrAuthenticationRequired)
}

func TestConcurrentTogglesStayConsistent(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewNameActionService(db)
	ctx := context.Background()
	userID := testhelpers.CreateTestUser(t, db, "ene@example.com")

	// an even number of serialized toggles must land back on inactive
	const rounds = 8
	var wg sync.WaitGroup
	errs := make([]error, rounds)
	wg.Add(rounds)
	for i := 0; i < rounds; i++ {
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.ToggleLike(ctx, userID, "omojo")
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}

	status, err := svc.Status(ctx, userID, "omojo")
	require.NoError(t, err)
	assert.False(t, status.Liked)
}

func TestListedIDsPerUser(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewNameActionService(db)
	ctx := context.Background()
	alice := testhelpers.CreateTestUser(t, db, "alice@example.com")
	bob := testhelpers.CreateTestUser(t, db, "bob@example.com")

	for _, nameID := range []string{"omojo", "ojima", "achimi"} {
		_, err := svc.ToggleLike(ctx, alice, nameID)
		require.NoError(t, err)
	}
	_, err := svc.ToggleFavorite(ctx, bob, "omojo")
	require.NoError(t, err)

	liked, err := svc.LikedNameIDs(ctx, alice)
	require.NoError(t, err)
	assert.Len(t, liked, 3)

	likedBob, err := svc.LikedNameIDs(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, likedBob)

	favs, err := svc.FavoriteNameIDs(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, []string{"omojo"}, favs)
}

func TestUnlikeIsIdempotent(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewNameActionService(db)
	ctx := context.Background()
	userID := testhelpers.CreateTestUser(t, db, "ene@example.com")

	_, err := svc.ToggleLike(ctx, userID, "omojo")
	require.NoError(t, err)

	require.NoError(t, svc.Unlike(ctx, userID, "omojo"))
	require.NoError(t, svc.Unlike(ctx, userID, "omojo"))

	status, err := svc.Status(ctx, userID, "omojo")
	require.NoError(t, err)
	assert.False(t, status.Liked)
}
