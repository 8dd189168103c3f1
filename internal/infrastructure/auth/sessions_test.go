package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Evowe/baseball-stats-api/internal/domain/account"
	"github.com/Evowe/baseball-stats-api/internal/platform/cache"
)

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	sessions := NewSessionStore(cache.NewStore(time.Minute))

	principal := account.Principal{UserID: 7, Username: "ted", IsAdmin: true}
	token := sessions.Issue(ctx, principal)
	require.NotEmpty(t, token)

	got, ok := sessions.Resolve(ctx, token)
	require.True(t, ok)
	require.Equal(t, principal, got)

	sessions.Revoke(ctx, token)
	_, ok = sessions.Resolve(ctx, token)
	require.False(t, ok)
}

func TestResolveUnknownToken(t *testing.T) {
	sessions := NewSessionStore(cache.NewStore(time.Minute))

	_, ok := sessions.Resolve(context.Background(), "not-a-token")
	require.False(t, ok)
}

func TestTokensAreUnique(t *testing.T) {
	ctx := context.Background()
	sessions := NewSessionStore(cache.NewStore(time.Minute))

	a := sessions.Issue(ctx, account.Principal{UserID: 1})
	b := sessions.Issue(ctx, account.Principal{UserID: 2})
	require.NotEqual(t, a, b)

	got, ok := sessions.Resolve(ctx, b)
	require.True(t, ok)
	require.EqualValues(t, 2, got.UserID)
}
