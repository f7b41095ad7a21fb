package service

import (
	"context"
	"testing"

	"finlit_backend/internal/repository"
	"finlit_backend/internal/testutil"
	"finlit_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	db := testutil.NewDB(t)
	svc := NewAuthService(repository.NewUserRepository(db), testutil.Config(t))
	svc.Cost = bcrypt.MinCost
	return svc
}

func TestSignupConflicts(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	id, err := svc.Signup(ctx, "a@example.com", "alice", "hunter22")
	require.NoError(t, err)
	assert.NotZero(t, id)

	_, err = svc.Signup(ctx, "a@example.com", "someone-else", "hunter22")
	assert.ErrorIs(t, err, util.ErrConflict)

	_, err = svc.Signup(ctx, "other@example.com", "alice", "hunter22")
	assert.ErrorIs(t, err, util.ErrConflict)

	_, err = svc.Signup(ctx, " A@Example.com ", "third", "hunter22")
	assert.ErrorIs(t, err, util.ErrConflict)
}

func TestSignupHashesPassword(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	id, err := svc.Signup(ctx, "a@example.com", "alice", "hunter22")
	require.NoError(t, err)

	user, err := svc.UserRepo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter22")))
}

func TestLogin(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	id, err := svc.Signup(ctx, "a@example.com", "alice", "hunter22")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "a@example.com", "wrong")
	assert.ErrorIs(t, err, util.ErrUnauthorized)

	_, err = svc.Login(ctx, "nobody@example.com", "hunter22")
	assert.ErrorIs(t, err, util.ErrUnauthorized)

	res, err := svc.Login(ctx, "a@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, id, res.UserID)

	claims, err := util.ParseJWT(res.Token, svc.Cfg.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}
