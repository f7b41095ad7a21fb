package service

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"finlit_backend/internal/repository"
	"finlit_backend/internal/testutil"
	"finlit_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfilePictureLocal(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	cfg := testutil.Config(t)
	user := testutil.SeedUser(t, ctx, db, "a@example.com", "alice")
	svc := NewUserService(repository.NewUserRepository(db), NewStorageService(ctx, cfg))

	content := []byte("\x89PNG fake image")
	url, err := svc.UpdateProfilePicture(ctx, user.ID, Avatar{
		Filename:    "me.PNG",
		ContentType: "image/png",
		Size:        int64(len(content)),
		Reader:      bytes.NewReader(content),
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/avatars/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	stored, err := os.ReadFile(filepath.Join(cfg.Storage.LocalPath, strings.TrimPrefix(url, "/uploads/")))
	require.NoError(t, err)
	assert.Equal(t, content, stored)

	got, err := svc.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, url, got.ProfilePic)
}

func TestUpdateProfilePictureRejectsInput(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	cfg := testutil.Config(t)
	user := testutil.SeedUser(t, ctx, db, "a@example.com", "alice")
	svc := NewUserService(repository.NewUserRepository(db), NewStorageService(ctx, cfg))

	_, err := svc.UpdateProfilePicture(ctx, user.ID, Avatar{
		Filename: "notes.txt", ContentType: "text/plain", Size: 3, Reader: strings.NewReader("abc"),
	})
	assert.ErrorIs(t, err, util.ErrInvalidParam)

	_, err = svc.UpdateProfilePicture(ctx, user.ID, Avatar{
		Filename: "big.png", ContentType: "image/png", Size: util.MaxAvatarSize + 1, Reader: strings.NewReader("abc"),
	})
	assert.ErrorIs(t, err, util.ErrInvalidParam)

	_, err = svc.UpdateProfilePicture(ctx, 999, Avatar{
		Filename: "a.png", ContentType: "image/png", Size: 3, Reader: strings.NewReader("abc"),
	})
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestLocalStorageRejectsEscapingKeys(t *testing.T) {
	p := &LocalStorageProvider{Config: &testutil.Config(t).Storage}

	_, err := p.Upload(context.Background(), "../outside.png", strings.NewReader("x"), 1, "image/png")
	assert.ErrorIs(t, err, util.ErrInvalidParam)
}
