package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageUploadAndDelete(t *testing.T) {
	ctx := context.Background()
	base := t.TempDir()
	store, err := NewLocalStorage(LocalStorageConfig{BasePath: base, BaseURL: "http://localhost:3000/files/"})
	require.NoError(t, err)

	url, err := store.UploadFile(ctx, strings.NewReader("png-bytes"), 9, "photos/u1/a.png", "image/png")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000/files/photos/u1/a.png", url)

	data, err := os.ReadFile(filepath.Join(base, "photos", "u1", "a.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	require.NoError(t, store.DeleteFile(ctx, "photos/u1/a.png"))
	require.NoError(t, store.DeleteFile(ctx, "photos/u1/a.png"))
	assert.Equal(t, "local", store.GetProviderName())
}

func TestLocalStorageRejectsEscapes(t *testing.T) {
	store, err := NewLocalStorage(LocalStorageConfig{BasePath: t.TempDir(), BaseURL: "http://x"})
	require.NoError(t, err)

	_, err = store.UploadFile(context.Background(), strings.NewReader("x"), 1, "../../etc/passwd", "text/plain")
	assert.ErrorIs(t, err, ErrUnsafePath)
}
