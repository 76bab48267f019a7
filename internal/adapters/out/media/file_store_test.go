package media_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"fastfood/internal/adapters/out/media"
	"fastfood/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*media.FileStore, string) {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "food_images"), 0o755))
	store, err := media.NewFileStore(root, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	return store, root
}

func TestNewFileStore_RequiresRoot(t *testing.T) {
	_, err := media.NewFileStore("  ", slog.New(slog.DiscardHandler))

	require.Error(t, err)
	assert.Equal(t, errs.KindInvalidInput, errs.KindOf(err))
}

func TestFileStore_Release_RemovesFiles(t *testing.T) {
	store, root := newStore(t)
	plov := filepath.Join(root, "food_images", "plov.jpg")
	kept := filepath.Join(root, "food_images", "somsa.jpg")
	require.NoError(t, os.WriteFile(plov, []byte("jpg"), 0o600))
	require.NoError(t, os.WriteFile(kept, []byte("jpg"), 0o600))

	err := store.Release(context.Background(), []string{"food_images/plov.jpg"})

	require.NoError(t, err)
	assert.NoFileExists(t, plov)
	assert.FileExists(t, kept)
}

func TestFileStore_Release_MissingFileIsNotAnError(t *testing.T) {
	store, _ := newStore(t)

	require.NoError(t, store.Release(context.Background(), []string{"food_images/gone.jpg"}))
	require.NoError(t, store.Release(context.Background(), nil))
}

func TestFileStore_Release_RejectsEscapingRefs(t *testing.T) {
	store, root := newStore(t)
	outside := filepath.Join(filepath.Dir(root), "secret.txt")
	local := filepath.Join(root, "food_images", "plov.jpg")
	require.NoError(t, os.WriteFile(local, []byte("jpg"), 0o600))

	err := store.Release(context.Background(), []string{"../secret.txt", "/etc/passwd", "food_images/plov.jpg"})

	require.Error(t, err)
	assert.Equal(t, errs.KindInvalidInput, errs.KindOf(err))
	assert.NoFileExists(t, local, "valid refs are still released")
	assert.NoFileExists(t, outside)
}

func TestFileStore_Release_CancelledContext(t *testing.T) {
	store, _ := newStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.Release(ctx, []string{"food_images/plov.jpg"})

	require.ErrorIs(t, err, context.Canceled)
}
