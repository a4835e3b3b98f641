package storage

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	log := slog.New(slog.NewTextHandler(os.Stdout, nil))
	// A unique in-memory base URL per test keeps cases independent.
	return NewStore(fmt.Sprintf("mem://localhost/%s", t.Name()), nil, log)
}

func TestStore_PutGetDelete(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	store := testStore(t)

	key := "splitted-pages/contract_1/page_1.pdf"
	req.NoError(store.Put(ctx, key, []byte("%PDF-1.4 page one"), "application/pdf"))

	data, err := store.Get(ctx, key)
	req.NoError(err)
	req.Equal([]byte("%PDF-1.4 page one"), data)

	req.NoError(store.Delete(ctx, key))
	_, err = store.Get(ctx, key)
	req.Error(err)
}

func TestStore_DeleteAll(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	store := testStore(t)

	keys := []string{
		"splitted-pages/a_1/page_1.pdf",
		"splitted-pages/a_1/page_2.pdf",
		"splitted-pages/b_2/page_1.pdf",
		"uploaded-images/photo_3.png",
	}
	for _, key := range keys {
		req.NoError(store.Put(ctx, key, []byte(key), "application/octet-stream"))
	}

	req.NoError(store.DeleteAll(ctx, "splitted-pages"))
	for _, key := range keys[:3] {
		_, err := store.Get(ctx, key)
		req.Error(err, key)
	}
	// Artifacts outside the prefix survive.
	data, err := store.Get(ctx, "uploaded-images/photo_3.png")
	req.NoError(err)
	req.NotEmpty(data)

	// Clearing an already-empty prefix is a no-op, not an error.
	req.NoError(store.DeleteAll(ctx, "splitted-pages"))
	req.NoError(store.DeleteAll(ctx, "never-existed"))
}

func TestStore_PresignUnsupportedWithoutPresigner(t *testing.T) {
	req := require.New(t)

	_, err := testStore(t).PresignPut(context.Background(), "some/key.pdf", "application/pdf", 0)
	req.Error(err)
}
