package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	st, err := NewFileStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = st.Load(ctx, KeyProducts)
	assert.ErrorIs(t, err, ErrNotFound)

	doc := []byte(`[{"id":"p1"}]`)
	require.NoError(t, st.Save(ctx, KeyProducts, doc))

	got, err := st.Load(ctx, KeyProducts)
	require.NoError(t, err)
	assert.Equal(t, doc, got)

	// Save mengganti seluruh dokumen.
	next := []byte(`[]`)
	require.NoError(t, st.Save(ctx, KeyProducts, next))
	got, err = st.Load(ctx, KeyProducts)
	require.NoError(t, err)
	assert.Equal(t, next, got)
}

func TestFileStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	st, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, st.Save(context.Background(), KeyTransactions, []byte(`[]`)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, KeyTransactions+".json", entries[0].Name())
}

func TestFileStoreKeysAreIndependent(t *testing.T) {
	dir := t.TempDir()
	st, err := NewFileStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, st.Save(ctx, KeyProducts, []byte(`["a"]`)))
	require.NoError(t, st.Save(ctx, KeyTransactions, []byte(`["b"]`)))

	products, err := st.Load(ctx, KeyProducts)
	require.NoError(t, err)
	transactions, err := st.Load(ctx, KeyTransactions)
	require.NoError(t, err)
	assert.NotEqual(t, products, transactions)

	assert.FileExists(t, filepath.Join(dir, "products.json"))
	assert.FileExists(t, filepath.Join(dir, "transactions.json"))
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	doc := []byte(`[1,2,3]`)
	require.NoError(t, st.Save(ctx, KeyProducts, doc))
	doc[0] = 'X' // mutasi setelah Save tidak boleh bocor ke store

	got, err := st.Load(ctx, KeyProducts)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[1,2,3]`), got)

	got[0] = 'Y' // mutasi hasil Load juga tidak boleh bocor
	again, err := st.Load(ctx, KeyProducts)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[1,2,3]`), again)
}

func TestMemoryStoreNotFound(t *testing.T) {
	st := NewMemoryStore()
	_, err := st.Load(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}
