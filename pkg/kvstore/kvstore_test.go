package kvstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SaveAndLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "feedshop.db")

	s, err := Open(path)
	require.NoError(t, err)

	// Fresh file holds nothing.
	raw, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, raw)

	doc := []byte(`{"products":[]}`)
	require.NoError(t, s.Save(doc))

	raw, err = s.Load()
	require.NoError(t, err)
	assert.Equal(t, doc, raw)
	require.NoError(t, s.Close())

	// The document survives a reopen.
	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	raw, err = s2.Load()
	require.NoError(t, err)
	assert.Equal(t, doc, raw)
}

func TestStore_SaveOverwrites(t *testing.T) {
	t.Parallel()

	s, err := Open(filepath.Join(t.TempDir(), "feedshop.db"))
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Save([]byte("first")))
	require.NoError(t, s.Save([]byte("second")))

	raw, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), raw)
}
