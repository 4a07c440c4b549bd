package catalog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hikari-no-yume/dream-sparer/pkg/riff"
)

func openTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "catalog"))
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestCatalog_PutGet(t *testing.T) {
	c := openTestCatalog(t)

	payload := []byte{1, 2, 3, 4, 5, 6}
	chunk := riff.Chunk{
		Tag:     riff.FourCC{'s', 'n', 'd', 'S'},
		Index:   4,
		Offset:  220,
		Length:  uint32(len(payload)),
		Payload: payload,
		Depth:   2,
	}

	id, err := c.Put(chunk)
	require.NoError(t, err)

	got, err := c.Payload(id)
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	entry, err := c.Entry(id)
	require.NoError(t, err)
	assert.Equal(t, "sndS", entry.Tag)
	assert.Equal(t, uint32(4), entry.Index)
	assert.Equal(t, 220, entry.Offset)
	assert.Equal(t, uint32(len(payload)), entry.Length)
	assert.Equal(t, 2, entry.Depth)
}

func TestCatalog_DistinctIDs(t *testing.T) {
	c := openTestCatalog(t)

	chunk := riff.Chunk{Tag: riff.FourCC{'B', 'I', 'T', 'D'}, Payload: []byte{9}}
	a, err := c.Put(chunk)
	require.NoError(t, err)
	b, err := c.Put(chunk)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestCatalog_Delete(t *testing.T) {
	c := openTestCatalog(t)

	id, err := c.Put(riff.Chunk{Tag: riff.FourCC{'s', 'n', 'd', 'S'}, Payload: []byte{1}})
	require.NoError(t, err)
	require.NoError(t, c.Delete(id))

	_, err = c.Payload(id)
	assert.Error(t, err)
	_, err = c.Entry(id)
	assert.Error(t, err)
}
