// Package catalog stores extracted chunk payloads in an embedded pebble
// database, as an alternative to loose dump files.
package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"

	"github.com/hikari-no-yume/dream-sparer/pkg/riff"
)

// Entry is the metadata kept alongside a stored payload.
type Entry struct {
	Tag    string `json:"tag"`
	Index  uint32 `json:"index"`
	Offset int    `json:"offset"`
	Length uint32 `json:"length"`
	Depth  int    `json:"depth"`
}

type Catalog struct {
	db *pebble.DB
}

func Open(path string) (*Catalog, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	return &Catalog{db: db}, nil
}

func payloadKey(id ksuid.KSUID) []byte {
	return append([]byte("payload/"), id.Bytes()...)
}

func entryKey(id ksuid.KSUID) []byte {
	return append([]byte("entry/"), id.Bytes()...)
}

// Put stores a chunk's payload and metadata and returns its catalog id.
func (c *Catalog) Put(chunk riff.Chunk) (ksuid.KSUID, error) {
	id := ksuid.New()

	meta, err := json.Marshal(Entry{
		Tag:    string(chunk.Tag[:]),
		Index:  chunk.Index,
		Offset: chunk.Offset,
		Length: chunk.Length,
		Depth:  chunk.Depth,
	})
	if err != nil {
		return ksuid.Nil, err
	}

	if err := c.db.Set(payloadKey(id), chunk.Payload, pebble.NoSync); err != nil {
		return ksuid.Nil, fmt.Errorf("failed to store payload: %w", err)
	}
	if err := c.db.Set(entryKey(id), meta, pebble.NoSync); err != nil {
		return ksuid.Nil, fmt.Errorf("failed to store entry: %w", err)
	}
	return id, nil
}

// Payload returns a copy of the stored payload bytes.
func (c *Catalog) Payload(id ksuid.KSUID) ([]byte, error) {
	data, closer, err := c.db.Get(payloadKey(id))
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Entry returns the metadata stored for id.
func (c *Catalog) Entry(id ksuid.KSUID) (*Entry, error) {
	data, closer, err := c.db.Get(entryKey(id))
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	var e Entry
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("failed to decode entry: %w", err)
	}
	return &e, nil
}

func (c *Catalog) Delete(id ksuid.KSUID) error {
	if err := c.db.Delete(payloadKey(id), pebble.NoSync); err != nil {
		return err
	}
	return c.db.Delete(entryKey(id), pebble.NoSync)
}

func (c *Catalog) Close() error {
	return c.db.Close()
}
