package api

import (
	"encoding/binary"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hikari-no-yume/dream-sparer/pkg/riff"
	"github.com/hikari-no-yume/dream-sparer/pkg/sndh"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	sendSuccess(w, map[string]string{"status": "healthy"})
}

func (s *Server) handleMovie(w http.ResponseWriter, r *http.Request) {
	order := "big-endian"
	if s.file.ByteOrder() == binary.LittleEndian {
		order = "little-endian"
	}
	sendSuccess(w, MovieInfo{
		Path:         s.path,
		ByteOrder:    order,
		ReversedTags: s.file.Reversed(),
		Kind:         s.file.DisplayTag(s.file.Kind()),
		DeclaredSize: s.file.DeclaredSize(),
		FileSize:     s.file.Len(),
	})
}

// walk collects the whole tree, recording traversal metrics.
func (s *Server) walk() ([]riff.Chunk, error) {
	start := time.Now()
	chunks, err := s.file.Chunks()
	s.metrics.RecordWalk(len(chunks), err, time.Since(start))
	return chunks, err
}

func (s *Server) chunkInfo(c riff.Chunk) ChunkInfo {
	return ChunkInfo{
		Index:  c.Index,
		Tag:    string(c.Tag[:]),
		Name:   s.file.DisplayTag(c.Tag),
		Offset: c.Offset,
		Length: c.Length,
		Depth:  c.Depth,
	}
}

func (s *Server) handleChunks(w http.ResponseWriter, r *http.Request) {
	chunks, err := s.walk()
	if err != nil {
		sendError(w, fmt.Sprintf("Walk failed: %v", err), http.StatusUnprocessableEntity)
		return
	}

	infos := make([]ChunkInfo, 0, len(chunks))
	for _, c := range chunks {
		infos = append(infos, s.chunkInfo(c))
	}
	sendSuccess(w, infos)
}

// findChunk walks until the requested index. A stop this early is exactly
// what the lazy walker is for.
func (s *Server) findChunk(r *http.Request) (riff.Chunk, bool, error) {
	index, err := strconv.ParseUint(chi.URLParam(r, "index"), 10, 32)
	if err != nil {
		return riff.Chunk{}, false, fmt.Errorf("invalid chunk index")
	}

	start := time.Now()
	w := s.file.Walk()
	var n int
	for w.Next() {
		n++
		if w.Chunk().Index == uint32(index) {
			s.metrics.RecordWalk(n, nil, time.Since(start))
			return w.Chunk(), true, nil
		}
	}
	s.metrics.RecordWalk(n, w.Err(), time.Since(start))
	if err := w.Err(); err != nil {
		return riff.Chunk{}, false, fmt.Errorf("walk failed: %v", err)
	}
	return riff.Chunk{}, false, nil
}

func (s *Server) handleChunk(w http.ResponseWriter, r *http.Request) {
	c, found, err := s.findChunk(r)
	if err != nil {
		sendError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	if !found {
		sendError(w, "Chunk not found", http.StatusNotFound)
		return
	}
	sendSuccess(w, s.chunkInfo(c))
}

func (s *Server) handlePayload(w http.ResponseWriter, r *http.Request) {
	c, found, err := s.findChunk(r)
	if err != nil {
		sendError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	if !found {
		sendError(w, "Chunk not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Length", strconv.Itoa(len(c.Payload)))
	w.WriteHeader(http.StatusOK)
	n, _ := w.Write(c.Payload)
	s.metrics.RecordPayloadServed(n)
}

func (s *Server) handleSoundHeader(w http.ResponseWriter, r *http.Request) {
	c, found, err := s.findChunk(r)
	if err != nil {
		sendError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	if !found {
		sendError(w, "Chunk not found", http.StatusNotFound)
		return
	}
	if !s.file.Matches(c.Tag, riff.TagSndH) {
		sendError(w, fmt.Sprintf("Chunk %d is %s, not a sound header", c.Index, s.file.DisplayTag(c.Tag)), http.StatusBadRequest)
		return
	}

	h, err := sndh.Decode(c.Payload)
	if err != nil {
		sendError(w, fmt.Sprintf("Failed to decode sound header: %v", err), http.StatusUnprocessableEntity)
		return
	}

	args, argsErr := h.FFmpegArgs()
	data := map[string]interface{}{
		"frames_per_second": h.FramesPerSecond,
		"frame_count":       h.FrameCount,
		"bit_depth":         h.BitDepth,
		"channel_count":     h.ChannelCount,
		"bytes_per_frame":   h.BytesPerFrame,
		"warnings":          h.Check(),
	}
	if argsErr == nil {
		data["ffmpeg_args"] = args
	}
	sendSuccess(w, data)
}
