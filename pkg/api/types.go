package api

// ServerConfig holds the inspection server's settings.
type ServerConfig struct {
	Bind   string
	Port   int
	APIKey string // empty disables authentication
}

// APIResponse is the envelope for every JSON response.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// MovieInfo describes the opened file.
type MovieInfo struct {
	Path         string `json:"path"`
	ByteOrder    string `json:"byte_order"`
	ReversedTags bool   `json:"reversed_tags"`
	Kind         string `json:"kind"`
	DeclaredSize uint32 `json:"declared_size"`
	FileSize     int    `json:"file_size"`
}

// ChunkInfo describes one chunk without its payload.
type ChunkInfo struct {
	Index  uint32 `json:"index"`
	Tag    string `json:"tag"`  // bytes as stored
	Name   string `json:"name"` // conceptual spelling, reversed back for XFIR files
	Offset int    `json:"offset"`
	Length uint32 `json:"length"`
	Depth  int    `json:"depth"`
}
