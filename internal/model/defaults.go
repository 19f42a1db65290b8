package model

import "time"

// Shared defaults used by both the TUI and the demo server.
const (
	DefaultPageSize       = 10
	DefaultRequestTimeout = 15 * time.Second
	DefaultBaseURL        = "http://localhost:8600"
	ConfigDirName         = "kelola"
)
