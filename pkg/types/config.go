package types

import "time"

// RepositoryConfig selects and configures the content repository backend.
// UseFixture is read once at construction; the backend never changes for
// the lifetime of the process.
type RepositoryConfig struct {
	// UseFixture selects the in-memory fixture dataset instead of the
	// SQL store.
	UseFixture bool `json:"use_fixture" yaml:"use_fixture"`

	// DatabasePath is the SQLite database path for the SQL store.
	// Ignored when UseFixture is true.
	DatabasePath string `json:"database_path" yaml:"database_path"`
}

// ServerConfig holds settings for the HTTP API server.
type ServerConfig struct {
	// Addr is the listen address (e.g. ":8080").
	Addr string `json:"addr" yaml:"addr"`

	// ReadTimeout bounds how long reading a request may take.
	ReadTimeout time.Duration `json:"read_timeout" yaml:"read_timeout"`

	// WriteTimeout bounds how long writing a response may take.
	WriteTimeout time.Duration `json:"write_timeout" yaml:"write_timeout"`
}
