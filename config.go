package pagebuilder

// Config carries the top level module configuration. Zero values fall back
// to in-memory storage, a JSON logger, and relative URLs.
type Config struct {
	Logging  LoggingConfig
	Routes   RoutesConfig
	Storage  StorageConfig
	Features Features
}

// LoggingConfig controls the go-logger provider backing the module.
type LoggingConfig struct {
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// RoutesConfig sets the base URLs used when resolving admin and public page
// links.
type RoutesConfig struct {
	AdminBaseURL  string
	PublicBaseURL string
}

// StorageConfig tunes the media object store.
type StorageConfig struct {
	// Folder is the object-store prefix for uploads. Empty uses the media
	// package default.
	Folder string
}

// Features toggles optional module surfaces.
type Features struct {
	MediaLibrary   bool
	MarkdownImport bool
}

// DefaultConfig returns a configuration suitable for local development.
func DefaultConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Routes: RoutesConfig{
			AdminBaseURL:  "http://localhost:8080",
			PublicBaseURL: "http://localhost:8080",
		},
		Features: Features{
			MediaLibrary:   true,
			MarkdownImport: true,
		},
	}
}
