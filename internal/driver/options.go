package driver

import (
	"ferrite/internal/config"
)

// Options controls Tokenize, Parse and ParseDir.
type Options struct {
	// MaxDiagnostics caps each file's Bag.
	MaxDiagnostics int
	// Jobs limits ParseDir workers; 0 means GOMAXPROCS.
	Jobs int
	// Extensions selects files in ParseDir; empty means ".fe".
	Extensions []string
	// Cache, when set, stores and reuses token streams.
	Cache *TokenCache
	// Progress receives per-file events.
	Progress ProgressSink
}

// OptionsFromConfig maps ferrite.toml settings onto driver options.
// The token cache is opened by the caller.
func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		MaxDiagnostics: cfg.Diagnostics.Max,
		Jobs:           cfg.Parse.Jobs,
		Extensions:     cfg.Parse.Extensions,
	}
}

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return 100
	}
	return o.MaxDiagnostics
}

func (o Options) extensions() []string {
	if len(o.Extensions) == 0 {
		return []string{".fe"}
	}
	return o.Extensions
}
