package finalizerkit

// ConfigSnapshot holds a copy of mutatorConfig fields for test assertions.
// Exported only via export_test.go so that the _test package can verify
// option closures actually mutate the config without accessing internals.
type ConfigSnapshot struct {
	LoggerSet   bool
	RecorderSet bool
	BatchLimit  int
}

// ApplyOptionsForTesting creates a default mutatorConfig, applies the given
// options, and returns a ConfigSnapshot of the result. This tests the option
// closures directly without constructing a Mutator.
func ApplyOptionsForTesting(opts ...MutatorOption) ConfigSnapshot {
	cfg := defaultMutatorConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return ConfigSnapshot{
		LoggerSet:   cfg.logger != nil,
		RecorderSet: cfg.recorder != nil,
		BatchLimit:  cfg.batchLimit,
	}
}
