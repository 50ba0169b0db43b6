package config

// ClientConfig is the subset of [StructuredConfig] the terminal client needs.
// The client keeps its presets in a local database and talks to the breach
// range endpoint directly.
type ClientConfig struct {
	App       App
	Storage   Storage
	Breach    Breach
	Generator Generator
}

// GetClientConfig loads the configuration the same way as
// [GetStructuredConfig] and projects the client view of it.
func GetClientConfig() (*ClientConfig, error) {
	b := newConfigBuilder().withEnv().withFlags().withFile().withDefaults()
	if b.err != nil {
		return nil, b.err
	}

	structured, err := newConfigBuilder().merge(b.configs)
	if err != nil {
		return nil, err
	}

	cfg := structured.client()
	return cfg, cfg.validate()
}

func (cfg *StructuredConfig) client() *ClientConfig {
	return &ClientConfig{
		App:       cfg.App,
		Storage:   cfg.Storage,
		Breach:    cfg.Breach,
		Generator: cfg.Generator,
	}
}
