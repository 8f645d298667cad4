package config

// GenerationConfig contains copy generation configuration.
type GenerationConfig struct {
	// APIKey authenticates generation API calls.
	APIKey string `env:"API_KEY,required"`

	// Model selects the generation model. Empty uses the client default.
	Model string `env:"MODEL" envDefault:""`

	// BaseURL overrides the generation API root. Empty uses the client default.
	BaseURL string `env:"BASE_URL" envDefault:""`
}
