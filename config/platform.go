package config

// PlatformConfig contains commerce platform Admin API configuration.
type PlatformConfig struct {
	// BaseURL is the Admin API root, e.g. "https://shop.example.com/admin/api/2024-10".
	BaseURL string `env:"BASE_URL,required"`

	// AccessToken authenticates Admin API calls.
	AccessToken string `env:"ACCESS_TOKEN,required"`

	// CopyNamespace and CopyKey locate the cached-copy field on an item.
	CopyNamespace string `env:"COPY_NAMESPACE" envDefault:"branding"`
	CopyKey       string `env:"COPY_KEY"       envDefault:"generated_copy"`
}
