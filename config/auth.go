package config

import (
	"fmt"
	"strings"
)

// AuthMode represents the identity verification mode for the admission gate.
type AuthMode string

const (
	// AuthModeOAuth verifies bearer credentials against an OIDC provider.
	AuthModeOAuth AuthMode = "oauth"
	// AuthModeDev accepts a single static token (for development only).
	AuthModeDev AuthMode = "dev"
)

// UnmarshalText implements encoding.TextUnmarshaler for AuthMode.
func (a *AuthMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "oauth", "dev":
		*a = AuthMode(v)
		return nil
	default:
		return fmt.Errorf("invalid AuthMode: %q (valid options: oauth, dev)", v)
	}
}

// OAuthConfig contains OIDC verification configuration.
type OAuthConfig struct {
	ClientID     string `env:"CLIENT_ID"`
	DiscoveryURL string `env:"DISCOVERY_URL"`
}

// DevAuthConfig controls dev-mode identity.
// Used when AUTH_MODE=dev for development and testing.
type DevAuthConfig struct {
	Token   string `env:"TOKEN"`
	Subject string `env:"SUBJECT" envDefault:"dev-operator"`
	Email   string `env:"EMAIL"   envDefault:"dev@example.com"`
	Name    string `env:"NAME"    envDefault:"Dev Operator"`
}

// AuthConfig groups admission gate configuration.
type AuthConfig struct {
	// Mode determines which identity resolver to use.
	Mode AuthMode `env:"AUTH_MODE" envDefault:"oauth"`

	// OAuth configuration (used when Mode=oauth).
	OAuth OAuthConfig `envPrefix:"OAUTH_"`

	// DevAuth configuration (used when Mode=dev).
	DevAuth DevAuthConfig `envPrefix:"DEV_AUTH_"`

	// Allowlist names the operators permitted to start pipeline runs.
	// Entries are exact email addresses or "@domain" for a whole domain.
	Allowlist []string `env:"ADMISSION_ALLOWLIST,required" envSeparator:";"`
}
