// Package credentials holds the registered application's OAuth2 client
// credentials and keeps the secret out of log output.
package credentials

import (
	"errors"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

var MissingCredentialsErr = errors.New("client id and client secret are required")

// Credentials identifies the application registered with TickTick. The values
// are opaque and supplied by the caller; this package never derives them.
type Credentials struct {
	ClientID     string `env:"TICKTICK_CLIENT_ID"`
	ClientSecret string `env:"TICKTICK_CLIENT_SECRET"`
}

// FromEnv loads credentials from TICKTICK_CLIENT_ID and TICKTICK_CLIENT_SECRET.
func FromEnv() (Credentials, error) {
	var creds Credentials
	if err := env.Parse(&creds); err != nil {
		return Credentials{}, err
	}
	if err := creds.Validate(); err != nil {
		return Credentials{}, err
	}
	return creds, nil
}

// Validate checks that both values are present.
func (c Credentials) Validate() error {
	if strings.TrimSpace(c.ClientID) == "" || strings.TrimSpace(c.ClientSecret) == "" {
		return MissingCredentialsErr
	}
	return nil
}

var _ zerolog.LogObjectMarshaler = Credentials{}

// MarshalZerologObject logs the client id and redacts the secret.
func (c Credentials) MarshalZerologObject(e *zerolog.Event) {
	e.Str("client_id", c.ClientID)
	e.Str("client_secret", "[redacted]")
}
