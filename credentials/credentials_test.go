package credentials_test

import (
	"bytes"
	"testing"

	"github.com/jrsteele09/go-ticktick/credentials"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestFromEnv(t *testing.T) {
	t.Setenv("TICKTICK_CLIENT_ID", "abc123")
	t.Setenv("TICKTICK_CLIENT_SECRET", "shh")

	creds, err := credentials.FromEnv()
	require.NoError(t, err)
	require.Equal(t, "abc123", creds.ClientID)
	require.Equal(t, "shh", creds.ClientSecret)
}

func TestFromEnvMissingValues(t *testing.T) {
	t.Setenv("TICKTICK_CLIENT_ID", "abc123")
	t.Setenv("TICKTICK_CLIENT_SECRET", "")

	_, err := credentials.FromEnv()
	require.ErrorIs(t, err, credentials.MissingCredentialsErr)
}

func TestValidate(t *testing.T) {
	require.NoError(t, credentials.Credentials{ClientID: "id", ClientSecret: "secret"}.Validate())
	require.Error(t, credentials.Credentials{ClientID: "id"}.Validate())
	require.Error(t, credentials.Credentials{ClientSecret: "secret"}.Validate())
	require.Error(t, credentials.Credentials{ClientID: " ", ClientSecret: "secret"}.Validate())
}

func TestSecretNeverLogged(t *testing.T) {
	creds := credentials.Credentials{ClientID: "abc123", ClientSecret: "super-secret-value"}

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	logger.Info().Object("credentials", creds).Msg("configured")

	require.Contains(t, buf.String(), "abc123")
	require.NotContains(t, buf.String(), "super-secret-value")
	require.Contains(t, buf.String(), "[redacted]")
}
