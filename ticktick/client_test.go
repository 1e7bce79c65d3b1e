package ticktick_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jrsteele09/go-ticktick/oauthmodel"
	"github.com/jrsteele09/go-ticktick/ticktick"
	"github.com/stretchr/testify/require"
)

const testToken = "tok_1"

// testFixture serves canned Open API responses and records requests.
type testFixture struct {
	client  *ticktick.Client
	server  *httptest.Server
	mux     *http.ServeMux
	lastReq *http.Request
}

func setupTestFixture(t *testing.T) *testFixture {
	t.Helper()

	f := &testFixture{mux: http.NewServeMux()}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.lastReq = r
		f.mux.ServeHTTP(w, r)
	}))
	t.Cleanup(f.server.Close)

	client, err := ticktick.New(
		&oauthmodel.AccessToken{Token: testToken, TokenType: "bearer"},
		ticktick.WithBaseURL(f.server.URL),
	)
	require.NoError(t, err)
	f.client = client
	return f
}

func (f *testFixture) respond(pattern, body string) {
	f.mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	})
}

func TestNewRequiresToken(t *testing.T) {
	_, err := ticktick.New(nil)
	require.ErrorIs(t, err, ticktick.InvalidTokenErr)

	_, err = ticktick.New(&oauthmodel.AccessToken{})
	require.ErrorIs(t, err, ticktick.InvalidTokenErr)
}

func TestClientSendsBearerToken(t *testing.T) {
	f := setupTestFixture(t)
	f.respond("/project", `[]`)

	_, err := f.client.GetAllProjects(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer "+testToken, f.lastReq.Header.Get("Authorization"))
}

func TestClientReturnsAPIError(t *testing.T) {
	f := setupTestFixture(t)
	f.mux.HandleFunc("/project/missing", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "project not found", http.StatusNotFound)
	})

	_, err := f.client.GetProject(context.Background(), "missing")

	var apiErr *ticktick.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	require.Contains(t, apiErr.Body, "project not found")
}
