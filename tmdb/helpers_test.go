package tmdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "secret"

func loadFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return data
}

// recordedRequest is what the fixture server saw.
type recordedRequest struct {
	mu     sync.Mutex
	path   string
	query  url.Values
	header http.Header
	count  int
}

func (r *recordedRequest) Path() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.path
}

func (r *recordedRequest) Query() url.Values {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.query
}

func (r *recordedRequest) Header() http.Header {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.header
}

func (r *recordedRequest) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// newFixtureServer answers every request with status and the named fixture.
func newFixtureServer(t *testing.T, status int, fixture string) (*httptest.Server, *recordedRequest) {
	t.Helper()

	var body []byte
	if fixture != "" {
		body = loadFixture(t, fixture)
	}

	rec := &recordedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.mu.Lock()
		rec.path = r.URL.Path
		rec.query = r.URL.Query()
		rec.header = r.Header.Clone()
		rec.count++
		rec.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write(body)
	}))
	t.Cleanup(server.Close)

	return server, rec
}

func newTestClient(t *testing.T, baseURL string, opts ...Option) *Client {
	t.Helper()
	client, err := NewClient(testAPIKey, append([]Option{WithBaseURL(baseURL)}, opts...)...)
	require.NoError(t, err)
	return client
}

// endpointCase drives a command against a fixture and checks the request it
// produced.
type endpointCase struct {
	name      string
	fixture   string
	wantPath  string
	wantQuery map[string]string
	run       func(ctx context.Context, c *Client) (any, error)
	check     func(t *testing.T, got any)
}

func runEndpointCases(t *testing.T, tests []endpointCase) {
	t.Helper()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, rec := newFixtureServer(t, http.StatusOK, tt.fixture)
			client := newTestClient(t, server.URL)

			got, err := tt.run(context.Background(), client)
			require.NoError(t, err)

			assert.Equal(t, tt.wantPath, rec.Path())

			query := rec.Query()
			assert.Equal(t, testAPIKey, query.Get("api_key"))
			query.Del("api_key")

			want := url.Values{}
			for k, v := range tt.wantQuery {
				want.Set(k, v)
			}
			assert.Equal(t, want, query)

			if tt.check != nil {
				tt.check(t, got)
			}
		})
	}
}
