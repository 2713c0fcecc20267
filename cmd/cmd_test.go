package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/tmdbctl/config"
	"github.com/s0up4200/tmdbctl/filter"
	"github.com/s0up4200/tmdbctl/tmdb"
)

var routes = map[string]string{
	"/movie/550":        "movie-details.json",
	"/movie/popular":    "movie-popular.json",
	"/genre/movie/list": "genre-movie-list.json",
	"/genre/tv/list":    "genre-tv-list.json",
	"/search/multi":     "multi-search.json",
	"/configuration":    "configuration.json",
}

// newTMDBServer serves the tmdb package fixtures by request path.
func newTMDBServer(t *testing.T) *httptest.Server {
	t.Helper()
	dir, err := filepath.Abs(filepath.Join("..", "tmdb", "testdata"))
	require.NoError(t, err)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name, ok := routes[r.URL.Path]
		status := http.StatusOK
		if !ok {
			name, status = "resource-not-found.json", http.StatusNotFound
		}
		body, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write(body)
	}))
	t.Cleanup(server.Close)
	return server
}

// run executes tmdbctl with args against server and returns stdout.
func run(t *testing.T, server *httptest.Server, args ...string) (string, error) {
	t.Helper()

	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	t.Setenv("TMDB_API_KEY", "test-key")
	t.Setenv("TMDB_BASE_URL", server.URL)
	t.Setenv("TMDB_RATE_LIMIT_ENABLED", "false")
	t.Setenv("TMDB_LOGGING_LEVEL", "error")

	cfgFile, apiKeyFlag, languageFlag, regionFlag, outputFlag = "", "", "", "", ""
	detailsFlag, includeAdult = false, false
	filterExpr, preset = "", ""
	pageFlag, maxPages, searchYear = 0, 1, 0

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCommands(t *testing.T) {
	server := newTMDBServer(t)

	tests := []struct {
		name     string
		args     []string
		contains []string
		excludes []string
		wantErr  string
	}{
		{
			name:     "movie details",
			args:     []string{"movie", "details", "550"},
			contains: []string{"Fight Club (1999)", "tt0137523", "139 min", "Released"},
		},
		{
			name: "popular filtered by shorthand",
			args: []string{"movie", "popular", "-f", "rating:>8"},
			contains: []string{
				"Popular movies (1):",
				"╰── Dune: Part Two (2024) [movie 693134]",
				"Rating: 8.3 (3108 votes)",
			},
			excludes: []string{"Godzilla"},
		},
		{
			name:     "popular filtered by genre name",
			args:     []string{"movie", "popular", "-f", `hasGenre("Action")`},
			contains: []string{"Godzilla x Kong: The New Empire (2024)", "Genres: Action, Adventure"},
			excludes: []string{"Dune"},
		},
		{
			name:     "popular unfiltered",
			args:     []string{"movie", "popular"},
			contains: []string{"Popular movies (2):", "├── Dune: Part Two", "╰── Godzilla"},
		},
		{
			name:     "filter matches nothing",
			args:     []string{"movie", "popular", "-f", "year:<1900"},
			contains: []string{"No popular movies found"},
		},
		{
			name:     "multi search narrowed to tv",
			args:     []string{"search", "fight", "club", "-f", "type:tv"},
			contains: []string{"Fight Club Stories [tv 86831]"},
			excludes: []string{"Fight Club Fan", "[movie 550]"},
		},
		{
			name:     "genres",
			args:     []string{"genres", "movie"},
			contains: []string{"Genres (movie):", "Adventure"},
		},
		{
			name:     "connection test",
			args:     []string{"test"},
			contains: []string{"Connection successful"},
		},
		{
			name:    "invalid id",
			args:    []string{"movie", "details", "abc"},
			wantErr: `invalid movie ID "abc"`,
		},
		{
			name:    "invalid media type",
			args:    []string{"genres", "person"},
			wantErr: "invalid media type",
		},
		{
			name:    "unknown identifier in filter",
			args:    []string{"movie", "popular", "-f", "Bogus > 1"},
			wantErr: "invalid filter",
		},
		{
			name:    "unknown preset",
			args:    []string{"movie", "popular", "-p", "nope"},
			wantErr: "invalid filter",
		},
		{
			name:    "not found",
			args:    []string{"movie", "details", "1"},
			wantErr: "404",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, server, tt.args...)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestJSONOutput(t *testing.T) {
	server := newTMDBServer(t)

	out, err := run(t, server, "movie", "details", "550", "-o", "json")
	require.NoError(t, err)

	var movie tmdb.Movie
	require.NoError(t, json.Unmarshal([]byte(out), &movie))
	assert.Equal(t, 550, movie.ID)
	assert.Equal(t, "Fight Club", movie.Title)

	out, err = run(t, server, "movie", "popular", "-o", "json", "-f", "rating:>8")
	require.NoError(t, err)

	var items []filter.Item
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	require.Len(t, items, 1)
	assert.Equal(t, 693134, items[0].ID)
	assert.Equal(t, []string{"Adventure"}, items[0].Genres)
}

func TestVersionNeedsNoConfig(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	t.Setenv("TMDB_API_KEY", "")
	os.Unsetenv("TMDB_API_KEY")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "tmdbctl dev")
	assert.Contains(t, out.String(), "Built: unknown")
}

func TestParseID(t *testing.T) {
	tests := []struct {
		arg     string
		want    int
		wantErr bool
	}{
		{arg: "550", want: 550},
		{arg: "0", wantErr: true},
		{arg: "-3", wantErr: true},
		{arg: "550abc", wantErr: true},
		{arg: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := parseID(tt.arg, "movie")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	n, err := parseNumber("0", "season")
	require.NoError(t, err, "season 0 holds specials")
	assert.Equal(t, 0, n)
	_, err = parseNumber("-1", "season")
	assert.Error(t, err)
}

func TestMediaTypeArg(t *testing.T) {
	mt, err := mediaTypeArg("TV", tmdb.MediaTypeMovie, tmdb.MediaTypeTV)
	require.NoError(t, err)
	assert.Equal(t, tmdb.MediaTypeTV, mt)

	_, err = mediaTypeArg("person", tmdb.MediaTypeMovie, tmdb.MediaTypeTV)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "movie, tv")
}

func TestPrinterItems(t *testing.T) {
	items := []filter.Item{
		{
			MediaType:   tmdb.MediaTypeMovie,
			ID:          1,
			Title:       "First",
			Year:        2001,
			ReleaseDate: time.Date(2001, 5, 4, 0, 0, 0, 0, time.UTC),
			Genres:      []string{"Drama"},
			VoteAverage: 7.25,
			VoteCount:   10,
			Overview:    "An overview",
		},
		{MediaType: tmdb.MediaTypePerson, ID: 2, Title: "Somebody", Department: "Acting"},
	}

	var buf bytes.Buffer
	p := &printer{w: &buf, details: true}
	require.NoError(t, p.Items("Results", items, 40))

	out := buf.String()
	assert.Contains(t, out, "Results (2):")
	assert.Contains(t, out, "├── First (2001) [movie 1]")
	assert.Contains(t, out, "│   Rating: 7.2 (10 votes) | Genres: Drama")
	assert.Contains(t, out, "│   Released: 2001-05-04")
	assert.Contains(t, out, "│   An overview")
	assert.Contains(t, out, "╰── Somebody [person 2]")
	assert.Contains(t, out, "    Known for: Acting")
	assert.Contains(t, out, "Showing 2 of 40 results")

	buf.Reset()
	require.NoError(t, p.Items("Results", nil, 0))
	assert.Equal(t, "No results found\n", buf.String())
}

func TestPrinterFieldsSkipEmpty(t *testing.T) {
	var buf bytes.Buffer
	p := &printer{w: &buf}
	require.NoError(t, p.fields("Title", [][2]string{{"ID", "1"}, {"Empty", ""}, {"Longer key", "v"}}))

	out := buf.String()
	assert.Contains(t, out, "Title\n")
	assert.Contains(t, out, "  ID:          1\n")
	assert.Contains(t, out, "  Longer key:  v\n")
	assert.NotContains(t, out, "Empty")
}

func TestWatchProvidersRegion(t *testing.T) {
	res := &tmdb.WatchProviderResult{
		ID: 550,
		Results: map[string]tmdb.LocatedWatchProvider{
			"US": {Flatrate: []tmdb.WatchProvider{{ProviderName: "Hulu"}}},
			"DE": {Buy: []tmdb.WatchProvider{{ProviderName: "Apple TV"}}},
		},
	}

	var buf bytes.Buffer
	p := &printer{w: &buf}
	require.NoError(t, p.WatchProviders(res, "US"))
	assert.Contains(t, buf.String(), "US")
	assert.Contains(t, buf.String(), "Stream: Hulu")
	assert.NotContains(t, buf.String(), "Apple TV")

	buf.Reset()
	require.NoError(t, p.WatchProviders(res, "FR"))
	assert.Equal(t, "No watch providers listed for FR\n", buf.String())
}

func TestNewClientMetrics(t *testing.T) {
	server := newTMDBServer(t)
	cfg := &config.Config{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Timeout: time.Second,
		Metrics: config.MetricsConfig{Enabled: true},
	}

	c, err := newClient(cfg, zerolog.Nop())
	require.NoError(t, err)
	require.NotNil(t, registry)
	require.NotNil(t, metrics)

	require.NoError(t, c.TestConnection(context.Background()))

	families, err := registry.Gather()
	require.NoError(t, err)
	var names []string
	for _, mf := range families {
		names = append(names, mf.GetName())
	}
	assert.Contains(t, names, "tmdb_client_requests_total")

	cfg.Metrics.Enabled = false
	_, err = newClient(cfg, zerolog.Nop())
	require.NoError(t, err)
	assert.Nil(t, registry)
}

func TestFixtureCommandsCoverTestdata(t *testing.T) {
	entries, err := os.ReadDir(filepath.Join("..", "tmdb", "testdata"))
	require.NoError(t, err)

	// error bodies are hand written rather than recorded
	handWritten := map[string]bool{
		"resource-not-found.json": true,
		"invalid-api-key.json":    true,
		"validation-error.json":   true,
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != ".json" || handWritten[name] {
			continue
		}
		t.Run(name, func(t *testing.T) {
			assert.Contains(t, fixtureCommands, name)
		})
	}

	for _, name := range []string{"movie-latest.json", "movie-changes.json"} {
		assert.Contains(t, fixtureCommands, name)
	}
}
