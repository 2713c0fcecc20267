package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/tmdbctl/tmdb"
)

var (
	fixturesDir  string
	fixturesOnly []string
)

// fixtureCommands maps each test fixture file to the request that produces it.
var fixtureCommands = map[string]tmdb.Command{
	"movie-details.json":             tmdb.MovieDetails{MovieID: 550},
	"movie-alternative-titles.json":  tmdb.MovieAlternativeTitles{MovieID: 550},
	"movie-credits.json":             tmdb.MovieCredits{MovieID: 550},
	"movie-external-ids.json":        tmdb.MovieExternalIDs{MovieID: 550},
	"movie-images.json":              tmdb.MovieImages{MovieID: 550},
	"movie-keywords.json":            tmdb.MovieKeywords{MovieID: 550},
	"movie-lists.json":               tmdb.MovieLists{MovieID: 550},
	"movie-release-dates.json":       tmdb.MovieReleaseDates{MovieID: 550},
	"movie-reviews.json":             tmdb.MovieReviews{MovieID: 550},
	"movie-translations.json":        tmdb.MovieTranslations{MovieID: 550},
	"movie-videos.json":              tmdb.MovieVideos{MovieID: 550},
	"movie-watch-providers.json":     tmdb.MovieWatchProviders{MovieID: 550},
	"movie-changes.json":             tmdb.MovieChanges{MovieID: 550},
	"movie-latest.json":              tmdb.MovieLatest{},
	"movie-popular.json":             tmdb.MoviePopular{},
	"movie-now-playing.json":         tmdb.MovieNowPlaying{},
	"movie-search.json":              tmdb.MovieSearch{Query: "alien"},
	"tv-details.json":                tmdb.TVDetails{TVID: 1396},
	"tv-aggregate-credits.json":      tmdb.TVAggregateCredits{TVID: 1396},
	"tv-content-ratings.json":        tmdb.TVContentRatings{TVID: 1396},
	"tv-external-ids.json":           tmdb.TVExternalIDs{TVID: 1396},
	"tv-images.json":                 tmdb.TVImages{TVID: 1396},
	"tv-keywords.json":               tmdb.TVKeywords{TVID: 1396},
	"tv-similar.json":                tmdb.TVSimilar{TVID: 1396},
	"tv-watch-providers.json":        tmdb.TVWatchProviders{TVID: 1396},
	"tv-season-details.json":         tmdb.TVSeasonDetails{TVID: 1396, SeasonNumber: 1},
	"tv-episode-details.json":        tmdb.TVEpisodeDetails{TVID: 1396, SeasonNumber: 1, EpisodeNumber: 1},
	"tv-search.json":                 tmdb.TVSearch{Query: "breaking bad"},
	"person-details.json":            tmdb.PersonDetails{PersonID: 287},
	"person-search.json":             tmdb.PersonSearch{Query: "brad pitt"},
	"company-details.json":           tmdb.CompanyDetails{CompanyID: 1},
	"company-alternative-names.json": tmdb.CompanyAlternativeNames{CompanyID: 1},
	"company-images.json":            tmdb.CompanyImages{CompanyID: 1},
	"collection-details.json":        tmdb.CollectionDetails{CollectionID: 10},
	"certification-movie-list.json":  tmdb.CertificationList{MediaType: tmdb.MediaTypeMovie},
	"genre-movie-list.json":          tmdb.GenreList{MediaType: tmdb.MediaTypeMovie},
	"genre-tv-list.json":             tmdb.GenreList{MediaType: tmdb.MediaTypeTV},
	"changes-movie-list.json":        tmdb.ChangeList{MediaType: tmdb.MediaTypeMovie},
	"watch-provider-movie-list.json": tmdb.WatchProviderList{MediaType: tmdb.MediaTypeMovie},
	"configuration.json":             tmdb.Configuration{},
	"configuration-countries.json":   tmdb.Countries{},
	"configuration-jobs.json":        tmdb.Jobs{},
	"configuration-languages.json":   tmdb.Languages{},
	"find-imdb.json":                 tmdb.FindByID{ExternalID: "tt0137523", ExternalSource: tmdb.ExternalSourceIMDb},
	"multi-search.json":              tmdb.MultiSearch{Query: "fight club"},
}

var fixturesCmd = &cobra.Command{
	Use:    "fixtures",
	Short:  "Maintain the recorded API responses used by tests",
	Hidden: true,
}

var fixturesRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Re-record test fixtures from the live API",
	Args:  cobra.NoArgs,
	RunE:  runFixturesRefresh,
}

func init() {
	fixturesRefreshCmd.Flags().StringVar(&fixturesDir, "dir", filepath.Join("tmdb", "testdata"), "directory to write fixtures to")
	fixturesRefreshCmd.Flags().StringSliceVar(&fixturesOnly, "only", nil, "only refresh these fixture files")

	fixturesCmd.AddCommand(fixturesRefreshCmd)
	rootCmd.AddCommand(fixturesCmd)
}

func runFixturesRefresh(cmd *cobra.Command, _ []string) error {
	names := slices.Sorted(maps.Keys(fixtureCommands))
	if len(fixturesOnly) > 0 {
		for _, name := range fixturesOnly {
			if _, ok := fixtureCommands[name]; !ok {
				return fmt.Errorf("unknown fixture %q", name)
			}
		}
		names = fixturesOnly
	}

	if err := os.MkdirAll(fixturesDir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", fixturesDir, err)
	}

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(tmdb.DefaultPageConcurrency)
	for _, name := range names {
		g.Go(func() error {
			var raw json.RawMessage
			if err := client.Do(ctx, fixtureCommands[name], &raw); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}

			var buf bytes.Buffer
			if err := json.Indent(&buf, raw, "", "  "); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			buf.WriteByte('\n')

			path := filepath.Join(fixturesDir, name)
			if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}

			logger.Info().Str("fixture", name).Int("bytes", buf.Len()).Msg("Recorded fixture")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Refreshed %d fixtures in %s\n", len(names), fixturesDir)
	return nil
}
