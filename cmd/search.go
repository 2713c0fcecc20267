package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/tmdbctl/filter"
	"github.com/s0up4200/tmdbctl/tmdb"
)

var findSource string

// searchCmd runs a multi search across movies, shows and people
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search movies, TV shows and people at once",
	Long: `Search movies, TV shows and people in a single request.

Results can be narrowed with --filter, for example:
  tmdbctl search alien -f 'type:movie AND rating:>7'
  tmdbctl search alien -f 'isTV() && Year < 2000'`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		query := strings.Join(args, " ")
		results, total, err := fetchList(ctx, func(ctx context.Context, page int) (*tmdb.Page[tmdb.MultiResult], error) {
			return tmdb.MultiSearch{
				Query:        query,
				Language:     cfg.Language,
				Region:       cfg.Region,
				Page:         page,
				IncludeAdult: includeAdult,
			}.Execute(ctx, client)
		})
		if err != nil {
			return err
		}

		genres := loadGenres(ctx, tmdb.MediaTypeMovie, tmdb.MediaTypeTV)
		items := make([]filter.Item, len(results))
		for i, r := range results {
			items[i] = filter.FromMulti(r, genres)
		}
		return printItems(cmd, "Results", items, total)
	},
}

// findCmd resolves an ID from another service
var findCmd = &cobra.Command{
	Use:   "find <external-id>",
	Short: "Find TMDB entries by IMDb, TVDB or social media ID",
	Long: `Find movies, shows, people, seasons and episodes by an ID from another service.

Sources: imdb, facebook, instagram, tvdb, tiktok, twitter, wikidata, youtube.`,
	Example: `  tmdbctl find tt0133093
  tmdbctl find 81189 --source tvdb`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := tmdb.ParseExternalSource(findSource)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		res, err := tmdb.FindByID{
			ExternalID:     args[0],
			ExternalSource: source,
			Language:       cfg.Language,
		}.Execute(ctx, client)
		if err != nil {
			return err
		}

		p := newPrinter(cmd)
		if p.json {
			return p.JSON(res)
		}
		if res.Empty() {
			_, err := fmt.Fprintf(p.w, "Nothing found for %s %s\n", source, args[0])
			return err
		}

		genres := loadGenres(ctx, tmdb.MediaTypeMovie, tmdb.MediaTypeTV)
		items := filter.Movies(res.MovieResults, genres)
		items = append(items, filter.TVShows(res.TVResults, genres)...)
		for _, person := range res.PersonResults {
			items = append(items, filter.FromPerson(person))
		}
		if len(items) > 0 {
			if err := p.Items("Matches", items, len(items)); err != nil {
				return err
			}
		}

		for _, season := range res.TVSeasonResults {
			if err := p.fields(season.Name, [][2]string{
				{"ID", fmt.Sprint(season.ID)},
				{"Season", fmt.Sprint(season.SeasonNumber)},
				{"Aired", season.AirDate.String()},
				{"Episodes", fmt.Sprint(season.EpisodeCount)},
			}); err != nil {
				return err
			}
		}
		for _, ep := range res.TVEpisodeResults {
			if err := p.fields(episodeLabel(ep), [][2]string{
				{"ID", fmt.Sprint(ep.ID)},
				{"Show", fmt.Sprint(ep.ShowID)},
				{"Aired", ep.AirDate.String()},
			}); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().BoolVar(&includeAdult, "adult", false, "include adult results")
	addListFlags(searchCmd)

	findCmd.Flags().StringVar(&findSource, "source", "imdb", "service the ID belongs to")

	rootCmd.AddCommand(searchCmd, findCmd)
}
