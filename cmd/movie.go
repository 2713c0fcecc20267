package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/tmdbctl/tmdb"
)

var (
	searchYear   int
	includeAdult bool
	castLimit    int
)

// movieCmd groups the movie commands
var movieCmd = &cobra.Command{
	Use:   "movie",
	Short: "Look up and list movies",
}

var movieDetailsCmd = &cobra.Command{
	Use:   "details <movie-id>",
	Short: "Show a movie",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "movie")
		if err != nil {
			return err
		}
		movie, err := tmdb.MovieDetails{MovieID: id, Language: cfg.Language}.Execute(cmd.Context(), client)
		if err != nil {
			return err
		}
		return newPrinter(cmd).Movie(movie)
	},
}

var movieLatestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Show the most recently created movie",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		movie, err := tmdb.MovieLatest{LanguageParams: tmdb.LanguageParams{Language: cfg.Language}}.Execute(cmd.Context(), client)
		if err != nil {
			return err
		}
		return newPrinter(cmd).Movie(movie)
	},
}

var movieSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search movies by title",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		return printMovies(cmd, "Movies", func(ctx context.Context, page int) (*tmdb.Page[tmdb.MovieShort], error) {
			return tmdb.MovieSearch{
				Query:        query,
				Language:     cfg.Language,
				Region:       cfg.Region,
				Page:         page,
				Year:         searchYear,
				IncludeAdult: includeAdult,
			}.Execute(ctx, client)
		})
	},
}

// movieListCommand builds a command for one of the region-aware movie lists.
func movieListCommand(use, short, title string, run func(ctx context.Context, params tmdb.ListParams) (*tmdb.Page[tmdb.MovieShort], error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printMovies(cmd, title, func(ctx context.Context, page int) (*tmdb.Page[tmdb.MovieShort], error) {
				return run(ctx, tmdb.ListParams{Language: cfg.Language, Region: cfg.Region, Page: page})
			})
		},
	}
	addListFlags(cmd)
	return cmd
}

// relatedMoviesCommand builds a command listing movies related to another.
func relatedMoviesCommand(use, short, title string, run func(ctx context.Context, id int, params tmdb.LanguagePageParams) (*tmdb.Page[tmdb.MovieShort], error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use + " <movie-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "movie")
			if err != nil {
				return err
			}
			return printMovies(cmd, title, func(ctx context.Context, page int) (*tmdb.Page[tmdb.MovieShort], error) {
				return run(ctx, id, tmdb.LanguagePageParams{Language: cfg.Language, Page: page})
			})
		},
	}
	addListFlags(cmd)
	return cmd
}

var movieCreditsCmd = &cobra.Command{
	Use:   "credits <movie-id>",
	Short: "Show the cast and directors of a movie",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "movie")
		if err != nil {
			return err
		}
		credits, err := tmdb.MovieCredits{MovieID: id, Language: cfg.Language}.Execute(cmd.Context(), client)
		if err != nil {
			return err
		}
		return newPrinter(cmd).Credits(credits, castLimit)
	},
}

var movieProvidersCmd = &cobra.Command{
	Use:   "providers <movie-id>",
	Short: "Show where a movie can be streamed, rented or bought",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "movie")
		if err != nil {
			return err
		}
		res, err := tmdb.MovieWatchProviders{MovieID: id}.Execute(cmd.Context(), client)
		if err != nil {
			return err
		}
		return newPrinter(cmd).WatchProviders(res, cfg.Region)
	},
}

var movieVideosCmd = &cobra.Command{
	Use:   "videos <movie-id>",
	Short: "List trailers, teasers and clips of a movie",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "movie")
		if err != nil {
			return err
		}
		res, err := tmdb.MovieVideos{MovieID: id, Language: cfg.Language}.Execute(cmd.Context(), client)
		if err != nil {
			return err
		}

		p := newPrinter(cmd)
		if p.json {
			return p.JSON(res.Results)
		}
		entries := make([]treeEntry, len(res.Results))
		for i, v := range res.Results {
			lines := []string{fmt.Sprintf("%s on %s", v.Type, v.Site)}
			if v.Site == "YouTube" {
				lines = append(lines, "https://www.youtube.com/watch?v="+v.Key)
			}
			entries[i] = treeEntry{head: v.Name, lines: lines}
		}
		return p.tree("Videos", len(res.Results), entries)
	},
}

var movieReleaseDatesCmd = &cobra.Command{
	Use:   "release-dates <movie-id>",
	Short: "Show release dates and certifications per country",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "movie")
		if err != nil {
			return err
		}
		res, err := tmdb.MovieReleaseDates{MovieID: id}.Execute(cmd.Context(), client)
		if err != nil {
			return err
		}

		countries := res.Results
		if cfg.Region != "" {
			countries = countries[:0:0]
			for _, c := range res.Results {
				if c.ISO3166_1 == cfg.Region {
					countries = append(countries, c)
				}
			}
		}

		p := newPrinter(cmd)
		if p.json {
			return p.JSON(countries)
		}
		entries := make([]treeEntry, len(countries))
		for i, c := range countries {
			lines := make([]string, len(c.ReleaseDates))
			for j, rd := range c.ReleaseDates {
				line := fmt.Sprintf("%s %s", rd.ReleaseDate.Format(dateFormat), rd.Type)
				if rd.Certification != "" {
					line += " [" + rd.Certification + "]"
				}
				if rd.Note != "" {
					line += " " + rd.Note
				}
				lines[j] = line
			}
			entries[i] = treeEntry{head: c.ISO3166_1, lines: lines}
		}
		return p.tree("Release dates", len(countries), entries)
	},
}

func init() {
	rootCmd.AddCommand(movieCmd)

	movieSearchCmd.Flags().IntVar(&searchYear, "year", 0, "only movies released in this year")
	movieSearchCmd.Flags().BoolVar(&includeAdult, "adult", false, "include adult titles")
	addListFlags(movieSearchCmd)

	movieCreditsCmd.Flags().IntVar(&castLimit, "limit", 15, "number of cast members to show (0 for all)")

	movieCmd.AddCommand(
		movieDetailsCmd,
		movieLatestCmd,
		movieSearchCmd,
		movieListCommand("popular", "List popular movies", "Popular movies",
			func(ctx context.Context, params tmdb.ListParams) (*tmdb.Page[tmdb.MovieShort], error) {
				return tmdb.MoviePopular{ListParams: params}.Execute(ctx, client)
			}),
		movieListCommand("top-rated", "List top rated movies", "Top rated movies",
			func(ctx context.Context, params tmdb.ListParams) (*tmdb.Page[tmdb.MovieShort], error) {
				return tmdb.MovieTopRated{ListParams: params}.Execute(ctx, client)
			}),
		movieListCommand("upcoming", "List upcoming movies", "Upcoming movies",
			func(ctx context.Context, params tmdb.ListParams) (*tmdb.Page[tmdb.MovieShort], error) {
				res, err := tmdb.MovieUpcoming{ListParams: params}.Execute(ctx, client)
				if err != nil {
					return nil, err
				}
				return &res.Page, nil
			}),
		movieListCommand("now-playing", "List movies in theatres", "Now playing",
			func(ctx context.Context, params tmdb.ListParams) (*tmdb.Page[tmdb.MovieShort], error) {
				res, err := tmdb.MovieNowPlaying{ListParams: params}.Execute(ctx, client)
				if err != nil {
					return nil, err
				}
				return &res.Page, nil
			}),
		relatedMoviesCommand("similar", "List movies similar to a movie", "Similar movies",
			func(ctx context.Context, id int, params tmdb.LanguagePageParams) (*tmdb.Page[tmdb.MovieShort], error) {
				return tmdb.MovieSimilar{MovieID: id, LanguagePageParams: params}.Execute(ctx, client)
			}),
		relatedMoviesCommand("recommendations", "List movies recommended for a movie", "Recommended movies",
			func(ctx context.Context, id int, params tmdb.LanguagePageParams) (*tmdb.Page[tmdb.MovieShort], error) {
				return tmdb.MovieRecommendations{MovieID: id, LanguagePageParams: params}.Execute(ctx, client)
			}),
		movieCreditsCmd,
		movieProvidersCmd,
		movieVideosCmd,
		movieReleaseDatesCmd,
	)
}
