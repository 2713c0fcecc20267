package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/tmdbctl/tmdb"
)

// tvCmd groups the TV commands
var tvCmd = &cobra.Command{
	Use:   "tv",
	Short: "Look up and list TV shows",
}

var tvDetailsCmd = &cobra.Command{
	Use:   "details <tv-id>",
	Short: "Show a TV show",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "TV")
		if err != nil {
			return err
		}
		show, err := tmdb.TVDetails{TVID: id, Language: cfg.Language}.Execute(cmd.Context(), client)
		if err != nil {
			return err
		}
		return newPrinter(cmd).TVShow(show)
	},
}

var tvSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search TV shows by name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		return printTVShows(cmd, "TV shows", func(ctx context.Context, page int) (*tmdb.Page[tmdb.TVShowShort], error) {
			return tmdb.TVSearch{
				Query:            query,
				Language:         cfg.Language,
				Page:             page,
				FirstAirDateYear: searchYear,
				IncludeAdult:     includeAdult,
			}.Execute(ctx, client)
		})
	},
}

var tvSimilarCmd = &cobra.Command{
	Use:   "similar <tv-id>",
	Short: "List shows similar to a show",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "TV")
		if err != nil {
			return err
		}
		return printTVShows(cmd, "Similar shows", func(ctx context.Context, page int) (*tmdb.Page[tmdb.TVShowShort], error) {
			return tmdb.TVSimilar{
				TVID:               id,
				LanguagePageParams: tmdb.LanguagePageParams{Language: cfg.Language, Page: page},
			}.Execute(ctx, client)
		})
	},
}

var tvSeasonCmd = &cobra.Command{
	Use:   "season <tv-id> <season>",
	Short: "List the episodes of a season",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "TV")
		if err != nil {
			return err
		}
		season, err := parseNumber(args[1], "season")
		if err != nil {
			return err
		}
		res, err := tmdb.TVSeasonDetails{TVID: id, SeasonNumber: season, Language: cfg.Language}.Execute(cmd.Context(), client)
		if err != nil {
			return err
		}
		return newPrinter(cmd).Season(res)
	},
}

var tvEpisodeCmd = &cobra.Command{
	Use:   "episode <tv-id> <season> <episode>",
	Short: "Show a single episode",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "TV")
		if err != nil {
			return err
		}
		season, err := parseNumber(args[1], "season")
		if err != nil {
			return err
		}
		episode, err := parseNumber(args[2], "episode")
		if err != nil {
			return err
		}
		res, err := tmdb.TVEpisodeDetails{
			TVID:          id,
			SeasonNumber:  season,
			EpisodeNumber: episode,
			Language:      cfg.Language,
		}.Execute(cmd.Context(), client)
		if err != nil {
			return err
		}
		return newPrinter(cmd).Episode(res)
	},
}

var tvCreditsCmd = &cobra.Command{
	Use:   "credits <tv-id>",
	Short: "Show the cast of every season of a show",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "TV")
		if err != nil {
			return err
		}
		credits, err := tmdb.TVAggregateCredits{TVID: id, Language: cfg.Language}.Execute(cmd.Context(), client)
		if err != nil {
			return err
		}

		p := newPrinter(cmd)
		if p.json {
			return p.JSON(credits)
		}
		cast := credits.Cast
		if castLimit > 0 && len(cast) > castLimit {
			cast = cast[:castLimit]
		}
		entries := make([]treeEntry, len(cast))
		for i, member := range cast {
			roles := make([]string, len(member.Roles))
			for j, role := range member.Roles {
				roles[j] = role.Character
			}
			entries[i] = treeEntry{
				head:  fmt.Sprintf("%s as %s", member.Name, strings.Join(roles, " / ")),
				lines: []string{fmt.Sprintf("%d episodes", member.TotalEpisodeCount)},
			}
		}
		return p.tree("Credits", len(credits.Cast), entries)
	},
}

var tvRatingsCmd = &cobra.Command{
	Use:   "ratings <tv-id>",
	Short: "Show the content rating of a show per country",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "TV")
		if err != nil {
			return err
		}
		ratings, err := tmdb.TVContentRatings{TVID: id}.Execute(cmd.Context(), client)
		if err != nil {
			return err
		}

		p := newPrinter(cmd)
		if p.json {
			return p.JSON(ratings)
		}
		kv := make([][2]string, len(ratings))
		for i, r := range ratings {
			kv[i] = [2]string{r.ISO3166_1, r.Rating}
		}
		return p.fields("Content ratings", kv)
	},
}

var tvProvidersCmd = &cobra.Command{
	Use:   "providers <tv-id>",
	Short: "Show where a show can be streamed, rented or bought",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "TV")
		if err != nil {
			return err
		}
		res, err := tmdb.TVWatchProviders{TVID: id}.Execute(cmd.Context(), client)
		if err != nil {
			return err
		}
		return newPrinter(cmd).WatchProviders(res, cfg.Region)
	},
}

func init() {
	rootCmd.AddCommand(tvCmd)

	tvSearchCmd.Flags().IntVar(&searchYear, "year", 0, "only shows first aired in this year")
	tvSearchCmd.Flags().BoolVar(&includeAdult, "adult", false, "include adult titles")
	addListFlags(tvSearchCmd)
	addListFlags(tvSimilarCmd)

	tvCreditsCmd.Flags().IntVar(&castLimit, "limit", 15, "number of cast members to show (0 for all)")

	tvCmd.AddCommand(
		tvDetailsCmd,
		tvSearchCmd,
		tvSimilarCmd,
		tvSeasonCmd,
		tvEpisodeCmd,
		tvCreditsCmd,
		tvRatingsCmd,
		tvProvidersCmd,
	)
}

// parseNumber parses a season or episode number. Season 0 holds specials.
func parseNumber(arg, what string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s number %q", what, arg)
	}
	return n, nil
}
