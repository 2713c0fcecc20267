package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/tmdbctl/filter"
	"github.com/s0up4200/tmdbctl/tmdb"
)

// Shared by every command that prints a list of movies, shows or people.
var (
	filterExpr string
	preset     string
	pageFlag   int
	maxPages   int
)

func addListFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	cmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	cmd.Flags().IntVar(&pageFlag, "page", 0, "fetch a single page")
	cmd.Flags().IntVar(&maxPages, "max-pages", 1, "number of pages to fetch (0 for all)")
}

// fetchList loads either the page requested with --page or the first
// --max-pages pages. The second return value is the server-side total.
func fetchList[T any](ctx context.Context, fetch tmdb.PageFetcher[T]) ([]T, int, error) {
	if pageFlag > 0 {
		if pageFlag > tmdb.MaxPage {
			return nil, 0, fmt.Errorf("page must be between 1 and %d", tmdb.MaxPage)
		}
		page, err := fetch(ctx, pageFlag)
		if err != nil {
			return nil, 0, err
		}
		return page.Results, page.TotalResults, nil
	}

	results, err := tmdb.FetchPages(ctx, maxPages, fetch)
	if err != nil {
		return nil, 0, err
	}
	return results, len(results), nil
}

// loadGenres loads the genre list used to resolve genre IDs. A failure only
// costs the genre names, so it is logged and skipped.
func loadGenres(ctx context.Context, mediaTypes ...tmdb.MediaType) filter.GenreNames {
	var lists [][]tmdb.Genre
	for _, mt := range mediaTypes {
		genres, err := tmdb.GenreList{MediaType: mt, Language: cfg.Language}.Execute(ctx, client)
		if err != nil {
			logger.Warn().Err(err).Str("media_type", string(mt)).Msg("Failed to load genres")
			continue
		}
		lists = append(lists, genres)
	}
	return filter.NewGenreNames(lists...)
}

// printItems applies --filter and --preset, then prints what is left.
func printItems(cmd *cobra.Command, title string, items []filter.Item, total int) error {
	if filterExpr != "" || preset != "" {
		logger.Debug().
			Str("filter", filterExpr).
			Str("preset", preset).
			Int("items", len(items)).
			Msg("Filtering results")
	}

	filtered, err := filters.Filter(cmd.Context(), filterExpr, preset, items)
	if err != nil {
		return fmt.Errorf("invalid filter: %w", err)
	}
	if len(filtered) != len(items) {
		total = len(filtered)
	}

	return newPrinter(cmd).Items(title, filtered, total)
}

func printMovies(cmd *cobra.Command, title string, fetch tmdb.PageFetcher[tmdb.MovieShort]) error {
	ctx := cmd.Context()
	movies, total, err := fetchList(ctx, fetch)
	if err != nil {
		return err
	}
	return printItems(cmd, title, filter.Movies(movies, loadGenres(ctx, tmdb.MediaTypeMovie)), total)
}

func printTVShows(cmd *cobra.Command, title string, fetch tmdb.PageFetcher[tmdb.TVShowShort]) error {
	ctx := cmd.Context()
	shows, total, err := fetchList(ctx, fetch)
	if err != nil {
		return err
	}
	return printItems(cmd, title, filter.TVShows(shows, loadGenres(ctx, tmdb.MediaTypeTV)), total)
}
