package cmd

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/tmdbctl/tmdb"
)

var (
	changesStart string
	changesEnd   string
)

// mediaTypeArg validates a movie|tv (or person) positional argument.
func mediaTypeArg(arg string, allowed ...tmdb.MediaType) (tmdb.MediaType, error) {
	mt := tmdb.MediaType(strings.ToLower(arg))
	if !slices.Contains(allowed, mt) {
		names := make([]string, len(allowed))
		for i, a := range allowed {
			names[i] = string(a)
		}
		return "", fmt.Errorf("invalid media type %q: must be one of %s", arg, strings.Join(names, ", "))
	}
	return mt, nil
}

var genresCmd = &cobra.Command{
	Use:       "genres <movie|tv>",
	Short:     "List the official genres",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"movie", "tv"},
	RunE: func(cmd *cobra.Command, args []string) error {
		mt, err := mediaTypeArg(args[0], tmdb.MediaTypeMovie, tmdb.MediaTypeTV)
		if err != nil {
			return err
		}
		genres, err := tmdb.GenreList{MediaType: mt, Language: cfg.Language}.Execute(cmd.Context(), client)
		if err != nil {
			return err
		}

		p := newPrinter(cmd)
		if p.json {
			return p.JSON(genres)
		}
		kv := make([][2]string, len(genres))
		for i, g := range genres {
			kv[i] = [2]string{fmt.Sprint(g.ID), g.Name}
		}
		return p.fields(fmt.Sprintf("Genres (%s):", mt), kv)
	},
}

var certificationsCmd = &cobra.Command{
	Use:       "certifications <movie|tv>",
	Short:     "List rating systems per country",
	Long:      "List the certifications of every country, or only of --region when set.",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"movie", "tv"},
	RunE: func(cmd *cobra.Command, args []string) error {
		mt, err := mediaTypeArg(args[0], tmdb.MediaTypeMovie, tmdb.MediaTypeTV)
		if err != nil {
			return err
		}
		certs, err := tmdb.CertificationList{MediaType: mt}.Execute(cmd.Context(), client)
		if err != nil {
			return err
		}
		if cfg.Region != "" {
			certs = map[string][]tmdb.Certification{cfg.Region: certs[cfg.Region]}
		}

		p := newPrinter(cmd)
		if p.json {
			return p.JSON(certs)
		}
		codes := slices.Sorted(maps.Keys(certs))
		entries := make([]treeEntry, len(codes))
		for i, code := range codes {
			list := slices.SortedFunc(slices.Values(certs[code]), func(a, b tmdb.Certification) int {
				return a.Order - b.Order
			})
			lines := make([]string, len(list))
			for j, c := range list {
				lines[j] = c.Certification
				if p.details && c.Meaning != "" {
					lines[j] += ": " + truncate(c.Meaning, 100)
				}
			}
			entries[i] = treeEntry{head: code, lines: lines}
		}
		return p.tree("Certifications", len(codes), entries)
	},
}

var changesCmd = &cobra.Command{
	Use:       "changes <movie|tv|person>",
	Short:     "List IDs edited recently",
	Long:      "List the IDs of movies, shows or people edited between --start and --end (the last 24 hours by default, at most 14 days).",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"movie", "tv", "person"},
	RunE: func(cmd *cobra.Command, args []string) error {
		mt, err := mediaTypeArg(args[0], tmdb.MediaTypeMovie, tmdb.MediaTypeTV, tmdb.MediaTypePerson)
		if err != nil {
			return err
		}
		start, err := tmdb.ParseDate(changesStart)
		if err != nil {
			return err
		}
		end, err := tmdb.ParseDate(changesEnd)
		if err != nil {
			return err
		}

		changes, total, err := fetchList(cmd.Context(), func(ctx context.Context, page int) (*tmdb.Page[tmdb.Change], error) {
			return tmdb.ChangeList{
				MediaType:       mt,
				DateRangeParams: tmdb.DateRangeParams{StartDate: start, EndDate: end, Page: page},
			}.Execute(ctx, client)
		})
		if err != nil {
			return err
		}

		p := newPrinter(cmd)
		if p.json {
			return p.JSON(changes)
		}
		ids := make([]string, 0, len(changes))
		for _, c := range changes {
			if c.ID != nil {
				ids = append(ids, fmt.Sprint(*c.ID))
			}
		}
		_, err = fmt.Fprintf(p.w, "%d of %d changed %s IDs:\n%s\n", len(ids), total, mt, strings.Join(ids, " "))
		return err
	},
}

var providersCmd = &cobra.Command{
	Use:       "providers <movie|tv>",
	Short:     "List streaming, rental and purchase services",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"movie", "tv"},
	RunE: func(cmd *cobra.Command, args []string) error {
		mt, err := mediaTypeArg(args[0], tmdb.MediaTypeMovie, tmdb.MediaTypeTV)
		if err != nil {
			return err
		}
		providers, err := tmdb.WatchProviderList{
			MediaType:   mt,
			WatchRegion: cfg.Region,
			Language:    cfg.Language,
		}.Execute(cmd.Context(), client)
		if err != nil {
			return err
		}

		p := newPrinter(cmd)
		if p.json {
			return p.JSON(providers)
		}
		kv := make([][2]string, len(providers))
		for i, wp := range providers {
			kv[i] = [2]string{fmt.Sprint(wp.ProviderID), wp.ProviderName}
		}
		return p.fields(fmt.Sprintf("Watch providers (%s):", mt), kv)
	},
}

var countriesCmd = &cobra.Command{
	Use:   "countries",
	Short: "List the countries TMDB uses",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		countries, err := tmdb.Countries{LanguageParams: tmdb.LanguageParams{Language: cfg.Language}}.Execute(cmd.Context(), client)
		if err != nil {
			return err
		}

		p := newPrinter(cmd)
		if p.json {
			return p.JSON(countries)
		}
		kv := make([][2]string, len(countries))
		for i, c := range countries {
			kv[i] = [2]string{c.ISO3166_1, c.EnglishName}
		}
		return p.fields("Countries:", kv)
	},
}

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the languages TMDB uses",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		languages, err := tmdb.Languages{}.Execute(cmd.Context(), client)
		if err != nil {
			return err
		}

		p := newPrinter(cmd)
		if p.json {
			return p.JSON(languages)
		}
		slices.SortFunc(languages, func(a, b tmdb.ConfigLanguage) int {
			return strings.Compare(a.ISO639_1, b.ISO639_1)
		})
		kv := make([][2]string, len(languages))
		for i, l := range languages {
			kv[i] = [2]string{l.ISO639_1, l.String()}
		}
		return p.fields("Languages:", kv)
	},
}

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List crew departments and their jobs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		jobs, err := tmdb.Jobs{}.Execute(cmd.Context(), client)
		if err != nil {
			return err
		}

		p := newPrinter(cmd)
		if p.json {
			return p.JSON(jobs)
		}
		entries := make([]treeEntry, len(jobs))
		for i, d := range jobs {
			entries[i] = treeEntry{head: d.Department, lines: []string{fmt.Sprintf("%d jobs", len(d.Jobs))}}
			if p.details {
				entries[i].lines = []string{strings.Join(d.Jobs, ", ")}
			}
		}
		return p.tree("Departments", len(jobs), entries)
	},
}

// testCmd checks that the API key works
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test the connection to TMDB",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Testing connection to TMDB at %s...\n", client.BaseURL())

		conf, err := tmdb.Configuration{}.Execute(cmd.Context(), client)
		if err != nil {
			return fmt.Errorf("failed to connect to TMDB: %w", err)
		}

		fmt.Fprintln(out, "✓ Connection successful!")
		fmt.Fprintf(out, "- Image base URL: %s\n", conf.Images.SecureBaseURL)
		fmt.Fprintf(out, "- Poster sizes: %s\n", strings.Join(conf.Images.PosterSizes, ", "))
		fmt.Fprintf(out, "- Filter presets: %s\n", strings.Join(filters.Names(), ", "))
		return nil
	},
}

func init() {
	changesCmd.Flags().StringVar(&changesStart, "start", "", "start date (YYYY-MM-DD)")
	changesCmd.Flags().StringVar(&changesEnd, "end", "", "end date (YYYY-MM-DD)")
	changesCmd.Flags().IntVar(&pageFlag, "page", 0, "fetch a single page")
	changesCmd.Flags().IntVar(&maxPages, "max-pages", 1, "number of pages to fetch (0 for all)")

	rootCmd.AddCommand(
		genresCmd,
		certificationsCmd,
		changesCmd,
		providersCmd,
		countriesCmd,
		languagesCmd,
		jobsCmd,
		testCmd,
	)
}
