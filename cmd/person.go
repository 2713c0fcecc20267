package cmd

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/tmdbctl/filter"
	"github.com/s0up4200/tmdbctl/tmdb"
)

// personCmd groups the person commands
var personCmd = &cobra.Command{
	Use:   "person",
	Short: "Look up people",
}

var personDetailsCmd = &cobra.Command{
	Use:   "details <person-id>",
	Short: "Show a person",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "person")
		if err != nil {
			return err
		}
		person, err := tmdb.PersonDetails{PersonID: id, Language: cfg.Language}.Execute(cmd.Context(), client)
		if err != nil {
			return err
		}
		return newPrinter(cmd).Person(person)
	},
}

var personSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search people by name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		people, total, err := fetchList(cmd.Context(), func(ctx context.Context, page int) (*tmdb.Page[tmdb.PersonResult], error) {
			return tmdb.PersonSearch{
				Query:        query,
				Language:     cfg.Language,
				Page:         page,
				IncludeAdult: includeAdult,
			}.Execute(ctx, client)
		})
		if err != nil {
			return err
		}

		items := make([]filter.Item, len(people))
		for i, p := range people {
			items[i] = filter.FromPerson(p)
		}
		return printItems(cmd, "People", items, total)
	},
}

var companyCmd = &cobra.Command{
	Use:   "company <company-id>",
	Short: "Show a production company or network",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "company")
		if err != nil {
			return err
		}
		company, err := tmdb.CompanyDetails{CompanyID: id}.Execute(cmd.Context(), client)
		if err != nil {
			return err
		}
		return newPrinter(cmd).Company(company)
	},
}

var collectionCmd = &cobra.Command{
	Use:   "collection <collection-id>",
	Short: "List the movies of a collection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "collection")
		if err != nil {
			return err
		}
		collection, err := tmdb.CollectionDetails{CollectionID: id, Language: cfg.Language}.Execute(cmd.Context(), client)
		if err != nil {
			return err
		}
		return newPrinter(cmd).Collection(collection)
	},
}

func init() {
	personSearchCmd.Flags().BoolVar(&includeAdult, "adult", false, "include adult profiles")
	addListFlags(personSearchCmd)

	personCmd.AddCommand(personDetailsCmd, personSearchCmd)
	rootCmd.AddCommand(personCmd, companyCmd, collectionCmd)
}
