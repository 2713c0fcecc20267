package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/s0up4200/tmdbctl/filter"
	"github.com/s0up4200/tmdbctl/tmdb"
)

const dateFormat = "2006-01-02"

// printer renders results as a tree/table for humans or as indented JSON.
type printer struct {
	w       io.Writer
	json    bool
	details bool
}

func newPrinter(cmd *cobra.Command) *printer {
	p := &printer{w: cmd.OutOrStdout()}
	if cfg != nil {
		p.json = cfg.Output.Format == "json"
		p.details = cfg.Output.ShowDetails
	}
	return p
}

func (p *printer) JSON(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// treeEntry is one branch of a tree listing
type treeEntry struct {
	head  string
	lines []string
}

func (p *printer) tree(title string, count int, entries []treeEntry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintf(p.w, "No %s found\n", strings.ToLower(title))
		return err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n%s (%d):\n\n", title, count)

	for i, e := range entries {
		isLast := i == len(entries)-1
		prefix, indent := "├", "│   "
		if isLast {
			prefix, indent = "╰", "    "
		}

		fmt.Fprintf(&sb, "%s── %s\n", prefix, e.head)
		for _, line := range e.lines {
			fmt.Fprintf(&sb, "%s%s\n", indent, line)
		}
		if !isLast {
			sb.WriteString("│\n")
		}
	}

	sb.WriteString("\n")
	_, err := io.WriteString(p.w, sb.String())
	return err
}

// fields prints aligned "key: value" pairs, skipping empty values.
func (p *printer) fields(title string, kv [][2]string) error {
	if _, err := fmt.Fprintf(p.w, "%s\n", title); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	for _, pair := range kv {
		if pair[1] == "" {
			continue
		}
		fmt.Fprintf(tw, "  %s:\t%s\n", pair[0], pair[1])
	}
	return tw.Flush()
}

// Items prints a filtered result list. total is the server-side count.
func (p *printer) Items(title string, items []filter.Item, total int) error {
	if p.json {
		return p.JSON(items)
	}

	entries := make([]treeEntry, len(items))
	for i, item := range items {
		entries[i] = treeEntry{head: itemHeading(item), lines: p.itemLines(item)}
	}
	if total < len(items) {
		total = len(items)
	}
	if err := p.tree(title, len(items), entries); err != nil {
		return err
	}
	if total > len(items) && len(items) > 0 {
		_, err := fmt.Fprintf(p.w, "Showing %d of %d results\n", len(items), total)
		return err
	}
	return nil
}

func itemHeading(item filter.Item) string {
	head := item.Title
	if item.Year > 0 {
		head += fmt.Sprintf(" (%d)", item.Year)
	}
	if item.MediaType != "" {
		head += fmt.Sprintf(" [%s %d]", item.MediaType, item.ID)
	} else {
		head += fmt.Sprintf(" [%d]", item.ID)
	}
	return head
}

func (p *printer) itemLines(item filter.Item) []string {
	var lines []string
	if item.MediaType == tmdb.MediaTypePerson {
		if item.Department != "" {
			lines = append(lines, "Known for: "+item.Department)
		}
		return lines
	}

	var parts []string
	if item.VoteCount > 0 {
		parts = append(parts, fmt.Sprintf("Rating: %.1f (%d votes)", item.VoteAverage, item.VoteCount))
	}
	if len(item.Genres) > 0 {
		parts = append(parts, "Genres: "+strings.Join(item.Genres, ", "))
	}
	if len(parts) > 0 {
		lines = append(lines, strings.Join(parts, " | "))
	}

	if p.details {
		if !item.ReleaseDate.IsZero() {
			lines = append(lines, "Released: "+item.ReleaseDate.Format(dateFormat))
		}
		if item.OriginalTitle != "" && item.OriginalTitle != item.Title {
			lines = append(lines, "Original title: "+item.OriginalTitle)
		}
		if item.Overview != "" {
			lines = append(lines, truncate(item.Overview, 100))
		}
	}
	return lines
}

func (p *printer) Movie(m *tmdb.Movie) error {
	if p.json {
		return p.JSON(m)
	}

	runtime := ""
	if m.Runtime != nil && *m.Runtime > 0 {
		runtime = fmt.Sprintf("%d min", *m.Runtime)
	}
	collection := ""
	if m.BelongsToCollection != nil {
		collection = fmt.Sprintf("%s [%d]", m.BelongsToCollection.Name, m.BelongsToCollection.ID)
	}

	kv := [][2]string{
		{"ID", fmt.Sprint(m.ID)},
		{"IMDb", m.IMDbID},
		{"Status", string(m.Status)},
		{"Released", m.ReleaseDate.String()},
		{"Runtime", runtime},
		{"Genres", genreNames(m.Genres)},
		{"Rating", rating(m.VoteAverage, m.VoteCount)},
		{"Tagline", m.Tagline},
		{"Collection", collection},
	}
	if p.details {
		kv = append(kv,
			[2]string{"Original title", m.OriginalTitle},
			[2]string{"Budget", money(int64(m.Budget))},
			[2]string{"Revenue", money(m.Revenue)},
			[2]string{"Homepage", m.Homepage},
			[2]string{"Overview", m.Overview},
		)
	}
	return p.fields(withYear(m.Title, m.Year()), kv)
}

func (p *printer) TVShow(s *tmdb.TVShow) error {
	if p.json {
		return p.JSON(s)
	}

	next := ""
	if s.NextEpisodeToAir != nil {
		next = episodeLabel(*s.NextEpisodeToAir)
	}
	last := ""
	if s.LastEpisodeToAir != nil {
		last = episodeLabel(*s.LastEpisodeToAir)
	}

	kv := [][2]string{
		{"ID", fmt.Sprint(s.ID)},
		{"Status", s.Status},
		{"First aired", s.FirstAirDate.String()},
		{"Last aired", s.LastAirDate.String()},
		{"Seasons", fmt.Sprintf("%d (%d episodes)", s.NumberOfSeasons, s.NumberOfEpisodes)},
		{"Genres", genreNames(s.Genres)},
		{"Rating", rating(s.VoteAverage, s.VoteCount)},
		{"Last episode", last},
		{"Next episode", next},
	}
	if p.details {
		kv = append(kv,
			[2]string{"Networks", companyNames(s.Networks)},
			[2]string{"Type", s.Type},
			[2]string{"Homepage", s.Homepage},
			[2]string{"Overview", s.Overview},
		)
	}
	return p.fields(withYear(s.Name, s.Year()), kv)
}

func (p *printer) Season(s *tmdb.Season) error {
	if p.json {
		return p.JSON(s)
	}

	entries := make([]treeEntry, len(s.Episodes))
	for i, ep := range s.Episodes {
		var lines []string
		if !ep.AirDate.IsZero() {
			lines = append(lines, "Aired: "+ep.AirDate.String())
		}
		if p.details && len(ep.GuestStars) > 0 {
			lines = append(lines, fmt.Sprintf("Guest stars: %d", len(ep.GuestStars)))
		}
		entries[i] = treeEntry{head: episodeLabel(ep.EpisodeShort), lines: lines}
	}
	return p.tree(s.Name, len(s.Episodes), entries)
}

func (p *printer) Episode(e *tmdb.Episode) error {
	if p.json {
		return p.JSON(e)
	}

	runtime := ""
	if e.Runtime != nil {
		runtime = fmt.Sprintf("%d min", *e.Runtime)
	}
	var directors []string
	for _, c := range e.Crew {
		if c.Job == "Director" {
			directors = append(directors, c.Name)
		}
	}

	return p.fields(episodeLabel(e.EpisodeShort), [][2]string{
		{"ID", fmt.Sprint(e.ID)},
		{"Aired", e.AirDate.String()},
		{"Runtime", runtime},
		{"Rating", rating(e.VoteAverage, e.VoteCount)},
		{"Directed by", strings.Join(directors, ", ")},
		{"Overview", e.Overview},
	})
}

func (p *printer) Person(person *tmdb.Person) error {
	if p.json {
		return p.JSON(person)
	}

	kv := [][2]string{
		{"ID", fmt.Sprint(person.ID)},
		{"IMDb", person.IMDbID},
		{"Known for", person.KnownForDepartment},
		{"Born", person.Birthday.String()},
		{"Died", person.Deathday.String()},
		{"Birthplace", person.PlaceOfBirth},
	}
	if p.details {
		kv = append(kv,
			[2]string{"Also known as", strings.Join(person.AlsoKnownAs, ", ")},
			[2]string{"Homepage", person.Homepage},
			[2]string{"Biography", truncate(person.Biography, 300)},
		)
	}
	return p.fields(person.Name, kv)
}

func (p *printer) Company(c *tmdb.Company) error {
	if p.json {
		return p.JSON(c)
	}

	parent := ""
	if c.ParentCompany != nil {
		parent = fmt.Sprintf("%s [%d]", c.ParentCompany.Name, c.ParentCompany.ID)
	}
	return p.fields(c.Name, [][2]string{
		{"ID", fmt.Sprint(c.ID)},
		{"Country", c.OriginCountry},
		{"Headquarters", c.Headquarters},
		{"Parent", parent},
		{"Homepage", c.Homepage},
		{"Description", c.Description},
	})
}

func (p *printer) Collection(c *tmdb.Collection) error {
	if p.json {
		return p.JSON(c)
	}

	entries := make([]treeEntry, len(c.Parts))
	for i, part := range c.Parts {
		year := 0
		if !part.ReleaseDate.IsZero() {
			year = part.ReleaseDate.Year()
		}
		var lines []string
		if part.VoteCount > 0 {
			lines = append(lines, "Rating: "+rating(part.VoteAverage, part.VoteCount))
		}
		entries[i] = treeEntry{head: fmt.Sprintf("%s [%d]", withYear(part.Title, year), part.ID), lines: lines}
	}
	return p.tree(c.Name, len(c.Parts), entries)
}

// Credits prints the top billed cast and the directors.
func (p *printer) Credits(c *tmdb.Credits, limit int) error {
	if p.json {
		return p.JSON(c)
	}

	cast := c.Cast
	if limit > 0 && len(cast) > limit {
		cast = cast[:limit]
	}
	entries := make([]treeEntry, 0, len(cast)+1)
	for _, member := range cast {
		entries = append(entries, treeEntry{head: fmt.Sprintf("%s as %s", member.Name, member.Character)})
	}
	if directors := c.Directors(); len(directors) > 0 {
		names := make([]string, len(directors))
		for i, d := range directors {
			names[i] = d.Name
		}
		entries = append(entries, treeEntry{head: "Directed by " + strings.Join(names, ", ")})
	}
	return p.tree("Credits", len(c.Cast), entries)
}

// WatchProviders prints the providers of one region, or every region when
// region is empty.
func (p *printer) WatchProviders(res *tmdb.WatchProviderResult, region string) error {
	if region != "" {
		located, ok := res.Region(region)
		if !ok {
			_, err := fmt.Fprintf(p.w, "No watch providers listed for %s\n", region)
			return err
		}
		res = &tmdb.WatchProviderResult{ID: res.ID, Results: map[string]tmdb.LocatedWatchProvider{region: located}}
	}
	if p.json {
		return p.JSON(res)
	}

	codes := slices.Sorted(maps.Keys(res.Results))
	entries := make([]treeEntry, len(codes))
	for i, code := range codes {
		located := res.Results[code]
		var lines []string
		for _, group := range []struct {
			name      string
			providers []tmdb.WatchProvider
		}{
			{"Stream", located.Flatrate},
			{"Free", located.Free},
			{"Ads", located.Ads},
			{"Rent", located.Rent},
			{"Buy", located.Buy},
		} {
			if len(group.providers) > 0 {
				lines = append(lines, group.name+": "+providerNames(group.providers))
			}
		}
		entries[i] = treeEntry{head: code, lines: lines}
	}
	return p.tree("Watch providers", len(codes), entries)
}

func withYear(title string, year int) string {
	if year > 0 {
		return fmt.Sprintf("%s (%d)", title, year)
	}
	return title
}

func episodeLabel(e tmdb.EpisodeShort) string {
	return fmt.Sprintf("S%02dE%02d %s", e.SeasonNumber, e.EpisodeNumber, e.Name)
}

func rating(avg float64, votes int) string {
	if votes == 0 {
		return ""
	}
	return fmt.Sprintf("%.1f/10 (%d votes)", avg, votes)
}

func money(v int64) string {
	if v <= 0 {
		return ""
	}
	return fmt.Sprintf("$%d", v)
}

func genreNames(genres []tmdb.Genre) string {
	names := make([]string, len(genres))
	for i, g := range genres {
		names[i] = g.Name
	}
	return strings.Join(names, ", ")
}

func companyNames(companies []tmdb.CompanyShort) string {
	names := make([]string, len(companies))
	for i, c := range companies {
		names[i] = c.Name
	}
	return strings.Join(names, ", ")
}

func providerNames(providers []tmdb.WatchProvider) string {
	names := make([]string, len(providers))
	for i, p := range providers {
		names[i] = p.ProviderName
	}
	return strings.Join(names, ", ")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
