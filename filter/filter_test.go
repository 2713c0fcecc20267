package filter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/tmdbctl/tmdb"
)

var testGenres = NewGenreNames([]tmdb.Genre{
	{ID: 18, Name: "Drama"},
	{ID: 28, Name: "Action"},
	{ID: 80, Name: "Crime"},
})

func fightClub() Item {
	return FromMovie(tmdb.MovieShort{
		MovieBase: tmdb.MovieBase{
			ID:               550,
			Title:            "Fight Club",
			OriginalLanguage: "en",
			ReleaseDate:      tmdb.NewDate(1999, time.October, 15),
			Popularity:       61.4,
			VoteAverage:      8.4,
			VoteCount:        26280,
		},
		GenreIDs: []int{18},
	}, testGenres)
}

func breakingBad() Item {
	return FromTVShow(tmdb.TVShowShort{
		TVShowBase: tmdb.TVShowBase{
			ID:            1396,
			Name:          "Breaking Bad",
			OriginCountry: []string{"US"},
			FirstAirDate:  tmdb.NewDate(2008, time.January, 20),
			VoteAverage:   8.9,
			VoteCount:     13271,
		},
		GenreIDs: []int{18, 80},
	}, testGenres)
}

func TestFromConstructors(t *testing.T) {
	movie := fightClub()
	assert.Equal(t, tmdb.MediaTypeMovie, movie.MediaType)
	assert.Equal(t, 1999, movie.Year)
	assert.Equal(t, []string{"Drama"}, movie.Genres)

	show := breakingBad()
	assert.Equal(t, "Breaking Bad", show.Title)
	assert.Equal(t, []string{"Drama", "Crime"}, show.Genres)

	unknownGenre := FromMovie(tmdb.MovieShort{GenreIDs: []int{9999}}, testGenres)
	assert.Empty(t, unknownGenre.Genres)
	assert.Zero(t, unknownGenre.Year)

	person := FromMulti(tmdb.MultiResult{
		MediaType: tmdb.MediaTypePerson,
		Person:    &tmdb.PersonResult{ID: 287, Name: "Brad Pitt", KnownForDepartment: "Acting"},
	}, nil)
	assert.Equal(t, tmdb.MediaTypePerson, person.MediaType)
	assert.Equal(t, "Acting", person.Department)
}

func TestCompile(t *testing.T) {
	tests := []struct {
		name        string
		expression  string
		wantErr     bool
		errContains string
	}{
		{name: "valid expression", expression: `hasGenre("drama")`},
		{name: "empty expression", expression: "  ", wantErr: true, errContains: "empty expression"},
		{name: "invalid syntax", expression: `hasGenre("unclosed`, wantErr: true},
		{name: "unknown identifier", expression: `Watched == true`, wantErr: true},
		{name: "non boolean", expression: `Year + 1`, wantErr: true},
		{name: "shorthand", expression: `genre:"Drama" AND year:>2000`},
	}

	compiler := NewExprCompiler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := compiler.Compile(tt.expression)
			if tt.wantErr {
				require.Error(t, err)
				var compErr *CompilationError
				assert.ErrorAs(t, err, &compErr)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, strings.TrimSpace(tt.expression), f.Expression())
		})
	}
}

func TestMatch(t *testing.T) {
	movie := fightClub()
	show := breakingBad()
	notFound := FromMovie(tmdb.MovieShort{MovieBase: tmdb.MovieBase{Title: "NOT Found", OriginalLanguage: "en"}}, nil)

	tests := []struct {
		name       string
		expression string
		item       Item
		want       bool
	}{
		{"genre", `hasGenre("drama")`, movie, true},
		{"missing genre", `hasGenre("Crime")`, movie, false},
		{"genre id", `hasGenreID(80)`, show, true},
		{"year", `Year < 2000`, movie, true},
		{"rating", `VoteAverage >= 8.5`, show, true},
		{"media type", `isTV() and not isMovie()`, show, true},
		{"country", `hasCountry("us")`, show, true},
		{"released before", `releasedBefore(parseDate("2000-01-01"))`, movie, true},
		{"released", `released()`, movie, true},
		{"date arithmetic", `ReleaseDate < yearsAgo(10)`, show, true},
		{"contains fold", `containsFold(Title, "CLUB")`, movie, true},
		{"contains fold miss", `containsFold(Title, "bad")`, movie, false},
		{"prefix fold", `hasPrefixFold(Title, "breaking")`, show, true},
		{"prefix fold miss", `hasPrefixFold(Title, "bad")`, show, false},
		{"suffix fold", `hasSuffixFold(Title, "BAD")`, show, true},
		{"suffix fold miss", `hasSuffixFold(Title, "fight")`, movie, false},
		{"contains operator", `Title contains "Club"`, movie, true},
		{"in operator", `"Crime" in Genres`, show, true},
		{"shorthand genre", `genre:"Crime" AND rating:>8`, show, true},
		{"shorthand negation", `genre!:"Drama"`, movie, false},
		{"shorthand type", `type:movie AND lang:"en"`, movie, true},
		{"shorthand year equals", `year:1999`, movie, true},
		{"shorthand released after", `released_after:"2005-01-01"`, movie, false},
		{"shorthand votes", `votes:>=10000 OR year:<1950`, show, true},
		{"shorthand keeps quoted operators", `type:movie AND Title == "NOT Found"`, notFound, true},
		{"shorthand quoted operators mismatch", `type:movie AND Title == "NOT Found"`, movie, false},
		{"shorthand quoted and", `lang:"en" AND Title != "Fight AND Club"`, movie, true},
	}

	compiler := NewExprCompiler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := compiler.Compile(tt.expression)
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.Match(tt.item), tt.expression)
		})
	}
}

func TestUnknownReleaseDateNeverMatchesDateHelpers(t *testing.T) {
	item := FromMovie(tmdb.MovieShort{MovieBase: tmdb.MovieBase{Title: "Untitled"}}, nil)
	compiler := NewExprCompiler()

	for _, expression := range []string{
		`released()`,
		`releasedAfter(parseDate("1900-01-01"))`,
		`releasedBefore(parseDate("2999-01-01"))`,
	} {
		f, err := compiler.Compile(expression)
		require.NoError(t, err)
		assert.False(t, f.Match(item), expression)
	}
}

func TestConvertShorthand(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`genre:"Drama"`, `hasGenre("Drama")`},
		{`genre!:"Horror" AND year:>=2010`, `not hasGenre("Horror") and Year >= 2010`},
		{`rating:7.5 OR votes:<100`, `VoteAverage == 7.5 or VoteCount < 100`},
		{`NOT type:tv`, `not MediaType == "tv"`},
		{`released_before:"2020-01-01"`, `releasedBefore(parseDate("2020-01-01"))`},
		{`country:"DE"`, `hasCountry("DE")`},
		{`genre:"Drama" AND Title == "NOT Found"`, `hasGenre("Drama") and Title == "NOT Found"`},
		{`type:movie OR Title == "Salt AND Pepper"`, `MediaType == "movie" or Title == "Salt AND Pepper"`},
		{`lang:"en" AND Overview contains "say \"NOT \" OR leave"`, `OriginalLanguage == "en" and Overview contains "say \"NOT \" OR leave"`},
		{`NOT genre:"Drama" AND Title == "A OR B" OR year:2000`, `not hasGenre("Drama") and Title == "A OR B" or Year == 2000`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.True(t, IsShorthand(tt.input))
			assert.Equal(t, tt.want, ConvertShorthand(tt.input))
		})
	}

	assert.False(t, IsShorthand(`Year > 2000`))
}

func TestCustomFunctions(t *testing.T) {
	compiler := NewExprCompiler(WithCustomFunctions(map[string]any{
		"cult": func(votes int) bool { return votes > 20000 },
	}))

	f, err := compiler.Compile(`cult(VoteCount)`)
	require.NoError(t, err)
	assert.True(t, f.Match(fightClub()))
	assert.False(t, f.Match(breakingBad()))
}

func generateItems(count int) []Item {
	items := make([]Item, count)
	for i := range items {
		items[i] = Item{
			MediaType:   tmdb.MediaTypeMovie,
			ID:          i,
			Title:       fmt.Sprintf("Movie %d", i),
			Year:        2000 + i%25,
			Genres:      []string{"Action", "Drama", "Crime"}[:(i%3)+1],
			VoteAverage: float64(i % 10),
			VoteCount:   i * 3,
		}
	}
	return items
}

func TestConcurrentEvaluation(t *testing.T) {
	items := generateItems(1000)
	f, err := NewExprCompiler().Compile(`hasGenre("crime") and Year > 2010`)
	require.NoError(t, err)

	var want []Item
	for _, item := range items {
		if f.Match(item) {
			want = append(want, item)
		}
	}
	require.NotEmpty(t, want)

	evaluator := NewConcurrentEvaluator(WithWorkers(4), WithBatchSize(50))
	got, err := evaluator.Evaluate(context.Background(), f, items)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestEvaluateSmallListSequential(t *testing.T) {
	f, err := NewExprCompiler().Compile(`Year < 2000`)
	require.NoError(t, err)

	got, err := NewConcurrentEvaluator().Evaluate(context.Background(), f, []Item{fightClub(), breakingBad()})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 550, got[0].ID)

	got, err = NewConcurrentEvaluator().Evaluate(context.Background(), f, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestEvaluateRuntimeError(t *testing.T) {
	compiler := NewExprCompiler(WithCustomFunctions(map[string]any{
		"boom": func(title string) (bool, error) {
			if title == "Breaking Bad" {
				return false, errors.New("boom")
			}
			return true, nil
		},
	}))
	f, err := compiler.Compile(`boom(Title)`)
	require.NoError(t, err)

	_, err = NewConcurrentEvaluator().Evaluate(context.Background(), f, []Item{fightClub(), breakingBad()})
	var evalErr *EvaluationError
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, "Breaking Bad", evalErr.ItemTitle)
	assert.False(t, f.Match(breakingBad()))
}

func TestEvaluateCancelled(t *testing.T) {
	f, err := NewExprCompiler().Compile(`Year > 0`)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewConcurrentEvaluator(WithBatchSize(10)).Evaluate(ctx, f, generateItems(100))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestManager(t *testing.T) {
	m := NewManager()
	ctx := context.Background()

	require.NoError(t, m.RegisterAll(map[string]string{
		"crime":   `hasGenre("Crime")`,
		"classic": `year:<2000`,
	}))
	assert.Equal(t, []string{"classic", "crime"}, m.Names())

	items := []Item{fightClub(), breakingBad()}

	got, err := m.Apply(ctx, "crime", items)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Breaking Bad", got[0].Title)

	_, err = m.Apply(ctx, "missing", items)
	assert.ErrorIs(t, err, ErrUnknownPreset)

	err = m.RegisterAll(map[string]string{"ok": `Year > 0`, "broken": `Year >`})
	require.Error(t, err)
	_, ok := m.Get("ok")
	assert.False(t, ok, "no preset is stored when one fails")

	got, err = m.Filter(ctx, `VoteAverage > 8`, "classic", items)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 550, got[0].ID)

	got, err = m.Filter(ctx, "", "", items)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestCacheEffectiveness(t *testing.T) {
	compiler := NewExprCompiler(WithCache(2))

	first, err := compiler.Compile(`Year > 2000`)
	require.NoError(t, err)
	second, err := compiler.Compile(`Year > 2000`)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, compiler.Size())

	_, err = compiler.Compile(`Year > 2001`)
	require.NoError(t, err)
	_, err = compiler.Compile(`Year > 2002`)
	require.NoError(t, err)
	assert.Equal(t, 2, compiler.Size())

	third, err := compiler.Compile(`Year > 2000`)
	require.NoError(t, err)
	assert.NotSame(t, first, third, "least recently used entry was evicted")

	compiler.Clear()
	assert.Zero(t, compiler.Size())
}
