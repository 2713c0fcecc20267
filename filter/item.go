package filter

import (
	"time"

	"github.com/s0up4200/tmdbctl/tmdb"
)

// Item is the flattened view of a movie, show or person that filter
// expressions are evaluated against.
type Item struct {
	MediaType        tmdb.MediaType `json:"media_type"`
	ID               int            `json:"id"`
	Title            string         `json:"title"`
	OriginalTitle    string         `json:"original_title,omitempty"`
	OriginalLanguage string         `json:"original_language,omitempty"`
	Overview         string         `json:"overview,omitempty"`
	ReleaseDate      time.Time      `json:"release_date,omitzero"`
	Year             int            `json:"year,omitempty"`
	GenreIDs         []int          `json:"genre_ids,omitempty"`
	Genres           []string       `json:"genres,omitempty"`
	OriginCountry    []string       `json:"origin_country,omitempty"`
	Popularity       float64        `json:"popularity"`
	VoteAverage      float64        `json:"vote_average"`
	VoteCount        int            `json:"vote_count"`
	Adult            bool           `json:"adult"`
	Department       string         `json:"known_for_department,omitempty"`
}

// GenreNames maps genre IDs to names, as returned by tmdb.GenreList.
type GenreNames map[int]string

// NewGenreNames indexes a genre list by ID.
func NewGenreNames(genres ...[]tmdb.Genre) GenreNames {
	names := make(GenreNames)
	for _, list := range genres {
		for _, g := range list {
			names[g.ID] = g.Name
		}
	}
	return names
}

func (g GenreNames) resolve(ids []int) []string {
	if len(g) == 0 || len(ids) == 0 {
		return nil
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := g[id]; ok {
			out = append(out, name)
		}
	}
	return out
}

// FromMovie builds an Item from a movie list entry.
func FromMovie(m tmdb.MovieShort, genres GenreNames) Item {
	return Item{
		MediaType:        tmdb.MediaTypeMovie,
		ID:               m.ID,
		Title:            m.Title,
		OriginalTitle:    m.OriginalTitle,
		OriginalLanguage: m.OriginalLanguage,
		Overview:         m.Overview,
		ReleaseDate:      m.ReleaseDate.Time,
		Year:             m.Year(),
		GenreIDs:         m.GenreIDs,
		Genres:           genres.resolve(m.GenreIDs),
		Popularity:       m.Popularity,
		VoteAverage:      m.VoteAverage,
		VoteCount:        m.VoteCount,
		Adult:            m.Adult,
	}
}

// FromTVShow builds an Item from a TV show list entry.
func FromTVShow(s tmdb.TVShowShort, genres GenreNames) Item {
	return Item{
		MediaType:        tmdb.MediaTypeTV,
		ID:               s.ID,
		Title:            s.Name,
		OriginalTitle:    s.OriginalName,
		OriginalLanguage: s.OriginalLanguage,
		Overview:         s.Overview,
		ReleaseDate:      s.FirstAirDate.Time,
		Year:             s.Year(),
		GenreIDs:         s.GenreIDs,
		Genres:           genres.resolve(s.GenreIDs),
		OriginCountry:    s.OriginCountry,
		Popularity:       s.Popularity,
		VoteAverage:      s.VoteAverage,
		VoteCount:        s.VoteCount,
		Adult:            s.Adult,
	}
}

// FromPerson builds an Item from a person search result.
func FromPerson(p tmdb.PersonResult) Item {
	return Item{
		MediaType:     tmdb.MediaTypePerson,
		ID:            p.ID,
		Title:         p.Name,
		OriginalTitle: p.OriginalName,
		Popularity:    p.Popularity,
		Adult:         p.Adult,
		Department:    p.KnownForDepartment,
	}
}

// FromMulti builds an Item from whichever entity a multi search hit holds.
func FromMulti(r tmdb.MultiResult, genres GenreNames) Item {
	switch {
	case r.Movie != nil:
		return FromMovie(*r.Movie, genres)
	case r.TVShow != nil:
		return FromTVShow(*r.TVShow, genres)
	case r.Person != nil:
		return FromPerson(*r.Person)
	}
	return Item{MediaType: r.MediaType}
}

// Movies converts a page of movies.
func Movies(movies []tmdb.MovieShort, genres GenreNames) []Item {
	items := make([]Item, len(movies))
	for i, m := range movies {
		items[i] = FromMovie(m, genres)
	}
	return items
}

// TVShows converts a page of shows.
func TVShows(shows []tmdb.TVShowShort, genres GenreNames) []Item {
	items := make([]Item, len(shows))
	for i, s := range shows {
		items[i] = FromTVShow(s, genres)
	}
	return items
}
