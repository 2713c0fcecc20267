package tmdb

import (
	"context"
	"fmt"
)

// CollectionBase is a collection summary, also embedded in movies
type CollectionBase struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Overview     string `json:"overview,omitempty"`
	PosterPath   string `json:"poster_path"`
	BackdropPath string `json:"backdrop_path"`
}

// CollectionPart is one movie of a collection
type CollectionPart struct {
	ID               int       `json:"id"`
	MediaType        MediaType `json:"media_type"`
	Title            string    `json:"title"`
	OriginalTitle    string    `json:"original_title"`
	OriginalLanguage string    `json:"original_language"`
	Overview         string    `json:"overview"`
	PosterPath       string    `json:"poster_path"`
	BackdropPath     string    `json:"backdrop_path"`
	GenreIDs         []int     `json:"genre_ids"`
	Popularity       float64   `json:"popularity"`
	Adult            bool      `json:"adult"`
	Video            bool      `json:"video"`
	VoteAverage      float64   `json:"vote_average"`
	VoteCount        int       `json:"vote_count"`
	ReleaseDate      Date      `json:"release_date"`
}

// Collection is a collection with its parts
type Collection struct {
	CollectionBase
	Parts []CollectionPart `json:"parts"`
}

// CollectionDetails fetches a collection and its movies.
type CollectionDetails struct {
	CollectionID int    `url:"-"`
	Language     string `url:"language,omitempty"`
}

func (c CollectionDetails) Path() string { return fmt.Sprintf("/collection/%d", c.CollectionID) }

// Execute runs the command.
func (c CollectionDetails) Execute(ctx context.Context, r Requester) (*Collection, error) {
	return execute[Collection](ctx, r, c)
}
