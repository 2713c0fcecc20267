package tmdb

import (
	"context"
	"fmt"
)

// Person is the full person record
type Person struct {
	PersonShort
	Adult              bool     `json:"adult"`
	AlsoKnownAs        []string `json:"also_known_as"`
	Biography          string   `json:"biography"`
	Birthday           Date     `json:"birthday"`
	Deathday           Date     `json:"deathday"`
	Homepage           string   `json:"homepage"`
	IMDbID             string   `json:"imdb_id"`
	KnownForDepartment string   `json:"known_for_department"`
	Popularity         float64  `json:"popularity"`
	PlaceOfBirth       string   `json:"place_of_birth"`
}

// PersonDetails fetches the primary information about a person.
type PersonDetails struct {
	PersonID int    `url:"-"`
	Language string `url:"language,omitempty"`
}

func (c PersonDetails) Path() string { return fmt.Sprintf("/person/%d", c.PersonID) }

// Execute runs the command.
func (c PersonDetails) Execute(ctx context.Context, r Requester) (*Person, error) {
	return execute[Person](ctx, r, c)
}

// PersonResult is a person as returned by search endpoints
type PersonResult struct {
	ID                 int           `json:"id"`
	Name               string        `json:"name"`
	OriginalName       string        `json:"original_name"`
	Adult              bool          `json:"adult"`
	Gender             int           `json:"gender"`
	KnownForDepartment string        `json:"known_for_department"`
	Popularity         float64       `json:"popularity"`
	ProfilePath        string        `json:"profile_path"`
	KnownFor           []MultiResult `json:"known_for,omitempty"`
}

// PersonSearch searches people by name.
type PersonSearch struct {
	Query        string `url:"query"`
	Language     string `url:"language,omitempty"`
	Page         int    `url:"page,omitempty"`
	IncludeAdult bool   `url:"include_adult,omitempty"`
}

func (PersonSearch) Path() string { return "/search/person" }

// Execute runs the command.
func (c PersonSearch) Execute(ctx context.Context, r Requester) (*Page[PersonResult], error) {
	return execute[Page[PersonResult]](ctx, r, c)
}
