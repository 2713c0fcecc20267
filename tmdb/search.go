package tmdb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

// MultiResult is one hit of a multi search. Exactly one of Movie, TVShow and
// Person is set, matching MediaType.
type MultiResult struct {
	MediaType MediaType
	Movie     *MovieShort
	TVShow    *TVShowShort
	Person    *PersonResult
}

// ID returns the TMDB ID of whichever entity is set.
func (m *MultiResult) ID() int {
	switch {
	case m.Movie != nil:
		return m.Movie.ID
	case m.TVShow != nil:
		return m.TVShow.ID
	case m.Person != nil:
		return m.Person.ID
	}
	return 0
}

// Title returns the movie title or show/person name.
func (m *MultiResult) Title() string {
	switch {
	case m.Movie != nil:
		return m.Movie.Title
	case m.TVShow != nil:
		return m.TVShow.Name
	case m.Person != nil:
		return m.Person.Name
	}
	return ""
}

// UnmarshalJSON dispatches on the media_type discriminator.
func (m *MultiResult) UnmarshalJSON(data []byte) error {
	var head struct {
		MediaType MediaType `json:"media_type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}

	*m = MultiResult{MediaType: head.MediaType}
	switch head.MediaType {
	case MediaTypeMovie:
		m.Movie = &MovieShort{}
		return json.Unmarshal(data, m.Movie)
	case MediaTypeTV:
		m.TVShow = &TVShowShort{}
		return json.Unmarshal(data, m.TVShow)
	case MediaTypePerson:
		m.Person = &PersonResult{}
		return json.Unmarshal(data, m.Person)
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMediaType, head.MediaType)
	}
}

// MarshalJSON writes the entity with its media_type discriminator.
func (m MultiResult) MarshalJSON() ([]byte, error) {
	var inner any
	switch {
	case m.Movie != nil:
		inner = m.Movie
	case m.TVShow != nil:
		inner = m.TVShow
	case m.Person != nil:
		inner = m.Person
	default:
		return nil, fmt.Errorf("%w: empty multi result", ErrInvalidMediaType)
	}

	body, err := json.Marshal(inner)
	if err != nil {
		return nil, err
	}
	discriminator, err := json.Marshal(m.MediaType)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(`{"media_type":`)
	buf.Write(discriminator)
	if len(body) > 2 {
		buf.WriteByte(',')
		buf.Write(body[1:])
	} else {
		buf.WriteByte('}')
	}
	return buf.Bytes(), nil
}

// MultiSearch searches movies, shows and people in a single request.
type MultiSearch struct {
	Query        string `url:"query"`
	Language     string `url:"language,omitempty"`
	Page         int    `url:"page,omitempty"`
	IncludeAdult bool   `url:"include_adult,omitempty"`
	Region       string `url:"region,omitempty"`
}

func (MultiSearch) Path() string { return "/search/multi" }

// Execute runs the command.
func (c MultiSearch) Execute(ctx context.Context, r Requester) (*Page[MultiResult], error) {
	return execute[Page[MultiResult]](ctx, r, c)
}
