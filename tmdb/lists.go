package tmdb

import (
	"context"
	"fmt"
)

// Certification is one rating level of a country's rating system
type Certification struct {
	Certification string `json:"certification"`
	Meaning       string `json:"meaning"`
	Order         int    `json:"order"`
}

// CertificationList fetches the rating systems of every country, keyed by
// ISO 3166-1 code.
type CertificationList struct {
	MediaType MediaType `url:"-"`
}

func (c CertificationList) Path() string {
	return fmt.Sprintf("/certification/%s/list", c.MediaType)
}

// Execute runs the command and unwraps the certifications map.
func (c CertificationList) Execute(ctx context.Context, r Requester) (map[string][]Certification, error) {
	if err := checkMediaType(c.MediaType, MediaTypeMovie, MediaTypeTV); err != nil {
		return nil, err
	}
	var res struct {
		Certifications map[string][]Certification `json:"certifications"`
	}
	if err := r.Do(ctx, c, &res); err != nil {
		return nil, err
	}
	return res.Certifications, nil
}

// GenreList fetches the official genres for movies or TV shows.
type GenreList struct {
	MediaType MediaType `url:"-"`
	Language  string    `url:"language,omitempty"`
}

func (c GenreList) Path() string { return fmt.Sprintf("/genre/%s/list", c.MediaType) }

// Execute runs the command and unwraps the genres list.
func (c GenreList) Execute(ctx context.Context, r Requester) ([]Genre, error) {
	if err := checkMediaType(c.MediaType, MediaTypeMovie, MediaTypeTV); err != nil {
		return nil, err
	}
	var res struct {
		Genres []Genre `json:"genres"`
	}
	if err := r.Do(ctx, c, &res); err != nil {
		return nil, err
	}
	return res.Genres, nil
}

// Change is an entry of the global change lists. TMDB sends null id and adult
// for deleted entries.
type Change struct {
	ID    *int  `json:"id"`
	Adult *bool `json:"adult"`
}

// ChangeList lists the IDs of movies, shows or people edited in a date range.
type ChangeList struct {
	MediaType MediaType `url:"-"`
	DateRangeParams
}

func (c ChangeList) Path() string { return fmt.Sprintf("/%s/changes", c.MediaType) }

// Execute runs the command.
func (c ChangeList) Execute(ctx context.Context, r Requester) (*Page[Change], error) {
	if err := checkMediaType(c.MediaType, MediaTypeMovie, MediaTypeTV, MediaTypePerson); err != nil {
		return nil, err
	}
	return execute[Page[Change]](ctx, r, c)
}

// WatchProvider is a streaming, rental or purchase service
type WatchProvider struct {
	ProviderID      int    `json:"provider_id"`
	ProviderName    string `json:"provider_name"`
	DisplayPriority int    `json:"display_priority"`
	LogoPath        string `json:"logo_path"`
}

// LocatedWatchProvider lists the providers available in one country
type LocatedWatchProvider struct {
	Link     string          `json:"link"`
	Flatrate []WatchProvider `json:"flatrate,omitempty"`
	Rent     []WatchProvider `json:"rent,omitempty"`
	Buy      []WatchProvider `json:"buy,omitempty"`
	Free     []WatchProvider `json:"free,omitempty"`
	Ads      []WatchProvider `json:"ads,omitempty"`
}

// WatchProviderResult maps ISO 3166-1 country codes to providers
type WatchProviderResult struct {
	ID      int                             `json:"id"`
	Results map[string]LocatedWatchProvider `json:"results"`
}

// Region returns the providers of a country, or false when none are listed.
func (w *WatchProviderResult) Region(code string) (LocatedWatchProvider, bool) {
	p, ok := w.Results[code]
	return p, ok
}

// WatchProviderDetail is a provider with its per-country display priority
type WatchProviderDetail struct {
	WatchProvider
	DisplayPriorities map[string]int `json:"display_priorities"`
}

// WatchProviderList lists every provider TMDB knows for movies or TV shows.
type WatchProviderList struct {
	MediaType   MediaType `url:"-"`
	WatchRegion string    `url:"watch_region,omitempty"`
	Language    string    `url:"language,omitempty"`
}

func (c WatchProviderList) Path() string { return fmt.Sprintf("/watch/providers/%s", c.MediaType) }

// Execute runs the command and unwraps the results list.
func (c WatchProviderList) Execute(ctx context.Context, r Requester) ([]WatchProviderDetail, error) {
	if err := checkMediaType(c.MediaType, MediaTypeMovie, MediaTypeTV); err != nil {
		return nil, err
	}
	res, err := execute[results[[]WatchProviderDetail]](ctx, r, c)
	if err != nil {
		return nil, err
	}
	return res.Results, nil
}
