package tmdb

import (
	"encoding/json"
	"fmt"
)

// MediaType represents the kind of a TMDB entity
type MediaType string

const (
	// MediaTypeMovie represents a movie
	MediaTypeMovie MediaType = "movie"
	// MediaTypeTV represents a TV show
	MediaTypeTV MediaType = "tv"
	// MediaTypePerson represents a person
	MediaTypePerson MediaType = "person"
	// MediaTypeCollection represents a collection
	MediaTypeCollection MediaType = "collection"
)

// IsMovie checks if the media type is a movie
func (mt MediaType) IsMovie() bool {
	return mt == MediaTypeMovie
}

// IsTV checks if the media type is a TV show
func (mt MediaType) IsTV() bool {
	return mt == MediaTypeTV
}

// checkMediaType reports ErrInvalidMediaType unless mt is one of allowed.
func checkMediaType(mt MediaType, allowed ...MediaType) error {
	for _, a := range allowed {
		if mt == a {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidMediaType, mt)
}

// Status is the production status of a movie
type Status string

const (
	StatusRumored        Status = "Rumored"
	StatusPlanned        Status = "Planned"
	StatusInProduction   Status = "In Production"
	StatusPostProduction Status = "Post Production"
	StatusReleased       Status = "Released"
	StatusCanceled       Status = "Canceled"
)

// IsReleased checks if the movie has been released
func (s Status) IsReleased() bool {
	return s == StatusReleased
}

// Genre is a movie or TV genre
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Country is a production country
type Country struct {
	ISO3166_1 string `json:"iso_3166_1"`
	Name      string `json:"name"`
}

// Language is a spoken language
type Language struct {
	ISO639_1    string `json:"iso_639_1"`
	Name        string `json:"name"`
	EnglishName string `json:"english_name,omitempty"`
}

// Keyword is a tag attached to a movie or TV show
type Keyword struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Image describes one poster, backdrop, logo or still
type Image struct {
	AspectRatio float64 `json:"aspect_ratio"`
	FilePath    string  `json:"file_path"`
	Height      int     `json:"height"`
	Width       int     `json:"width"`
	ISO639_1    string  `json:"iso_639_1"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int     `json:"vote_count"`
}

// Images groups the artwork of a movie or TV show
type Images struct {
	ID        int     `json:"id"`
	Backdrops []Image `json:"backdrops"`
	Posters   []Image `json:"posters"`
	Logos     []Image `json:"logos"`
}

// Video is a trailer, teaser or clip hosted on an external site
type Video struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Site        string    `json:"site"`
	Key         string    `json:"key"`
	Size        int       `json:"size"`
	Official    bool      `json:"official"`
	PublishedAt Timestamp `json:"published_at"`
	ISO639_1    string    `json:"iso_639_1"`
	ISO3166_1   string    `json:"iso_3166_1"`
}

// ExternalIDs maps a TMDB entity to identifiers on other services. Fields a
// resource type does not carry stay empty.
type ExternalIDs struct {
	ID          int    `json:"id"`
	IMDbID      string `json:"imdb_id"`
	FreebaseMID string `json:"freebase_mid"`
	FreebaseID  string `json:"freebase_id"`
	TVDBID      *int   `json:"tvdb_id"`
	TVRageID    *int   `json:"tvrage_id"`
	WikidataID  string `json:"wikidata_id"`
	FacebookID  string `json:"facebook_id"`
	InstagramID string `json:"instagram_id"`
	TwitterID   string `json:"twitter_id"`
	TikTokID    string `json:"tiktok_id"`
	YoutubeID   string `json:"youtube_id"`
}

// AlternativeTitle is a localized title
type AlternativeTitle struct {
	ISO3166_1 string `json:"iso_3166_1"`
	Title     string `json:"title"`
	Type      string `json:"type"`
}

// TranslationData holds the translated fields
type TranslationData struct {
	Title    string `json:"title"`
	Name     string `json:"name,omitempty"`
	Overview string `json:"overview"`
	Homepage string `json:"homepage"`
	Tagline  string `json:"tagline,omitempty"`
	Runtime  int    `json:"runtime,omitempty"`
}

// Translation is one available translation of a movie or TV show
type Translation struct {
	ISO3166_1   string          `json:"iso_3166_1"`
	ISO639_1    string          `json:"iso_639_1"`
	Name        string          `json:"name"`
	EnglishName string          `json:"english_name"`
	Data        TranslationData `json:"data"`
}

// CompanyShort is the company summary embedded in movies and shows
type CompanyShort struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	LogoPath      string `json:"logo_path"`
	OriginCountry string `json:"origin_country"`
}

// PersonShort is the person summary embedded in credits and episodes
type PersonShort struct {
	ID          int    `json:"id"`
	CreditID    string `json:"credit_id,omitempty"`
	Name        string `json:"name"`
	Gender      int    `json:"gender"`
	ProfilePath string `json:"profile_path"`
}

// Cast is an acting credit
type Cast struct {
	PersonShort
	Adult              bool    `json:"adult"`
	KnownForDepartment string  `json:"known_for_department"`
	OriginalName       string  `json:"original_name"`
	Popularity         float64 `json:"popularity"`
	CastID             int     `json:"cast_id"`
	Character          string  `json:"character"`
	Order              int     `json:"order"`
}

// Crew is a non-acting credit
type Crew struct {
	PersonShort
	Adult              bool    `json:"adult"`
	KnownForDepartment string  `json:"known_for_department"`
	OriginalName       string  `json:"original_name"`
	Popularity         float64 `json:"popularity"`
	Department         string  `json:"department"`
	Job                string  `json:"job"`
}

// Credits lists the cast and crew of a movie
type Credits struct {
	ID   int    `json:"id"`
	Cast []Cast `json:"cast"`
	Crew []Crew `json:"crew"`
}

// Directors returns the crew members credited as Director.
func (c *Credits) Directors() []Crew {
	var directors []Crew
	for _, member := range c.Crew {
		if member.Job == "Director" {
			directors = append(directors, member)
		}
	}
	return directors
}

// ChangeItem is a single edit recorded on a resource. Value and OriginalValue
// differ in shape per key and are kept raw.
type ChangeItem struct {
	ID            string          `json:"id"`
	Action        string          `json:"action"`
	Time          Timestamp       `json:"time"`
	ISO639_1      string          `json:"iso_639_1"`
	ISO3166_1     string          `json:"iso_3166_1"`
	Value         json.RawMessage `json:"value,omitempty"`
	OriginalValue json.RawMessage `json:"original_value,omitempty"`
}

// ChangeSet groups the edits made to one key of a resource
type ChangeSet struct {
	Key   string       `json:"key"`
	Items []ChangeItem `json:"items"`
}

// ChangeSets is the response of the per-resource changes endpoints
type ChangeSets struct {
	Changes []ChangeSet `json:"changes"`
}

// DateRangeParams filters change endpoints by date.
type DateRangeParams struct {
	StartDate Date `url:"start_date,omitempty"`
	EndDate   Date `url:"end_date,omitempty"`
	Page      int  `url:"page,omitempty"`
}
