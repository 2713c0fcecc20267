package tmdb

import (
	"context"
	"fmt"
)

// TVShowBase holds the fields shared by every TV show representation
type TVShowBase struct {
	ID               int      `json:"id"`
	Name             string   `json:"name"`
	OriginalName     string   `json:"original_name"`
	OriginalLanguage string   `json:"original_language"`
	OriginCountry    []string `json:"origin_country"`
	Overview         string   `json:"overview"`
	FirstAirDate     Date     `json:"first_air_date"`
	PosterPath       string   `json:"poster_path"`
	BackdropPath     string   `json:"backdrop_path"`
	Popularity       float64  `json:"popularity"`
	VoteCount        int      `json:"vote_count"`
	VoteAverage      float64  `json:"vote_average"`
	Adult            bool     `json:"adult"`
}

// Year returns the first air year, or 0 when unknown.
func (s *TVShowBase) Year() int {
	if s.FirstAirDate.IsZero() {
		return 0
	}
	return s.FirstAirDate.Year()
}

// TVShowShort is a show as it appears in lists and search results
type TVShowShort struct {
	TVShowBase
	GenreIDs []int `json:"genre_ids"`
}

// EpisodeShort is an episode summary
type EpisodeShort struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Overview       string  `json:"overview"`
	AirDate        Date    `json:"air_date"`
	EpisodeNumber  int     `json:"episode_number"`
	SeasonNumber   int     `json:"season_number"`
	ProductionCode string  `json:"production_code"`
	Runtime        *int    `json:"runtime"`
	ShowID         int     `json:"show_id,omitempty"`
	StillPath      string  `json:"still_path"`
	VoteAverage    float64 `json:"vote_average"`
	VoteCount      int     `json:"vote_count"`
}

// Episode is the full episode record
type Episode struct {
	EpisodeShort
	Crew       []Crew `json:"crew"`
	GuestStars []Cast `json:"guest_stars"`
}

// SeasonBase holds the fields shared by every season representation
type SeasonBase struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Overview     string `json:"overview"`
	AirDate      Date   `json:"air_date"`
	PosterPath   string `json:"poster_path"`
	SeasonNumber int    `json:"season_number"`
}

// SeasonShort is a season summary as listed on a show
type SeasonShort struct {
	SeasonBase
	EpisodeCount int     `json:"episode_count"`
	VoteAverage  float64 `json:"vote_average"`
}

// Season is the full season record
type Season struct {
	InternalID string `json:"_id"`
	SeasonBase
	Episodes []Episode `json:"episodes"`
}

// TVShow is the full TV show record
type TVShow struct {
	TVShowBase
	CreatedBy           []PersonShort  `json:"created_by"`
	EpisodeRunTime      []int          `json:"episode_run_time"`
	Genres              []Genre        `json:"genres"`
	Homepage            string         `json:"homepage"`
	InProduction        bool           `json:"in_production"`
	Languages           []string       `json:"languages"`
	LastAirDate         Date           `json:"last_air_date"`
	LastEpisodeToAir    *EpisodeShort  `json:"last_episode_to_air"`
	NextEpisodeToAir    *EpisodeShort  `json:"next_episode_to_air"`
	Networks            []CompanyShort `json:"networks"`
	NumberOfEpisodes    int            `json:"number_of_episodes"`
	NumberOfSeasons     int            `json:"number_of_seasons"`
	ProductionCompanies []CompanyShort `json:"production_companies"`
	ProductionCountries []Country      `json:"production_countries"`
	Seasons             []SeasonShort  `json:"seasons"`
	SpokenLanguages     []Language     `json:"spoken_languages"`
	Status              string         `json:"status"`
	Tagline             string         `json:"tagline"`
	Type                string         `json:"type"`
}

// TVDetails fetches the primary information about a TV show.
type TVDetails struct {
	TVID     int    `url:"-"`
	Language string `url:"language,omitempty"`
}

func (c TVDetails) Path() string { return fmt.Sprintf("/tv/%d", c.TVID) }

// Execute runs the command.
func (c TVDetails) Execute(ctx context.Context, r Requester) (*TVShow, error) {
	return execute[TVShow](ctx, r, c)
}

// Role is one character played across episodes
type Role struct {
	CreditID     string `json:"credit_id"`
	Character    string `json:"character"`
	EpisodeCount int    `json:"episode_count"`
}

// Job is one crew job held across episodes
type Job struct {
	CreditID     string `json:"credit_id"`
	Job          string `json:"job"`
	EpisodeCount int    `json:"episode_count"`
}

// AggregatePerson holds the person fields of an aggregate credit
type AggregatePerson struct {
	ID                 int     `json:"id"`
	Adult              bool    `json:"adult"`
	Gender             int     `json:"gender"`
	KnownForDepartment string  `json:"known_for_department"`
	Name               string  `json:"name"`
	OriginalName       string  `json:"original_name"`
	Popularity         float64 `json:"popularity"`
	ProfilePath        string  `json:"profile_path"`
	TotalEpisodeCount  int     `json:"total_episode_count"`
}

// CastPerson is an actor credited across the whole show
type CastPerson struct {
	AggregatePerson
	Roles []Role `json:"roles"`
	Order int    `json:"order"`
}

// CrewPerson is a crew member credited across the whole show
type CrewPerson struct {
	AggregatePerson
	Jobs       []Job  `json:"jobs"`
	Department string `json:"department"`
}

// AggregateCredits is the response of TVAggregateCredits
type AggregateCredits struct {
	ID   int          `json:"id"`
	Cast []CastPerson `json:"cast"`
	Crew []CrewPerson `json:"crew"`
}

// TVAggregateCredits fetches the cast and crew of every season of a show.
type TVAggregateCredits struct {
	TVID     int    `url:"-"`
	Language string `url:"language,omitempty"`
}

func (c TVAggregateCredits) Path() string { return fmt.Sprintf("/tv/%d/aggregate_credits", c.TVID) }

// Execute runs the command.
func (c TVAggregateCredits) Execute(ctx context.Context, r Requester) (*AggregateCredits, error) {
	return execute[AggregateCredits](ctx, r, c)
}

// ContentRating is the certification of a show in one country
type ContentRating struct {
	Descriptors []string `json:"descriptors"`
	ISO3166_1   string   `json:"iso_3166_1"`
	Rating      string   `json:"rating"`
}

// TVContentRatings fetches the content ratings of a show.
type TVContentRatings struct {
	TVID int `url:"-"`
}

func (c TVContentRatings) Path() string { return fmt.Sprintf("/tv/%d/content_ratings", c.TVID) }

// Execute runs the command and unwraps the results list.
func (c TVContentRatings) Execute(ctx context.Context, r Requester) ([]ContentRating, error) {
	res, err := execute[results[[]ContentRating]](ctx, r, c)
	if err != nil {
		return nil, err
	}
	return res.Results, nil
}

// TVExternalIDs fetches the IMDb, TVDB and social identifiers of a show.
type TVExternalIDs struct {
	TVID int `url:"-"`
}

func (c TVExternalIDs) Path() string { return fmt.Sprintf("/tv/%d/external_ids", c.TVID) }

// Execute runs the command.
func (c TVExternalIDs) Execute(ctx context.Context, r Requester) (*ExternalIDs, error) {
	return execute[ExternalIDs](ctx, r, c)
}

// TVImages fetches the posters, backdrops and logos of a show.
type TVImages struct {
	TVID     int    `url:"-"`
	Language string `url:"language,omitempty"`
}

func (c TVImages) Path() string { return fmt.Sprintf("/tv/%d/images", c.TVID) }

// Execute runs the command.
func (c TVImages) Execute(ctx context.Context, r Requester) (*Images, error) {
	return execute[Images](ctx, r, c)
}

// TVKeywords fetches the keywords attached to a show.
type TVKeywords struct {
	TVID int `url:"-"`
}

func (c TVKeywords) Path() string { return fmt.Sprintf("/tv/%d/keywords", c.TVID) }

// Execute runs the command and unwraps the results list.
func (c TVKeywords) Execute(ctx context.Context, r Requester) ([]Keyword, error) {
	res, err := execute[results[[]Keyword]](ctx, r, c)
	if err != nil {
		return nil, err
	}
	return res.Results, nil
}

// TVLatest fetches the most recently created show.
type TVLatest struct {
	LanguageParams
}

func (TVLatest) Path() string { return "/tv/latest" }

// Execute runs the command.
func (c TVLatest) Execute(ctx context.Context, r Requester) (*TVShow, error) {
	return execute[TVShow](ctx, r, c)
}

// TVSimilar fetches shows similar to a given show.
type TVSimilar struct {
	TVID int `url:"-"`
	LanguagePageParams
}

func (c TVSimilar) Path() string { return fmt.Sprintf("/tv/%d/similar", c.TVID) }

// Execute runs the command.
func (c TVSimilar) Execute(ctx context.Context, r Requester) (*Page[TVShowShort], error) {
	return execute[Page[TVShowShort]](ctx, r, c)
}

// TVWatchProviders fetches where a show can be streamed, rented or bought.
type TVWatchProviders struct {
	TVID int `url:"-"`
}

func (c TVWatchProviders) Path() string { return fmt.Sprintf("/tv/%d/watch/providers", c.TVID) }

// Execute runs the command.
func (c TVWatchProviders) Execute(ctx context.Context, r Requester) (*WatchProviderResult, error) {
	return execute[WatchProviderResult](ctx, r, c)
}

// TVSeasonDetails fetches a season with its episodes.
type TVSeasonDetails struct {
	TVID         int    `url:"-"`
	SeasonNumber int    `url:"-"`
	Language     string `url:"language,omitempty"`
}

func (c TVSeasonDetails) Path() string {
	return fmt.Sprintf("/tv/%d/season/%d", c.TVID, c.SeasonNumber)
}

// Execute runs the command.
func (c TVSeasonDetails) Execute(ctx context.Context, r Requester) (*Season, error) {
	return execute[Season](ctx, r, c)
}

// TVEpisodeDetails fetches a single episode.
type TVEpisodeDetails struct {
	TVID          int    `url:"-"`
	SeasonNumber  int    `url:"-"`
	EpisodeNumber int    `url:"-"`
	Language      string `url:"language,omitempty"`
}

func (c TVEpisodeDetails) Path() string {
	return fmt.Sprintf("/tv/%d/season/%d/episode/%d", c.TVID, c.SeasonNumber, c.EpisodeNumber)
}

// Execute runs the command.
func (c TVEpisodeDetails) Execute(ctx context.Context, r Requester) (*Episode, error) {
	return execute[Episode](ctx, r, c)
}

// TVSearch searches shows by name.
type TVSearch struct {
	Query            string `url:"query"`
	Language         string `url:"language,omitempty"`
	Page             int    `url:"page,omitempty"`
	IncludeAdult     bool   `url:"include_adult,omitempty"`
	Region           string `url:"region,omitempty"`
	Year             int    `url:"year,omitempty"`
	FirstAirDateYear int    `url:"first_air_date_year,omitempty"`
}

func (TVSearch) Path() string { return "/search/tv" }

// Execute runs the command.
func (c TVSearch) Execute(ctx context.Context, r Requester) (*Page[TVShowShort], error) {
	return execute[Page[TVShowShort]](ctx, r, c)
}
