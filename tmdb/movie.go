package tmdb

import (
	"context"
	"fmt"
)

// MovieBase holds the fields shared by every movie representation
type MovieBase struct {
	ID               int     `json:"id"`
	Title            string  `json:"title"`
	OriginalTitle    string  `json:"original_title"`
	OriginalLanguage string  `json:"original_language"`
	Overview         string  `json:"overview"`
	ReleaseDate      Date    `json:"release_date"`
	PosterPath       string  `json:"poster_path"`
	BackdropPath     string  `json:"backdrop_path"`
	Adult            bool    `json:"adult"`
	Popularity       float64 `json:"popularity"`
	VoteCount        int     `json:"vote_count"`
	VoteAverage      float64 `json:"vote_average"`
	Video            bool    `json:"video"`
}

// Year returns the release year, or 0 when the release date is unknown.
func (m *MovieBase) Year() int {
	if m.ReleaseDate.IsZero() {
		return 0
	}
	return m.ReleaseDate.Year()
}

// MovieShort is a movie as it appears in lists and search results
type MovieShort struct {
	MovieBase
	GenreIDs []int `json:"genre_ids"`
}

// Movie is the full movie record
type Movie struct {
	MovieBase
	Budget              int             `json:"budget"`
	Genres              []Genre         `json:"genres"`
	Homepage            string          `json:"homepage"`
	IMDbID              string          `json:"imdb_id"`
	ProductionCompanies []CompanyShort  `json:"production_companies"`
	ProductionCountries []Country       `json:"production_countries"`
	Revenue             int64           `json:"revenue"`
	Runtime             *int            `json:"runtime"`
	SpokenLanguages     []Language      `json:"spoken_languages"`
	Status              Status          `json:"status"`
	Tagline             string          `json:"tagline"`
	BelongsToCollection *CollectionBase `json:"belongs_to_collection"`
}

// MovieDetails fetches the primary information about a movie.
type MovieDetails struct {
	MovieID  int    `url:"-"`
	Language string `url:"language,omitempty"`
}

func (c MovieDetails) Path() string { return fmt.Sprintf("/movie/%d", c.MovieID) }

// Execute runs the command.
func (c MovieDetails) Execute(ctx context.Context, r Requester) (*Movie, error) {
	return execute[Movie](ctx, r, c)
}

// AlternativeTitles is the response of MovieAlternativeTitles
type AlternativeTitles struct {
	ID     int                `json:"id"`
	Titles []AlternativeTitle `json:"titles"`
}

// MovieAlternativeTitles fetches the localized titles of a movie.
type MovieAlternativeTitles struct {
	MovieID int    `url:"-"`
	Country string `url:"country,omitempty"`
}

func (c MovieAlternativeTitles) Path() string {
	return fmt.Sprintf("/movie/%d/alternative_titles", c.MovieID)
}

// Execute runs the command.
func (c MovieAlternativeTitles) Execute(ctx context.Context, r Requester) (*AlternativeTitles, error) {
	return execute[AlternativeTitles](ctx, r, c)
}

// MovieChanges fetches the edit history of a movie, 14 days at most.
type MovieChanges struct {
	MovieID int `url:"-"`
	DateRangeParams
}

func (c MovieChanges) Path() string { return fmt.Sprintf("/movie/%d/changes", c.MovieID) }

// Execute runs the command.
func (c MovieChanges) Execute(ctx context.Context, r Requester) (*ChangeSets, error) {
	return execute[ChangeSets](ctx, r, c)
}

// MovieCredits fetches the cast and crew of a movie.
type MovieCredits struct {
	MovieID  int    `url:"-"`
	Language string `url:"language,omitempty"`
}

func (c MovieCredits) Path() string { return fmt.Sprintf("/movie/%d/credits", c.MovieID) }

// Execute runs the command.
func (c MovieCredits) Execute(ctx context.Context, r Requester) (*Credits, error) {
	return execute[Credits](ctx, r, c)
}

// MovieExternalIDs fetches the IMDb and social identifiers of a movie.
type MovieExternalIDs struct {
	MovieID int `url:"-"`
}

func (c MovieExternalIDs) Path() string { return fmt.Sprintf("/movie/%d/external_ids", c.MovieID) }

// Execute runs the command.
func (c MovieExternalIDs) Execute(ctx context.Context, r Requester) (*ExternalIDs, error) {
	return execute[ExternalIDs](ctx, r, c)
}

// MovieImages fetches the posters, backdrops and logos of a movie.
type MovieImages struct {
	MovieID  int    `url:"-"`
	Language string `url:"language,omitempty"`
}

func (c MovieImages) Path() string { return fmt.Sprintf("/movie/%d/images", c.MovieID) }

// Execute runs the command.
func (c MovieImages) Execute(ctx context.Context, r Requester) (*Images, error) {
	return execute[Images](ctx, r, c)
}

// MovieKeywordsResult is the response of MovieKeywords
type MovieKeywordsResult struct {
	ID       int       `json:"id"`
	Keywords []Keyword `json:"keywords"`
}

// MovieKeywords fetches the keywords attached to a movie.
type MovieKeywords struct {
	MovieID int `url:"-"`
}

func (c MovieKeywords) Path() string { return fmt.Sprintf("/movie/%d/keywords", c.MovieID) }

// Execute runs the command.
func (c MovieKeywords) Execute(ctx context.Context, r Requester) (*MovieKeywordsResult, error) {
	return execute[MovieKeywordsResult](ctx, r, c)
}

// MovieList is a user list a movie belongs to
type MovieList struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	ListType      string `json:"list_type"`
	PosterPath    string `json:"poster_path"`
	ISO639_1      string `json:"iso_639_1"`
	ItemCount     int    `json:"item_count"`
	FavoriteCount int    `json:"favorite_count"`
}

// MovieLists fetches the lists a movie has been added to.
type MovieLists struct {
	MovieID int `url:"-"`
	LanguagePageParams
}

func (c MovieLists) Path() string { return fmt.Sprintf("/movie/%d/lists", c.MovieID) }

// Execute runs the command.
func (c MovieLists) Execute(ctx context.Context, r Requester) (*Page[MovieList], error) {
	return execute[Page[MovieList]](ctx, r, c)
}

// MovieRecommendations fetches movies recommended from a given movie.
type MovieRecommendations struct {
	MovieID int `url:"-"`
	LanguagePageParams
}

func (c MovieRecommendations) Path() string {
	return fmt.Sprintf("/movie/%d/recommendations", c.MovieID)
}

// Execute runs the command.
func (c MovieRecommendations) Execute(ctx context.Context, r Requester) (*Page[MovieShort], error) {
	return execute[Page[MovieShort]](ctx, r, c)
}

// MovieSimilar fetches movies similar to a given movie.
type MovieSimilar struct {
	MovieID int `url:"-"`
	LanguagePageParams
}

func (c MovieSimilar) Path() string { return fmt.Sprintf("/movie/%d/similar", c.MovieID) }

// Execute runs the command.
func (c MovieSimilar) Execute(ctx context.Context, r Requester) (*Page[MovieShort], error) {
	return execute[Page[MovieShort]](ctx, r, c)
}

// ReleaseType classifies a release date
type ReleaseType int

const (
	ReleaseTypePremiere ReleaseType = iota + 1
	ReleaseTypeTheatricalLimited
	ReleaseTypeTheatrical
	ReleaseTypeDigital
	ReleaseTypePhysical
	ReleaseTypeTV
)

// String returns the string representation of a ReleaseType
func (rt ReleaseType) String() string {
	switch rt {
	case ReleaseTypePremiere:
		return "Premiere"
	case ReleaseTypeTheatricalLimited:
		return "Theatrical (limited)"
	case ReleaseTypeTheatrical:
		return "Theatrical"
	case ReleaseTypeDigital:
		return "Digital"
	case ReleaseTypePhysical:
		return "Physical"
	case ReleaseTypeTV:
		return "TV"
	default:
		return "Unknown"
	}
}

// ReleaseDate is one release of a movie in a country
type ReleaseDate struct {
	Certification string      `json:"certification"`
	Descriptors   []string    `json:"descriptors"`
	ISO639_1      string      `json:"iso_639_1"`
	Note          string      `json:"note"`
	ReleaseDate   Timestamp   `json:"release_date"`
	Type          ReleaseType `json:"type"`
}

// LocatedReleaseDates groups release dates by country
type LocatedReleaseDates struct {
	ISO3166_1    string        `json:"iso_3166_1"`
	ReleaseDates []ReleaseDate `json:"release_dates"`
}

// MovieReleaseDates fetches the release dates and certifications of a movie.
type MovieReleaseDates struct {
	MovieID int `url:"-"`
}

func (c MovieReleaseDates) Path() string { return fmt.Sprintf("/movie/%d/release_dates", c.MovieID) }

// Execute runs the command.
func (c MovieReleaseDates) Execute(ctx context.Context, r Requester) (*EntityResults[[]LocatedReleaseDates], error) {
	return execute[EntityResults[[]LocatedReleaseDates]](ctx, r, c)
}

// AuthorDetails describes the author of a review
type AuthorDetails struct {
	Name       string   `json:"name"`
	Username   string   `json:"username"`
	AvatarPath string   `json:"avatar_path"`
	Rating     *float64 `json:"rating"`
}

// Review is a user review
type Review struct {
	ID            string        `json:"id"`
	Author        string        `json:"author"`
	AuthorDetails AuthorDetails `json:"author_details"`
	Content       string        `json:"content"`
	URL           string        `json:"url"`
	CreatedAt     Timestamp     `json:"created_at"`
	UpdatedAt     Timestamp     `json:"updated_at"`
}

// MovieReviews fetches the user reviews of a movie.
type MovieReviews struct {
	MovieID int `url:"-"`
	LanguagePageParams
}

func (c MovieReviews) Path() string { return fmt.Sprintf("/movie/%d/reviews", c.MovieID) }

// Execute runs the command.
func (c MovieReviews) Execute(ctx context.Context, r Requester) (*Page[Review], error) {
	return execute[Page[Review]](ctx, r, c)
}

// Translations is the response of the translations endpoints
type Translations struct {
	ID           int           `json:"id"`
	Translations []Translation `json:"translations"`
}

// MovieTranslations fetches the translations of a movie.
type MovieTranslations struct {
	MovieID int `url:"-"`
}

func (c MovieTranslations) Path() string { return fmt.Sprintf("/movie/%d/translations", c.MovieID) }

// Execute runs the command.
func (c MovieTranslations) Execute(ctx context.Context, r Requester) (*Translations, error) {
	return execute[Translations](ctx, r, c)
}

// MovieVideos fetches the trailers and clips of a movie.
type MovieVideos struct {
	MovieID  int    `url:"-"`
	Language string `url:"language,omitempty"`
}

func (c MovieVideos) Path() string { return fmt.Sprintf("/movie/%d/videos", c.MovieID) }

// Execute runs the command.
func (c MovieVideos) Execute(ctx context.Context, r Requester) (*EntityResults[[]Video], error) {
	return execute[EntityResults[[]Video]](ctx, r, c)
}

// MovieWatchProviders fetches where a movie can be streamed, rented or bought.
type MovieWatchProviders struct {
	MovieID int `url:"-"`
}

func (c MovieWatchProviders) Path() string {
	return fmt.Sprintf("/movie/%d/watch/providers", c.MovieID)
}

// Execute runs the command.
func (c MovieWatchProviders) Execute(ctx context.Context, r Requester) (*WatchProviderResult, error) {
	return execute[WatchProviderResult](ctx, r, c)
}

// MovieLatest fetches the most recently created movie.
type MovieLatest struct {
	LanguageParams
}

func (MovieLatest) Path() string { return "/movie/latest" }

// Execute runs the command.
func (c MovieLatest) Execute(ctx context.Context, r Requester) (*Movie, error) {
	return execute[Movie](ctx, r, c)
}

// MoviePopular lists movies ordered by popularity.
type MoviePopular struct {
	ListParams
}

func (MoviePopular) Path() string { return "/movie/popular" }

// Execute runs the command.
func (c MoviePopular) Execute(ctx context.Context, r Requester) (*Page[MovieShort], error) {
	return execute[Page[MovieShort]](ctx, r, c)
}

// MovieTopRated lists movies ordered by rating.
type MovieTopRated struct {
	ListParams
}

func (MovieTopRated) Path() string { return "/movie/top_rated" }

// Execute runs the command.
func (c MovieTopRated) Execute(ctx context.Context, r Requester) (*Page[MovieShort], error) {
	return execute[Page[MovieShort]](ctx, r, c)
}

// MovieUpcoming lists movies about to be released.
type MovieUpcoming struct {
	ListParams
}

func (MovieUpcoming) Path() string { return "/movie/upcoming" }

// Execute runs the command.
func (c MovieUpcoming) Execute(ctx context.Context, r Requester) (*NowPlayingResult, error) {
	return execute[NowPlayingResult](ctx, r, c)
}

// DateRange bounds the release window of now playing and upcoming lists
type DateRange struct {
	Minimum Date `json:"minimum"`
	Maximum Date `json:"maximum"`
}

// NowPlayingResult is a page of movies with the release window it covers
type NowPlayingResult struct {
	Page[MovieShort]
	Dates DateRange `json:"dates"`
}

// MovieNowPlaying lists movies currently in theatres.
type MovieNowPlaying struct {
	ListParams
}

func (MovieNowPlaying) Path() string { return "/movie/now_playing" }

// Execute runs the command.
func (c MovieNowPlaying) Execute(ctx context.Context, r Requester) (*NowPlayingResult, error) {
	return execute[NowPlayingResult](ctx, r, c)
}

// MovieSearch searches movies by title.
type MovieSearch struct {
	Query              string `url:"query"`
	Language           string `url:"language,omitempty"`
	Page               int    `url:"page,omitempty"`
	IncludeAdult       bool   `url:"include_adult,omitempty"`
	Region             string `url:"region,omitempty"`
	Year               int    `url:"year,omitempty"`
	PrimaryReleaseYear int    `url:"primary_release_year,omitempty"`
}

func (MovieSearch) Path() string { return "/search/movie" }

// Execute runs the command.
func (c MovieSearch) Execute(ctx context.Context, r Requester) (*Page[MovieShort], error) {
	return execute[Page[MovieShort]](ctx, r, c)
}
