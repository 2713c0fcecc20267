package tmdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonCompanyCollectionEndpoints(t *testing.T) {
	runEndpointCases(t, []endpointCase{
		{
			name:     "person details",
			fixture:  "person-details.json",
			wantPath: "/person/287",
			run: func(ctx context.Context, c *Client) (any, error) {
				return PersonDetails{PersonID: 287}.Execute(ctx, c)
			},
			check: func(t *testing.T, got any) {
				p := got.(*Person)
				assert.Equal(t, 287, p.ID)
				assert.Equal(t, "1963-12-18", p.Birthday.String())
				assert.True(t, p.Deathday.IsZero())
				assert.Empty(t, p.Homepage)
				assert.Len(t, p.AlsoKnownAs, 2)
			},
		},
		{
			name:      "person search",
			fixture:   "person-search.json",
			wantPath:  "/search/person",
			wantQuery: map[string]string{"query": "brad pitt"},
			run: func(ctx context.Context, c *Client) (any, error) {
				return PersonSearch{Query: "brad pitt"}.Execute(ctx, c)
			},
			check: func(t *testing.T, got any) {
				page := got.(*Page[PersonResult])
				require.Len(t, page.Results, 1)
				knownFor := page.Results[0].KnownFor
				require.Len(t, knownFor, 1)
				assert.Equal(t, MediaTypeMovie, knownFor[0].MediaType)
				require.NotNil(t, knownFor[0].Movie)
				assert.Equal(t, "Fight Club", knownFor[0].Movie.Title)
			},
		},
		{
			name:     "company details",
			fixture:  "company-details.json",
			wantPath: "/company/1",
			run: func(ctx context.Context, c *Client) (any, error) {
				return CompanyDetails{CompanyID: 1}.Execute(ctx, c)
			},
			check: func(t *testing.T, got any) {
				company := got.(*Company)
				assert.Equal(t, "Lucasfilm Ltd.", company.Name)
				assert.Empty(t, company.Description)
				assert.Nil(t, company.ParentCompany)
			},
		},
		{
			name:     "company alternative names",
			fixture:  "company-alternative-names.json",
			wantPath: "/company/1/alternative_names",
			run: func(ctx context.Context, c *Client) (any, error) {
				return CompanyAlternativeNames{CompanyID: 1}.Execute(ctx, c)
			},
			check: func(t *testing.T, got any) {
				res := got.(*EntityResults[[]CompanyAlternativeName])
				assert.Equal(t, 1, res.ID)
				require.Len(t, res.Results, 2)
				assert.Empty(t, res.Results[0].Type)
			},
		},
		{
			name:     "company images",
			fixture:  "company-images.json",
			wantPath: "/company/1/images",
			run: func(ctx context.Context, c *Client) (any, error) {
				return CompanyImages{CompanyID: 1}.Execute(ctx, c)
			},
			check: func(t *testing.T, got any) {
				res := got.(*CompanyImagesResult)
				require.Len(t, res.Logos, 1)
				assert.Equal(t, ".svg", res.Logos[0].FileType)
			},
		},
		{
			name:      "collection details",
			fixture:   "collection-details.json",
			wantPath:  "/collection/10",
			wantQuery: map[string]string{"language": "en-US"},
			run: func(ctx context.Context, c *Client) (any, error) {
				return CollectionDetails{CollectionID: 10, Language: "en-US"}.Execute(ctx, c)
			},
			check: func(t *testing.T, got any) {
				col := got.(*Collection)
				assert.Equal(t, "Star Wars Collection", col.Name)
				require.Len(t, col.Parts, 2)
				assert.Equal(t, MediaTypeMovie, col.Parts[0].MediaType)
				assert.Equal(t, 1977, col.Parts[0].ReleaseDate.Year())
				assert.True(t, col.Parts[1].ReleaseDate.IsZero())
			},
		},
	})
}

func TestLookupEndpoints(t *testing.T) {
	runEndpointCases(t, []endpointCase{
		{
			name:     "movie certifications",
			fixture:  "certification-movie-list.json",
			wantPath: "/certification/movie/list",
			run: func(ctx context.Context, c *Client) (any, error) {
				return CertificationList{MediaType: MediaTypeMovie}.Execute(ctx, c)
			},
			check: func(t *testing.T, got any) {
				certs := got.(map[string][]Certification)
				require.Len(t, certs["US"], 3)
				assert.Equal(t, "R", certs["US"][2].Certification)
				assert.Len(t, certs["DE"], 2)
			},
		},
		{
			name:     "tv certifications",
			fixture:  "certification-movie-list.json",
			wantPath: "/certification/tv/list",
			run: func(ctx context.Context, c *Client) (any, error) {
				return CertificationList{MediaType: MediaTypeTV}.Execute(ctx, c)
			},
		},
		{
			name:      "movie genres",
			fixture:   "genre-movie-list.json",
			wantPath:  "/genre/movie/list",
			wantQuery: map[string]string{"language": "en"},
			run: func(ctx context.Context, c *Client) (any, error) {
				return GenreList{MediaType: MediaTypeMovie, Language: "en"}.Execute(ctx, c)
			},
			check: func(t *testing.T, got any) {
				genres := got.([]Genre)
				require.Len(t, genres, 4)
				assert.Equal(t, Genre{ID: 28, Name: "Action"}, genres[0])
			},
		},
		{
			name:     "tv genres",
			fixture:  "genre-tv-list.json",
			wantPath: "/genre/tv/list",
			run: func(ctx context.Context, c *Client) (any, error) {
				return GenreList{MediaType: MediaTypeTV}.Execute(ctx, c)
			},
			check: func(t *testing.T, got any) {
				assert.Len(t, got.([]Genre), 3)
			},
		},
		{
			name:      "movie change list",
			fixture:   "changes-movie-list.json",
			wantPath:  "/movie/changes",
			wantQuery: map[string]string{"start_date": "2024-04-01"},
			run: func(ctx context.Context, c *Client) (any, error) {
				return ChangeList{MediaType: MediaTypeMovie, DateRangeParams: DateRangeParams{
					StartDate: NewDate(2024, time.April, 1),
				}}.Execute(ctx, c)
			},
			check: func(t *testing.T, got any) {
				page := got.(*Page[Change])
				require.Len(t, page.Results, 3)
				require.NotNil(t, page.Results[0].ID)
				assert.Equal(t, 1273108, *page.Results[0].ID)
				assert.Nil(t, page.Results[2].ID)
				assert.Nil(t, page.Results[2].Adult)
				assert.Equal(t, 8, page.TotalPages)
			},
		},
		{
			name:     "person change list",
			fixture:  "changes-movie-list.json",
			wantPath: "/person/changes",
			run: func(ctx context.Context, c *Client) (any, error) {
				return ChangeList{MediaType: MediaTypePerson}.Execute(ctx, c)
			},
		},
		{
			name:      "watch provider list",
			fixture:   "watch-provider-movie-list.json",
			wantPath:  "/watch/providers/movie",
			wantQuery: map[string]string{"watch_region": "US", "language": "en-US"},
			run: func(ctx context.Context, c *Client) (any, error) {
				return WatchProviderList{MediaType: MediaTypeMovie, WatchRegion: "US", Language: "en-US"}.Execute(ctx, c)
			},
			check: func(t *testing.T, got any) {
				providers := got.([]WatchProviderDetail)
				require.Len(t, providers, 2)
				assert.Equal(t, "Netflix", providers[0].ProviderName)
				assert.Equal(t, 2, providers[0].DisplayPriorities["US"])
			},
		},
		{
			name:     "configuration",
			fixture:  "configuration.json",
			wantPath: "/configuration",
			run: func(ctx context.Context, c *Client) (any, error) {
				return Configuration{}.Execute(ctx, c)
			},
			check: func(t *testing.T, got any) {
				cfg := got.(*APIConfiguration)
				assert.True(t, cfg.Images.HasPosterSize("w500"))
				assert.False(t, cfg.Images.HasPosterSize("w501"))
				assert.Equal(t,
					"https://image.tmdb.org/t/p/w500/pB8BM7pdSp6B6Ih7QZ4DrQ3PmJK.jpg",
					cfg.Images.ImageURL("w500", "/pB8BM7pdSp6B6Ih7QZ4DrQ3PmJK.jpg"))
				assert.Equal(t, "", cfg.Images.ImageURL("w500", ""))
				assert.Contains(t, cfg.ChangeKeys, "title")
			},
		},
		{
			name:      "countries",
			fixture:   "configuration-countries.json",
			wantPath:  "/configuration/countries",
			wantQuery: map[string]string{"language": "de-DE"},
			run: func(ctx context.Context, c *Client) (any, error) {
				return Countries{LanguageParams{Language: "de-DE"}}.Execute(ctx, c)
			},
			check: func(t *testing.T, got any) {
				countries := got.([]ConfigCountry)
				require.Len(t, countries, 3)
				assert.Equal(t, "Deutschland", countries[1].NativeName)
			},
		},
		{
			name:     "jobs",
			fixture:  "configuration-jobs.json",
			wantPath: "/configuration/jobs",
			run: func(ctx context.Context, c *Client) (any, error) {
				return Jobs{}.Execute(ctx, c)
			},
			check: func(t *testing.T, got any) {
				jobs := got.([]ConfigJob)
				require.Len(t, jobs, 2)
				assert.Contains(t, jobs[0].Jobs, "Director")
			},
		},
		{
			name:     "languages",
			fixture:  "configuration-languages.json",
			wantPath: "/configuration/languages",
			run: func(ctx context.Context, c *Client) (any, error) {
				return Languages{}.Execute(ctx, c)
			},
			check: func(t *testing.T, got any) {
				langs := got.([]ConfigLanguage)
				require.Len(t, langs, 3)
				assert.Equal(t, "French (fr)", langs[1].String())
				assert.Empty(t, langs[2].Name)
			},
		},
		{
			name:      "find by imdb id",
			fixture:   "find-imdb.json",
			wantPath:  "/find/tt0137523",
			wantQuery: map[string]string{"external_source": "imdb_id"},
			run: func(ctx context.Context, c *Client) (any, error) {
				return FindByID{ExternalID: "tt0137523", ExternalSource: ExternalSourceIMDb}.Execute(ctx, c)
			},
			check: func(t *testing.T, got any) {
				res := got.(*FindResults)
				assert.False(t, res.Empty())
				require.Len(t, res.MovieResults, 1)
				assert.Equal(t, 550, res.MovieResults[0].ID)
				assert.Empty(t, res.TVResults)
			},
		},
		{
			name:      "multi search",
			fixture:   "multi-search.json",
			wantPath:  "/search/multi",
			wantQuery: map[string]string{"query": "fight club", "page": "1"},
			run: func(ctx context.Context, c *Client) (any, error) {
				return MultiSearch{Query: "fight club", Page: 1}.Execute(ctx, c)
			},
			check: func(t *testing.T, got any) {
				page := got.(*Page[MultiResult])
				require.Len(t, page.Results, 3)

				assert.Equal(t, MediaTypeMovie, page.Results[0].MediaType)
				assert.NotNil(t, page.Results[0].Movie)
				assert.Equal(t, "Fight Club", page.Results[0].Title())

				assert.Equal(t, MediaTypeTV, page.Results[1].MediaType)
				require.NotNil(t, page.Results[1].TVShow)
				assert.Equal(t, 86831, page.Results[1].ID())

				assert.Equal(t, MediaTypePerson, page.Results[2].MediaType)
				require.NotNil(t, page.Results[2].Person)
				assert.Equal(t, "Fight Club Fan", page.Results[2].Title())
			},
		},
	})
}

func TestInvalidMediaType(t *testing.T) {
	exec := &stubExecutor{}
	client, err := NewClient(testAPIKey, WithExecutor(exec))
	require.NoError(t, err)
	ctx := context.Background()

	_, err = CertificationList{MediaType: MediaTypePerson}.Execute(ctx, client)
	assert.ErrorIs(t, err, ErrInvalidMediaType)

	_, err = GenreList{MediaType: MediaTypeCollection}.Execute(ctx, client)
	assert.ErrorIs(t, err, ErrInvalidMediaType)

	_, err = ChangeList{MediaType: MediaTypeCollection}.Execute(ctx, client)
	assert.ErrorIs(t, err, ErrInvalidMediaType)

	_, err = WatchProviderList{MediaType: "anime"}.Execute(ctx, client)
	assert.ErrorIs(t, err, ErrInvalidMediaType)

	assert.Zero(t, exec.calls)
}

func TestFindByIDPathEscaping(t *testing.T) {
	assert.Equal(t, "/find/%2Fm%2F03d34x8", FindByID{ExternalID: "/m/03d34x8"}.Path())
	assert.Equal(t, "/find/tt0137523", FindByID{ExternalID: "tt0137523"}.Path())
}

func TestParseExternalSource(t *testing.T) {
	tests := []struct {
		input   string
		want    ExternalSource
		wantErr bool
	}{
		{"imdb_id", ExternalSourceIMDb, false},
		{"imdb", ExternalSourceIMDb, false},
		{"tvdb", ExternalSourceTVDB, false},
		{"wikidata_id", ExternalSourceWikidata, false},
		{"letterboxd", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseExternalSource(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
