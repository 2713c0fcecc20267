package tmdb

import (
	"context"
	"fmt"
	"net/url"
)

// ExternalSource names the service an external ID belongs to
type ExternalSource string

const (
	ExternalSourceIMDb      ExternalSource = "imdb_id"
	ExternalSourceFacebook  ExternalSource = "facebook_id"
	ExternalSourceInstagram ExternalSource = "instagram_id"
	ExternalSourceTVDB      ExternalSource = "tvdb_id"
	ExternalSourceTikTok    ExternalSource = "tiktok_id"
	ExternalSourceTwitter   ExternalSource = "twitter_id"
	ExternalSourceWikidata  ExternalSource = "wikidata_id"
	ExternalSourceYoutube   ExternalSource = "youtube_id"
)

var externalSources = []ExternalSource{
	ExternalSourceIMDb,
	ExternalSourceFacebook,
	ExternalSourceInstagram,
	ExternalSourceTVDB,
	ExternalSourceTikTok,
	ExternalSourceTwitter,
	ExternalSourceWikidata,
	ExternalSourceYoutube,
}

// ParseExternalSource accepts either the full name ("imdb_id") or the short
// form ("imdb").
func ParseExternalSource(s string) (ExternalSource, error) {
	for _, src := range externalSources {
		if s == string(src) || s+"_id" == string(src) {
			return src, nil
		}
	}
	return "", fmt.Errorf("unknown external source %q", s)
}

// FindResults groups the TMDB entities matching an external ID
type FindResults struct {
	MovieResults     []MovieShort   `json:"movie_results"`
	PersonResults    []PersonResult `json:"person_results"`
	TVResults        []TVShowShort  `json:"tv_results"`
	TVSeasonResults  []SeasonShort  `json:"tv_season_results"`
	TVEpisodeResults []EpisodeShort `json:"tv_episode_results"`
}

// Empty reports whether nothing matched.
func (f *FindResults) Empty() bool {
	return len(f.MovieResults) == 0 && len(f.PersonResults) == 0 && len(f.TVResults) == 0 &&
		len(f.TVSeasonResults) == 0 && len(f.TVEpisodeResults) == 0
}

// FindByID looks up TMDB entities by an identifier from another service.
type FindByID struct {
	ExternalID     string         `url:"-"`
	ExternalSource ExternalSource `url:"external_source"`
	Language       string         `url:"language,omitempty"`
}

func (c FindByID) Path() string { return "/find/" + url.PathEscape(c.ExternalID) }

// Execute runs the command.
func (c FindByID) Execute(ctx context.Context, r Requester) (*FindResults, error) {
	return execute[FindResults](ctx, r, c)
}
