package tmdb

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

// ImagesConfiguration describes how image paths turn into URLs
type ImagesConfiguration struct {
	BaseURL       string   `json:"base_url"`
	SecureBaseURL string   `json:"secure_base_url"`
	BackdropSizes []string `json:"backdrop_sizes"`
	LogoSizes     []string `json:"logo_sizes"`
	PosterSizes   []string `json:"poster_sizes"`
	ProfileSizes  []string `json:"profile_sizes"`
	StillSizes    []string `json:"still_sizes"`
}

// ImageURL joins the secure base URL, a size and an image path. An empty
// path yields "".
func (ic *ImagesConfiguration) ImageURL(size, path string) string {
	if path == "" {
		return ""
	}
	if size == "" {
		size = "original"
	}
	return strings.TrimRight(ic.SecureBaseURL, "/") + "/" + size + "/" + strings.TrimLeft(path, "/")
}

// HasPosterSize reports whether size is a valid poster size.
func (ic *ImagesConfiguration) HasPosterSize(size string) bool {
	return slices.Contains(ic.PosterSizes, size)
}

// APIConfiguration is the response of Configuration
type APIConfiguration struct {
	Images     ImagesConfiguration `json:"images"`
	ChangeKeys []string            `json:"change_keys"`
}

// Configuration fetches the API system configuration.
type Configuration struct{}

func (Configuration) Path() string { return "/configuration" }

// Execute runs the command.
func (c Configuration) Execute(ctx context.Context, r Requester) (*APIConfiguration, error) {
	return execute[APIConfiguration](ctx, r, c)
}

// ConfigCountry is a country known to TMDB
type ConfigCountry struct {
	ISO3166_1   string `json:"iso_3166_1"`
	EnglishName string `json:"english_name"`
	NativeName  string `json:"native_name"`
}

// Countries lists the countries used throughout TMDB.
type Countries struct {
	LanguageParams
}

func (Countries) Path() string { return "/configuration/countries" }

// Execute runs the command.
func (c Countries) Execute(ctx context.Context, r Requester) ([]ConfigCountry, error) {
	var out []ConfigCountry
	if err := r.Do(ctx, c, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ConfigJob lists the jobs of a department
type ConfigJob struct {
	Department string   `json:"department"`
	Jobs       []string `json:"jobs"`
}

// Jobs lists the departments and jobs used in crew credits.
type Jobs struct{}

func (Jobs) Path() string { return "/configuration/jobs" }

// Execute runs the command.
func (c Jobs) Execute(ctx context.Context, r Requester) ([]ConfigJob, error) {
	var out []ConfigJob
	if err := r.Do(ctx, c, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ConfigLanguage is a language known to TMDB
type ConfigLanguage struct {
	ISO639_1    string `json:"iso_639_1"`
	EnglishName string `json:"english_name"`
	Name        string `json:"name"`
}

// Languages lists the languages used throughout TMDB.
type Languages struct{}

func (Languages) Path() string { return "/configuration/languages" }

// Execute runs the command.
func (c Languages) Execute(ctx context.Context, r Requester) ([]ConfigLanguage, error) {
	var out []ConfigLanguage
	if err := r.Do(ctx, c, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// String formats a language as "name (code)".
func (l ConfigLanguage) String() string {
	if l.EnglishName == "" {
		return l.ISO639_1
	}
	return fmt.Sprintf("%s (%s)", l.EnglishName, l.ISO639_1)
}
