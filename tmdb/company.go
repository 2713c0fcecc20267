package tmdb

import (
	"context"
	"fmt"
)

// Company is the full company record
type Company struct {
	CompanyShort
	Description   string        `json:"description"`
	Headquarters  string        `json:"headquarters"`
	Homepage      string        `json:"homepage"`
	ParentCompany *CompanyShort `json:"parent_company"`
}

// CompanyDetails fetches a company.
type CompanyDetails struct {
	CompanyID int `url:"-"`
}

func (c CompanyDetails) Path() string { return fmt.Sprintf("/company/%d", c.CompanyID) }

// Execute runs the command.
func (c CompanyDetails) Execute(ctx context.Context, r Requester) (*Company, error) {
	return execute[Company](ctx, r, c)
}

// CompanyAlternativeName is another name a company is known by
type CompanyAlternativeName struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// CompanyAlternativeNames fetches the other names of a company.
type CompanyAlternativeNames struct {
	CompanyID int `url:"-"`
}

func (c CompanyAlternativeNames) Path() string {
	return fmt.Sprintf("/company/%d/alternative_names", c.CompanyID)
}

// Execute runs the command.
func (c CompanyAlternativeNames) Execute(ctx context.Context, r Requester) (*EntityResults[[]CompanyAlternativeName], error) {
	return execute[EntityResults[[]CompanyAlternativeName]](ctx, r, c)
}

// CompanyImage is a company logo
type CompanyImage struct {
	ID          string  `json:"id"`
	AspectRatio float64 `json:"aspect_ratio"`
	FilePath    string  `json:"file_path"`
	FileType    string  `json:"file_type"`
	Height      int     `json:"height"`
	Width       int     `json:"width"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int     `json:"vote_count"`
}

// CompanyImagesResult is the response of CompanyImages
type CompanyImagesResult struct {
	ID    int            `json:"id"`
	Logos []CompanyImage `json:"logos"`
}

// CompanyImages fetches the logos of a company.
type CompanyImages struct {
	CompanyID int `url:"-"`
}

func (c CompanyImages) Path() string { return fmt.Sprintf("/company/%d/images", c.CompanyID) }

// Execute runs the command.
func (c CompanyImages) Execute(ctx context.Context, r Requester) (*CompanyImagesResult, error) {
	return execute[CompanyImagesResult](ctx, r, c)
}
