package region

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	MinCodeLength = 2
	MaxCodeLength = 10
	MaxNameLength = 100
)

// CreateRegionRequest - POST /v1/regions
type CreateRegionRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// UpdateRegionRequest - PUT /v1/regions/:id
type UpdateRegionRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Normalize trims both fields and uppercases the code.
func (r *CreateRegionRequest) Normalize() {
	r.Code = strings.ToUpper(strings.TrimSpace(r.Code))
	r.Name = strings.TrimSpace(r.Name)
}

func (r *CreateRegionRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Code, codeRules()...),
		validation.Field(&r.Name, nameRules()...),
	)
}

func (r *UpdateRegionRequest) Normalize() {
	r.Code = strings.ToUpper(strings.TrimSpace(r.Code))
	r.Name = strings.TrimSpace(r.Name)
}

func (r *UpdateRegionRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Code, codeRules()...),
		validation.Field(&r.Name, nameRules()...),
	)
}

func codeRules() []validation.Rule {
	return []validation.Rule{
		validation.Required.Error("Code is required"),
		validation.Length(MinCodeLength, MaxCodeLength).
			Error("Code must be between 2 and 10 characters"),
	}
}

func nameRules() []validation.Rule {
	return []validation.Rule{
		validation.Required.Error("Name is required"),
		validation.Length(2, MaxNameLength).
			Error("Name must be at least 2 characters"),
	}
}

// RegionResponse is the wire shape for a region.
type RegionResponse struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

func (r Region) ToResponse() RegionResponse {
	return RegionResponse{ID: r.ID, Code: r.Code, Name: r.Name}
}

func ToResponses(regions []Region) []RegionResponse {
	out := make([]RegionResponse, 0, len(regions))
	for _, r := range regions {
		out = append(out, r.ToResponse())
	}
	return out
}
