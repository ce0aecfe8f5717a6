package request

import (
	"tourbook/internal/usecase/commands"
)

// SaveProfileRequest mirrors the edit form: absent fields stay untouched
// and languages arrives as a single comma-separated string.
type SaveProfileRequest struct {
	Name       *string `json:"name"`
	Phone      *string `json:"phone"`
	Experience *string `json:"experience"`
	Languages  *string `json:"languages"`
	Bio        *string `json:"bio"`
	Location   *string `json:"location"`
	Image      *string `json:"image"`
}

func (r SaveProfileRequest) ToInput() commands.SaveProfileInput {
	return commands.SaveProfileInput{
		Name:       r.Name,
		Phone:      r.Phone,
		Experience: r.Experience,
		Languages:  r.Languages,
		Bio:        r.Bio,
		Location:   r.Location,
		Image:      r.Image,
	}
}
