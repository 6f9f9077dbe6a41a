package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreatePlayerRequest struct {
	Name      string `json:"name"`
	BirthYear *int   `json:"birth_year"`
	MBTI      string `json:"mbti"`
	Location  string `json:"location"`
}

func (req *CreatePlayerRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.MBTI, validation.Length(4, 4)),
		validation.Field(&req.Location, validation.Length(0, 100)),
	)
}

type UpdatePlayerRequest struct {
	Name      string `json:"name"`
	BirthYear *int   `json:"birth_year"`
	MBTI      string `json:"mbti"`
	Location  string `json:"location"`
}

func (req *UpdatePlayerRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.BirthYear, validation.Required),
		validation.Field(&req.MBTI, validation.Required, validation.Length(4, 4)),
		validation.Field(&req.Location, validation.Required, validation.Length(1, 100)),
	)
}
