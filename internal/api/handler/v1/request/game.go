package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateGameRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (req *CreateGameRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Description, validation.Length(0, 500)),
	)
}

type UpdateGameRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (req *UpdateGameRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Description, validation.Length(0, 500)),
	)
}
