package transfer

import (
	v "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/golang-jwt/jwt/v5"
)

type CustomClaims struct {
	Subject string `json:"sub_name"`
	jwt.RegisteredClaims
}

type LoginRequest struct {
	Password string `json:"password"`
}

func (b LoginRequest) Validate() error {
	return v.ValidateStruct(&b,
		v.Field(&b.Password, v.Required),
	)
}

type ApiKeyCreation struct {
	Name string `json:"name"`
}

func (b ApiKeyCreation) Validate() error {
	return v.ValidateStruct(&b,
		v.Field(&b.Name, v.Required, v.Length(1, 255)),
	)
}

type ApiKeyRemoval struct {
	ID int64 `json:"id"`
}

func (b ApiKeyRemoval) Validate() error {
	return v.ValidateStruct(&b,
		v.Field(&b.ID, v.Required),
	)
}
