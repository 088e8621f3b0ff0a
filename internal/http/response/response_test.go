package response

import (
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
)

func TestOK(t *testing.T) {
	resp := OK("product created")

	assert.True(t, resp.Success)
	assert.Equal(t, "product created", resp.Message)
}

func TestError(t *testing.T) {
	msg := "something went wrong"
	resp := Error(msg)

	assert.False(t, resp.Success)
	assert.Equal(t, msg, resp.Message)
}

func TestValidationError(t *testing.T) {
	type TestStruct struct {
		Email    string `validate:"required,email"`
		Password string `validate:"required,min=6"`
	}

	v := validator.New()
	ts := TestStruct{
		Email:    "not-an-email",
		Password: "123",
	}

	err := v.Struct(ts)
	assert.Error(t, err)

	validationErrors := err.(validator.ValidationErrors)
	resp := ValidationError(validationErrors)

	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Message)
	assert.Contains(t, resp.Message, "field Email must be a valid email address")
	assert.Contains(t, resp.Message, "field Password is too short")
}

func TestValidationErrorRequired(t *testing.T) {
	type TestStruct struct {
		Email string `validate:"required"`
	}

	v := validator.New()
	ts := TestStruct{}

	err := v.Struct(ts)
	assert.Error(t, err)

	resp := ValidationError(err.(validator.ValidationErrors))

	assert.False(t, resp.Success)
	assert.Equal(t, "field Email is a required field", resp.Message)
}
