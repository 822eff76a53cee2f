package middleware

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yummin/backend/internal/interfaces/http/dto"
)

type sampleRequest struct {
	Name  string `json:"name" binding:"required,max=5"`
	Count int    `json:"count" binding:"required"`
}

func TestFormatValidationErrors(t *testing.T) {
	SetupValidator()

	err := binding.Validator.ValidateStruct(&sampleRequest{Name: "toolongname"})
	require.Error(t, err)

	resp := FormatValidationErrors(err)
	assert.False(t, resp.Success)
	assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
	require.Len(t, resp.Error.Details, 2)

	byField := make(map[string]string)
	for _, d := range resp.Error.Details {
		byField[d.Field] = d.Message
	}
	assert.Equal(t, "Must be at most 5 characters", byField["name"])
	assert.Equal(t, "This field is required", byField["count"])
}

func TestFormatValidationErrors_NonValidatorError(t *testing.T) {
	resp := FormatValidationErrors(assert.AnError)
	assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
	assert.Empty(t, resp.Error.Details)
}
