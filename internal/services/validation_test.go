package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"source": "invalid", "name": "field required"}}
	assert.Equal(t, "validation failed: name: field required; source: invalid", err.Error())
}

func TestValidateStruct_Messages(t *testing.T) {
	type payload struct {
		Name   *string `json:"name" validate:"required,max=3"`
		Source string  `json:"source,omitempty" validate:"omitempty,http_url"`
	}
	long := "abcdef"

	tests := []struct {
		name string
		in   payload
		want map[string]string
	}{
		{
			name: "required",
			in:   payload{},
			want: map[string]string{"name": msgRequired},
		},
		{
			name: "too long and bad url",
			in:   payload{Name: &long, Source: "ftp//x"},
			want: map[string]string{
				"name":   "ensure this value has at most 3 characters",
				"source": msgInvalidURL,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateStruct(tt.in)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.want, verr.Fields)
		})
	}
}

func TestValidateStruct_OK(t *testing.T) {
	name := "Go"
	assert.NoError(t, validateStruct(struct {
		Name *string `json:"name" validate:"required"`
	}{Name: &name}))
}
