package validation

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type child struct {
	Name     string `json:"name" validate:"required,max=255"`
	AgeRange string `json:"age_range" validate:"required,max=32"`
}

type signup struct {
	Name     string  `json:"name" validate:"required"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"omitempty,pwd"`
	Children []child `json:"children" validate:"required,min=1,dive"`
}

func TestMessagesCollectsEveryViolationInOrder(t *testing.T) {
	v := New()
	err := v.Struct(signup{Email: "not-an-email", Password: "short", Children: []child{{Name: "Bo"}}})
	require.Error(t, err)

	assert.Equal(t, []string{
		"The name field is required.",
		"The email must be a valid email address.",
		"The password must be at least 8 characters.",
		"The children.0.age_range field is required.",
	}, Messages(err))
}

func TestMessagesEmptySlice(t *testing.T) {
	v := New()
	err := v.Struct(signup{Name: "Ann", Email: "ann@x.com", Children: []child{}})
	require.Error(t, err)
	assert.Equal(t, []string{"The children must have at least 1 items."}, Messages(err))

	err = v.Struct(signup{Name: "Ann", Email: "ann@x.com"})
	require.Error(t, err)
	assert.Equal(t, []string{"The children field is required."}, Messages(err))
}

func TestMessagesValid(t *testing.T) {
	v := New()
	err := v.Struct(signup{Name: "Ann", Email: "ann@x.com", Children: []child{{Name: "Bo", AgeRange: "5-7"}}})
	assert.NoError(t, err)
	assert.Nil(t, Messages(err))
}

func TestMessagesDecodeErrors(t *testing.T) {
	var dst signup
	err := json.Unmarshal([]byte(`{"name":`), &dst)
	assert.Equal(t, []string{"The request body must be valid JSON."}, Messages(err))

	err = json.Unmarshal([]byte(`{"children":"many"}`), &dst)
	assert.Equal(t, []string{"The children field has an invalid type."}, Messages(err))

	err = json.Unmarshal([]byte(`[]`), &dst)
	assert.Equal(t, []string{"The request body must be a JSON object."}, Messages(err))

	assert.Equal(t, []string{"The request payload is invalid."}, Messages(errors.New("other")))
}
