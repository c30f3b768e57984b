package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("alice@example.com"))
	assert.True(t, ValidateEmail("a.b+c@sub.example.co"))
	assert.False(t, ValidateEmail("no-at-sign"))
	assert.False(t, ValidateEmail("missing@tld"))
	assert.False(t, ValidateEmail("@example.com"))
}

func TestValidateStruct(t *testing.T) {
	type sample struct {
		Name string `validate:"required,min=3"`
		Kind string `validate:"required,oneof=user admin customer"`
	}

	assert.Nil(t, ValidateStruct(sample{Name: "alice", Kind: "admin"}))

	errs := ValidateStruct(sample{Name: "al", Kind: "boss"})
	assert.Len(t, errs, 2)
	assert.Contains(t, errs, "Name")
	assert.Contains(t, errs, "Kind")
}
