package guard

import (
	"testing"

	"cloud-console-be/internal/repository/repoerr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestID(t *testing.T) {
	assert.NoError(t, ID("op", "id", uuid.New()))
	assert.True(t, repoerr.IsInvalidArgument(ID("op", "id", uuid.Nil)))
}

func TestKey(t *testing.T) {
	tests := []struct {
		value string
		valid bool
	}{
		{"orders", true},
		{" padded ", true},
		{"", false},
		{"   ", false},
		{"\t\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			err := Key("op", "name", tt.value)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.True(t, repoerr.IsInvalidArgument(err))
		})
	}
}

func TestEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"ops@example.com", true},
		{"first.last+tag@sub.example.org", true},
		{"", false},
		{"not-an-email", false},
		{"missing@", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			err := Email("op", tt.email)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.True(t, repoerr.IsInvalidArgument(err))
			assert.Contains(t, err.Error(), "op")
		})
	}
}

type color string

func TestOneOf(t *testing.T) {
	assert.NoError(t, OneOf("op", "color", color("red"), "red", "green"))
	assert.True(t, repoerr.IsInvalidArgument(OneOf("op", "color", color("blue"), "red", "green")))
	assert.True(t, repoerr.IsInvalidArgument(OneOf[color]("op", "color", "")))
}

func TestFirst(t *testing.T) {
	first := ID("op", "userId", uuid.Nil)
	second := Key("op", "name", "")

	assert.NoError(t, First())
	assert.NoError(t, First(nil, nil))
	assert.Same(t, first, First(nil, first, second))
}
