package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserError(t *testing.T) {
	tests := []struct {
		err     error
		name    string
		message string
		want    string
	}{
		{
			name:    "with cause",
			message: "Choose a need",
			err:     fmt.Errorf("%w: %q", ErrInvalidNeed, "pizza"),
			want:    `Choose a need: invalid need category: "pizza"`,
		},
		{
			name:    "without cause",
			message: "Nothing to do",
			want:    "Nothing to do",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewUserError(tt.message, tt.err)
			assert.Equal(t, tt.want, err.Error())
			if tt.err != nil {
				assert.ErrorIs(t, err, ErrInvalidNeed)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	wrapped := fmt.Errorf("running checkin: %w", NewUserError("Choose a need", ErrInvalidNeed))
	assert.Equal(t, "Choose a need: invalid need category", UserMessage(wrapped))

	plain := errors.New("boom")
	assert.Equal(t, "boom", UserMessage(plain))
}
