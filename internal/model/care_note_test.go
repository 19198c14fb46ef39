package model

import (
	"testing"

	"github.com/Veraticus/tend/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStressLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    StressLevel
		wantErr bool
	}{
		{input: "Low", want: StressLow},
		{input: "medium", want: StressMedium},
		{input: " HIGH ", want: StressHigh},
		{input: "Very High", want: StressVeryHigh},
		{input: "very-high", want: StressVeryHigh},
		{input: "very_high", want: StressVeryHigh},
		{input: "veryhigh", want: StressVeryHigh},
		{input: "extreme", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStressLevel(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, common.ErrInvalidStressLevel)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStressLevel_Rank(t *testing.T) {
	for i, level := range StressLevels() {
		assert.Equal(t, i, level.Rank())
	}
	assert.Less(t, StressLow.Rank(), StressVeryHigh.Rank())
	assert.Equal(t, -1, StressLevel("Extreme").Rank())
	assert.Equal(t, StressMedium, DefaultStressLevel)
}
