package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{input: "2021-03-05", want: time.Date(2021, 3, 5, 0, 0, 0, 0, time.UTC)},
		{input: "2014-10-16T17:57:28.556Z", want: time.Date(2014, 10, 16, 17, 57, 28, 556000000, time.UTC)},
		{input: "2018-10-25T16:30Z", want: time.Date(2018, 10, 25, 16, 30, 0, 0, time.UTC)},
		{input: "2018-10-16 17:57:28", want: time.Date(2018, 10, 16, 17, 57, 28, 0, time.UTC)},
		{input: "2020-01-02T03:04:05+02:00", want: time.Date(2020, 1, 2, 1, 4, 5, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s, want %s", got, tt.want)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestParseTimestamp_Invalid(t *testing.T) {
	_, err := ParseTimestamp("yesterday")
	assert.Error(t, err)
}
