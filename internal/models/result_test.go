package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult(t *testing.T) {
	t.Run("ok carries value and no error", func(t *testing.T) {
		// Arrange & Act
		res := Ok([]int{1, 2}, false)

		// Assert
		assert.True(t, res.Success())
		assert.NoError(t, res.Err())
		assert.False(t, res.Debug())
		assert.Equal(t, []int{1, 2}, res.Value())
	})

	t.Run("fail carries fallback and error", func(t *testing.T) {
		// Arrange
		boom := errors.New("boom")

		// Act
		res := Fail(UnknownRateLimit, boom, true)

		// Assert
		assert.False(t, res.Success())
		assert.Same(t, boom, res.Err())
		assert.True(t, res.Debug())
		assert.Equal(t, UnknownRateLimit, res.Value())
	})

	t.Run("fail with nil error panics", func(t *testing.T) {
		assert.Panics(t, func() {
			Fail[[]int](nil, nil, false)
		})
	})
}

func TestRateLimit(t *testing.T) {
	assert.False(t, UnknownRateLimit.Known())
	assert.Equal(t, -1, UnknownRateLimit.Used())

	exhausted := RateLimit{Limit: 5000, Remaining: 0}
	assert.True(t, exhausted.Known(), "zero remaining is a real state, not unknown")
	assert.Equal(t, 5000, exhausted.Used())
}

func TestParseRepository(t *testing.T) {
	tests := []struct {
		input   string
		want    Repository
		wantErr bool
	}{
		{input: "octo/hello", want: Repository{Owner: "octo", Name: "hello"}},
		{input: " octo/hello ", want: Repository{Owner: "octo", Name: "hello"}},
		{input: "octo", wantErr: true},
		{input: "/hello", wantErr: true},
		{input: "octo/", wantErr: true},
		{input: "octo/hello/extra", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRepository(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "octo/hello", got.String())
		})
	}
}
