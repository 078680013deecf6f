package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKinds(t *testing.T) {
	notFound := NotFound("no price history for %s", "ZZZZ")
	assert.True(t, errors.Is(notFound, ErrNotFound))
	assert.False(t, errors.Is(notFound, ErrInternal))
	assert.Equal(t, "no price history for ZZZZ", notFound.Error())

	wrapped := fmt.Errorf("fetch quote: %w", notFound)
	assert.True(t, errors.Is(wrapped, ErrNotFound))

	cfg := Configuration("%s not configured", "ANTHROPIC_API_KEY")
	assert.True(t, errors.Is(cfg, ErrConfiguration))
	assert.Equal(t, "ANTHROPIC_API_KEY not configured", cfg.Error())
}

func TestInternal(t *testing.T) {
	cause := errors.New("connection reset")
	err := Internal(cause)
	assert.True(t, errors.Is(err, ErrInternal))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "connection reset", err.Error())

	notFound := NotFound("missing")
	assert.Same(t, notFound, Internal(notFound))
	assert.Nil(t, Internal(nil))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: http.StatusOK},
		{name: "not found", err: fmt.Errorf("quote: %w", NotFound("x")), want: http.StatusNotFound},
		{name: "configuration", err: Configuration("x"), want: http.StatusInternalServerError},
		{name: "internal", err: Internal(errors.New("boom")), want: http.StatusInternalServerError},
		{name: "plain", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
