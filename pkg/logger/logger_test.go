package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	l, err := New("debug", "console")
	require.NoError(t, err)
	assert.NotNil(t, l)

	_, err = New("loud", "json")
	assert.Error(t, err)
}

func TestContextVariantsAttachRequestID(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := &Logger{Logger: zap.New(core)}

	ctx := WithRequestID(context.Background(), "req-42")
	l.InfoContext(ctx, "fetching quote", StringField("ticker", "ACME"))
	l.WarnContext(context.Background(), "no request id")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "req-42", entries[0].ContextMap()["request_id"])
	assert.Equal(t, "ACME", entries[0].ContextMap()["ticker"])
	_, ok := entries[1].ContextMap()["request_id"]
	assert.False(t, ok)
}

func TestRequestIDEmpty(t *testing.T) {
	assert.Equal(t, "", RequestID(context.Background()))
}
