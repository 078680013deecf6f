package main

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"gaus-thesis/internal/analyzer/config"
	"gaus-thesis/pkg/apperror"
	"gaus-thesis/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAnalysisService_MissingCompletionKey(t *testing.T) {
	tests := []struct {
		provider string
		setting  string
	}{
		{provider: "anthropic", setting: "ANTHROPIC_API_KEY"},
		{provider: "gemini", setting: "GEMINI_API_KEY"},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
			require.NoError(t, err)
			cfg.AI.Provider = tt.provider
			cfg.Anthropic.APIKey = ""
			cfg.Gemini.APIKey = ""
			cfg.Twitter.BearerToken = ""

			svc, err := newAnalysisService(context.Background(), cfg, logger.NewNop())
			require.NoError(t, err)

			_, err = svc.Analyze(context.Background(), "AAPL", 7)
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperror.ErrConfiguration))
			assert.Contains(t, err.Error(), tt.setting)
		})
	}
}
