package log_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	scigoErrors "github.com/ezoic/evalmetrics/pkg/errors"
	"github.com/ezoic/evalmetrics/pkg/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"WARN", zerolog.WarnLevel},
		{" error ", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, log.ParseLevel(tt.in), tt.in)
	}
}

func TestGetLoggerWithName(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf, "info")
	defer log.SetupLogger("info")

	logger := log.GetLoggerWithName("evaluation")
	logger.Info().Float64("rmse", 1.5).Msg("fold evaluated")
	logger.Debug().Msg("hidden")

	out := buf.String()
	assert.Contains(t, out, "fold evaluated")
	assert.Contains(t, out, "evaluation")
	assert.NotContains(t, out, "hidden")
}

func TestLogError(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf, "debug")
	defer log.SetupLogger("info")

	log.LogError(nil, "nothing happened")
	assert.Empty(t, buf.String())

	log.LogError(scigoErrors.NewEmptyInputError("MAE"), "evaluation failed")
	out := buf.String()
	assert.Contains(t, out, "evaluation failed")
	assert.Contains(t, out, "empty data")
	assert.Contains(t, out, "detail")
}
