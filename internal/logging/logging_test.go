package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("info", "json", &buf)
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("k-mer table built", zap.Int("k", 3))
	require.NoError(t, log.Sync())

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "k-mer table built", line["msg"])
	assert.Equal(t, float64(3), line["k"])
	assert.Equal(t, "info", line["level"])
}

func TestNew_ConsoleLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("warn", "console", &buf)
	require.NoError(t, err)
	log.Info("quiet")
	log.Warn("loud")
	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "WARN")
	assert.Contains(t, buf.String(), "loud")
}

func TestNew_Errors(t *testing.T) {
	_, err := New("shouty", "json", &bytes.Buffer{})
	assert.Error(t, err)
	_, err = New("info", "logfmt", &bytes.Buffer{})
	assert.Error(t, err)
}
