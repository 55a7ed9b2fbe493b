package app

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cours-de-latin/uktag/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		Data:  config.DataConfig{Dir: filepath.Join("..", "..", "data")},
		Cache: config.CacheConfig{Size: 128},
		Debug: config.DebugConfig{
			UnknownPath: filepath.Join(dir, "unknown.txt"),
			TaggedPath:  filepath.Join(dir, "tagged.txt"),
		},
		Log: config.LogConfig{Level: "info", Format: "json"},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewEngine(t *testing.T) {
	cfg := testConfig(t)
	reg := prometheus.NewRegistry()

	e, err := NewEngine(cfg, discardLogger(), reg)
	require.NoError(t, err)
	defer e.Close()

	assert.Positive(t, e.Dictionary().Len())

	res, err := TagWord(e.Tagger, "сонях-красень")
	require.NoError(t, err)
	assert.Equal(t, []Reading{
		{Lemma: "сонях-красень", Tag: "noun:m:v_naz"},
		{Lemma: "сонях-красень", Tag: "noun:m:v_zna"},
	}, res.Readings)

	count, err := testutil.GatherAndCount(reg, "uktag_resolved_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNewEngineDebugSink(t *testing.T) {
	cfg := testConfig(t)
	cfg.Debug.Compounds = true

	e, err := NewEngine(cfg, discardLogger(), nil)
	require.NoError(t, err)

	_, err = TagWord(e.Tagger, "сказав-бо")
	require.NoError(t, err)
	require.NoError(t, e.Close())

	unknown, err := os.ReadFile(cfg.Debug.UnknownPath)
	require.NoError(t, err)
	assert.Equal(t, "сказав-бо\n", string(unknown))
}

func TestNewEngineMissingData(t *testing.T) {
	cfg := testConfig(t)
	cfg.Data.Dir = t.TempDir()

	_, err := NewEngine(cfg, discardLogger(), nil)
	assert.Error(t, err)
}

func TestTagWords(t *testing.T) {
	e, err := NewEngine(testConfig(t), discardLogger(), nil)
	require.NoError(t, err)

	words := []string{"101-го", "сонях", "15", "по-українськи", "пів-Європи"}
	got, err := TagWords(context.Background(), e.Tagger, words)
	require.NoError(t, err)
	require.Len(t, got, len(words))

	for i, w := range words {
		assert.Equal(t, w, got[i].Word)
	}
	assert.Len(t, got[0].Readings, 3)
	assert.Empty(t, got[1].Readings)
	assert.NotNil(t, got[1].Readings)
	assert.Equal(t, []Reading{{Lemma: "15", Tag: "number"}}, got[2].Readings)
	assert.Equal(t, []Reading{{Lemma: "по-українськи", Tag: "adv"}}, got[3].Readings)
	assert.Len(t, got[4].Readings, 6)
}

func TestTagWordsCancelled(t *testing.T) {
	e, err := NewEngine(testConfig(t), discardLogger(), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = TagWords(ctx, e.Tagger, []string{"сонях-красень"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDescribeTag(t *testing.T) {
	info, err := DescribeTag("noun:m:v_rod:nv:anim:rare")
	require.NoError(t, err)
	assert.Equal(t, TagInfo{
		Tag:        "noun:m:v_rod:anim:nv:rare",
		Category:   "noun",
		Gender:     "m",
		Case:       "v_rod",
		CaseName:   "родовий",
		Animate:    true,
		NotDecl:    true,
		Qualifiers: []string{"rare"},
	}, info)

	_, err = DescribeTag("noun:v_rod")
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	logger := NewLogger(config.LogConfig{Level: "WARN", Format: "json"}, &buf)
	logger.Info("hidden")
	logger.Warn("shown", "word", "сонях")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"word":"сонях"`)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel(" debug "))
	assert.Equal(t, slog.LevelError, parseLevel("Error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}
