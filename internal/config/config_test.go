package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okottawar/Finsight/internal/model"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Analysis.RecurringThreshold = 3
	cfg.Categories = []CategoryConfig{
		{Category: "transport", Keywords: []string{"uber", "ola"}},
	}

	path := filepath.Join(t.TempDir(), "finsight.yaml")
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, got.Analysis.RecurringThreshold)
	assert.Equal(t, cfg.Analysis.TopN, got.Analysis.TopN)
	assert.InDelta(t, cfg.Analysis.ZThreshold, got.Analysis.ZThreshold, 0.001)
	require.Len(t, got.Categories, 1)
	assert.Equal(t, "transport", got.Categories[0].Category)
	assert.Equal(t, []string{"uber", "ola"}, got.Categories[0].Keywords)
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 2, cfg.Analysis.RecurringThreshold)
	assert.Equal(t, 1, cfg.Analysis.TopN)
	assert.InDelta(t, 3.0, cfg.Analysis.ZThreshold, 0.001)
	assert.Empty(t, cfg.Categories)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadRejectsUnknownCategory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "finsight.yaml")
	contents := "categories:\n  - category: yachts\n    keywords: [marina]\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "yachts")
}

func TestRules(t *testing.T) {
	cfg := Default()

	// No overrides: built-in table.
	rules := cfg.Rules()
	require.NotEmpty(t, rules)
	assert.Equal(t, model.CategoryFood, rules[0].Category)

	cfg.Categories = []CategoryConfig{
		{Category: "transport", Keywords: []string{"uber"}},
	}
	rules = cfg.Rules()
	require.Len(t, rules, 1)
	assert.Equal(t, model.CategoryTransport, rules[0].Category)
	assert.Equal(t, []string{"uber"}, rules[0].Keywords)
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "finsight.yaml")
	err := Save(path, Default())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "recurring_threshold: 2")
	assert.Contains(t, contents, "top_n: 1")
	assert.Contains(t, contents, "z_threshold: 3")
}
