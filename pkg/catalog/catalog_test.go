package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, tool := range Tools {
		require.NotEmpty(t, tool.Slug)
		require.False(t, seen[tool.Slug], "duplicate slug %q", tool.Slug)
		seen[tool.Slug] = true
	}
}

func TestLookup(t *testing.T) {
	tool, ok := Lookup("image-sharpen-blur")
	require.True(t, ok)
	assert.Equal(t, "sharpenBlurOptions", tool.Field)
	assert.True(t, tool.LivePreview)

	_, ok = Lookup("image-teleport")
	assert.False(t, ok)
}

func TestLivePreviewToolsCarryOptionFields(t *testing.T) {
	live := LivePreviewTools()
	require.Len(t, live, 2)
	fields := map[string]bool{}
	for _, tool := range live {
		fields[tool.Field] = true
	}
	assert.True(t, fields["sharpenBlurOptions"])
	assert.True(t, fields["colorBalanceOptions"])
}

func TestEveryToolHasAFieldAndCategory(t *testing.T) {
	for _, tool := range Tools {
		assert.NotEmpty(t, tool.Field, tool.Slug)
		assert.NotEmpty(t, tool.Category, tool.Slug)
		assert.NotEmpty(t, tool.Description, tool.Slug)
	}
}

func TestCheckRange(t *testing.T) {
	tool, ok := Lookup("image-color-balance")
	require.True(t, ok)

	assert.NoError(t, tool.CheckRange("temperature", 40))
	assert.NoError(t, tool.CheckRange("temperature", -100))
	assert.Error(t, tool.CheckRange("temperature", 140))
	assert.Error(t, tool.CheckRange("hue", 181))
	assert.Error(t, tool.CheckRange("warp", 1))

	// unranged knobs accept anything
	assert.NoError(t, tool.CheckRange("shadows", 9000))
}

func TestBlurTypeEnum(t *testing.T) {
	tool, ok := Lookup("image-sharpen-blur")
	require.True(t, ok)
	p, ok := tool.Param("blurType")
	require.True(t, ok)
	assert.Contains(t, p.Enum, "gaussian")
	assert.Contains(t, p.Enum, "motion")
	assert.Equal(t, "gaussian", p.Default)
}
