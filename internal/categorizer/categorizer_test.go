package categorizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDefaults(t *testing.T) {
	r := NewRegistry(nil)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Exact match", "Streaming", CategoryStreaming},
		{"Case folded", "streaming", CategoryStreaming},
		{"Padded", "  Music ", CategoryMusic},
		{"Unknown falls back", "Time Travel", CategoryOther},
		{"Empty falls back", "", CategoryOther},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, r.Resolve(tc.input))
		})
	}
}

func TestResolveCustomCategories(t *testing.T) {
	r := NewRegistry([]CustomCategory{
		{Name: "Homelab", Color: "#34d399"},
		{Name: "Charity"},
	})

	assert.Equal(t, "Homelab", r.Resolve("homelab"))
	assert.Equal(t, "Charity", r.Resolve("CHARITY"))
	assert.Equal(t, CategoryOther, r.Resolve("Unknown"))

	assert.Equal(t, "#34d399", r.ColorFor("Homelab"))
	assert.Equal(t, "", r.ColorFor("Charity"))
	assert.Equal(t, "", r.ColorFor("Streaming"))
}

func TestCustomCollisionsIgnored(t *testing.T) {
	r := NewRegistry([]CustomCategory{
		{Name: "streaming", Color: "#111111"}, // collides with the default
		{Name: "Homelab"},
		{Name: "homelab", Color: "#222222"}, // collides with the earlier custom
		{Name: "   "},                       // blank
	})

	customs := r.Customs()
	require.Len(t, customs, 1)
	assert.Equal(t, "Homelab", customs[0].Name)

	// The default keeps its canonical name and has no color.
	assert.Equal(t, CategoryStreaming, r.Resolve("streaming"))
	assert.Equal(t, "", r.ColorFor("Streaming"))
}

func TestKnown(t *testing.T) {
	r := NewRegistry([]CustomCategory{{Name: "Homelab"}})

	assert.True(t, r.Known("Gaming"))
	assert.True(t, r.Known("homelab"))
	assert.False(t, r.Known("Time Travel"))
}

func TestDefaultCategoriesIncludeOther(t *testing.T) {
	found := false
	for _, name := range DefaultCategories {
		if name == CategoryOther {
			found = true
		}
	}
	assert.True(t, found, "the Other fallback must be part of the default set")
}
