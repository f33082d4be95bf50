package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveDeterministicAndNonEmpty(t *testing.T) {
	resolver := NewResolver()

	inputs := []string{
		"",
		"   ",
		"Tell me about VrindaAI",
		"what do you think about quantum gravity?",
		"hello",
		"THANKS",
	}
	for _, input := range inputs {
		first := resolver.Resolve(input)
		assert.NotEmpty(t, first, "input %q", input)
		assert.Equal(t, first, resolver.Resolve(input), "input %q", input)
	}
}

func TestResolveVrindaAI(t *testing.T) {
	resolver := NewResolver()

	response := resolver.Resolve("Tell me about VrindaAI")
	assert.Contains(t, response, "VrindaAI")
	assert.Contains(t, response, "AI assistant")
}

func TestResolveCaseInsensitive(t *testing.T) {
	resolver := NewResolver()

	assert.Equal(t, resolver.Resolve("blender"), resolver.Resolve("BLENDER"))
}

func TestResolveFirstMatchWins(t *testing.T) {
	resolver := NewResolver()

	// mentions both VrindaAI and projects; the VrindaAI rule comes first
	response := resolver.Resolve("is VrindaAI your best project?")
	assert.Contains(t, response, "flagship project")
}

func TestResolveCombinedKeywordRule(t *testing.T) {
	resolver := NewResolver()

	response := resolver.Resolve("what is your AI background?")
	assert.Contains(t, response, "AI Engineer")

	// "background" alone should not trigger the experience rule
	other := resolver.Resolve("nice background color")
	assert.NotContains(t, other, "AI Engineer")
}

func TestResolveFallback(t *testing.T) {
	resolver := NewResolver()

	response := resolver.Resolve("zzzzz")
	assert.Contains(t, response, "interesting question")
}
