package links

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompact(t *testing.T) {
	set := Set{}
	set.Add("self", Link{Href: "http://example.com/wp/v2/wp-notes/5"})
	set.Add("https://api.w.org/term", Link{Href: "http://example.com/wp/v2/categories?post=5", Taxonomy: "category", Embeddable: true})
	set.Add("https://api.w.org/term", Link{Href: "http://example.com/wp/v2/tags?post=5", Taxonomy: "post_tag", Embeddable: true})

	got := Compact(set, WP)

	assert.Equal(t, set["self"], got["self"])
	assert.Len(t, got["wp:term"], 2)
	assert.NotContains(t, got, "https://api.w.org/term")
	assert.Equal(t, []Link{{Name: "wp", Href: "https://api.w.org/{rel}", Templated: true}}, got["curies"])

	// the input is left untouched
	assert.Contains(t, set, "https://api.w.org/term")
}

func TestCompactWithoutMatches(t *testing.T) {
	set := Set{"self": {{Href: "http://example.com/a"}}}

	got := Compact(set, WP)

	assert.Equal(t, set, got)
	assert.NotContains(t, got, "curies")
	assert.Empty(t, Compact(Set{}, WP))
}
