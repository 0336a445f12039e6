package note

import (
	"fmt"
	"strings"

	"github.com/ribgsilva/wp-notes-api/platform/web/links"
)

// RestBase is the path of the store-native note resources.
const RestBase = "/wp/v2/wp-notes"

// LinkRenderer builds the hypermedia links of a note.
type LinkRenderer interface {
	Links(n Note) links.Set
}

// Compactor is implemented by renderers able to shorten their links.
type Compactor interface {
	Compact(set links.Set) links.Set
}

// RESTLinks renders the links the content store attaches to a note.
type RESTLinks struct {
	BaseURL string
}

func (r RESTLinks) Links(n Note) links.Set {
	base := strings.TrimSuffix(r.BaseURL, "/")

	set := links.Set{}
	set.Add("self", links.Link{Href: fmt.Sprintf("%s%s/%d", base, RestBase, n.Id)})
	set.Add("collection", links.Link{Href: base + RestBase})
	set.Add("about", links.Link{Href: fmt.Sprintf("%s/wp/v2/types/%s", base, PostType)})
	set.Add("author", links.Link{Href: fmt.Sprintf("%s/wp/v2/users/%d", base, n.Author), Embeddable: true})
	set.Add("https://api.w.org/term", links.Link{
		Href:       fmt.Sprintf("%s/wp/v2/categories?post=%d", base, n.Id),
		Taxonomy:   "category",
		Embeddable: true,
	})
	set.Add("https://api.w.org/term", links.Link{
		Href:       fmt.Sprintf("%s/wp/v2/tags?post=%d", base, n.Id),
		Taxonomy:   "post_tag",
		Embeddable: true,
	})
	return set
}

func (r RESTLinks) Compact(set links.Set) links.Set {
	return links.Compact(set, links.WP)
}
