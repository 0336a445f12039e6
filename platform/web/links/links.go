// Package links models hypermedia link sets attached to REST resources and
// their compact form, where relation URIs are shortened through CURIEs.
package links

import "strings"

const relPlaceholder = "{rel}"

// Link is one target of a relation.
type Link struct {
	Href       string `json:"href"`
	Name       string `json:"name,omitempty"`
	Taxonomy   string `json:"taxonomy,omitempty"`
	Embeddable bool   `json:"embeddable,omitempty"`
	Templated  bool   `json:"templated,omitempty"`
}

// Set maps relation names to their targets.
type Set map[string][]Link

// Curie is a compact URI template such as wp => https://api.w.org/{rel}.
type Curie struct {
	Name string
	Href string
}

// WP is the curie used for relations under https://api.w.org/.
var WP = Curie{Name: "wp", Href: "https://api.w.org/" + relPlaceholder}

// Add appends a target to rel.
func (s Set) Add(rel string, l Link) {
	s[rel] = append(s[rel], l)
}

// Compact returns a copy of set where every relation starting with the prefix of
// one of curies is renamed to name:suffix. The curies that were used are listed
// under the "curies" relation.
func Compact(set Set, curies ...Curie) Set {
	if len(set) == 0 {
		return set
	}

	out := make(Set, len(set))
	used := make([]bool, len(curies))

	for rel, targets := range set {
		name := rel
		for i, c := range curies {
			prefix := c.Href
			if idx := strings.Index(prefix, relPlaceholder); idx >= 0 {
				prefix = prefix[:idx]
			}
			if prefix == "" || !strings.HasPrefix(rel, prefix) {
				continue
			}
			name = c.Name + ":" + strings.TrimPrefix(rel, prefix)
			used[i] = true
			break
		}
		out[name] = append(out[name], targets...)
	}

	for i, c := range curies {
		if !used[i] {
			continue
		}
		out.Add("curies", Link{Name: c.Name, Href: c.Href, Templated: true})
	}

	return out
}
