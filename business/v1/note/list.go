package note

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/ribgsilva/wp-notes-api/platform/auth"
	"github.com/ribgsilva/wp-notes-api/platform/web/links"
)

// Lister answers "list the notes of an author" requests.
type Lister struct {
	Store Store
	// Links is optional, summaries carry no links without it.
	Links LinkRenderer
}

// Response is a prepared item before it joins a collection.
type Response struct {
	Data  Summary
	Links links.Set
}

// numeric matches decimal numeric strings: optional surrounding whitespace and
// sign, digits with an optional fraction, and an optional exponent.
var numeric = regexp.MustCompile(`^[ \t\n\r\v\f]*[+-]?([0-9]+(\.[0-9]*)?|\.[0-9]+)([eE][+-]?[0-9]+)?[ \t\n\r\v\f]*$`)

// ParseAuthor validates the raw author parameter of a request. Any numeric
// string naming a non-negative whole number is an author id, so "9", "09",
// " 9", "9.0" and "9e0" all name author 9.
func ParseAuthor(raw string, present bool) (uint64, error) {
	if !present {
		return 0, ErrMissingAuthor
	}
	if !numeric.MatchString(raw) {
		return 0, ErrInvalidAuthor
	}

	trimmed := strings.Trim(raw, " \t\n\r\v\f")
	if author, err := strconv.ParseUint(strings.TrimPrefix(trimmed, "+"), 10, 64); err == nil {
		return author, nil
	}

	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsInf(f, 0) || f < 0 || f != math.Trunc(f) || f >= math.MaxUint64 {
		return 0, ErrInvalidAuthor
	}
	return uint64(f), nil
}

// List returns the summaries of every private note owned by the author. The
// parameter is validated and the requester authorized before the store is queried.
func (l Lister) List(ctx context.Context, who Requester, rawAuthor string, present bool) ([]Summary, error) {
	author, err := ParseAuthor(rawAuthor, present)
	if err != nil {
		return nil, err
	}

	if err := Authorize(who, auth.ReadPrivatePosts); err != nil {
		return nil, err
	}

	notes, err := l.Store.Query(ctx, PostType, StatusPrivate, author)
	if err != nil {
		return nil, fmt.Errorf("query notes of author %d: %w", author, err)
	}

	data := make([]Summary, 0, len(notes))
	for _, n := range notes {
		data = append(data, l.PrepareForCollection(l.PrepareItem(n)))
	}

	return data, nil
}

// PrepareItem shapes a note into a Summary following ItemSchema.
func (l Lister) PrepareItem(n Note) Response {
	r := Response{
		Data: Summary{
			Id:               n.Id,
			ModificationDate: EpochMillis(n.ModifiedGmt),
		},
	}
	if l.Links != nil {
		r.Links = l.Links.Links(n)
	}
	return r
}

// PrepareForCollection folds the links of r into its data, compacted when the
// renderer supports it.
func (l Lister) PrepareForCollection(r Response) Summary {
	data := r.Data
	if len(r.Links) == 0 {
		return data
	}

	set := r.Links
	if c, ok := l.Links.(Compactor); ok {
		set = c.Compact(set)
	}
	data.Links = set

	return data
}
