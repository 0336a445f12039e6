package note

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/ribgsilva/wp-notes-api/platform/auth"
	"github.com/ribgsilva/wp-notes-api/platform/web/links"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	notes []Note
	err   error
	calls int
}

func (f *fakeStore) Query(_ context.Context, postType, status string, author uint64) ([]Note, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	var out []Note
	for _, n := range f.notes {
		if n.Type == postType && n.Status == status && n.Author == author {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeStore) Find(_ context.Context, id uint64) (Note, error) {
	f.calls++
	for _, n := range f.notes {
		if n.Id == id {
			return n, nil
		}
	}
	return Note{}, ErrNotFound
}

type fullLinks struct{}

func (fullLinks) Links(n Note) links.Set {
	return links.Set{"https://api.w.org/term": {{Href: "http://example.com/terms"}}}
}

var (
	admin      = auth.User{ID: 1, Roles: []string{"administrator"}}
	subscriber = auth.User{ID: 2, Roles: []string{"subscriber"}}
	anonymous  = auth.User{}
)

func scenarioStore() *fakeStore {
	return &fakeStore{notes: []Note{
		{Id: 5, Author: 9, Type: PostType, Status: StatusPrivate, Title: "t", Content: "c", ModifiedGmt: "2023-06-15 12:00:00"},
		{Id: 6, Author: 9, Type: PostType, Status: StatusPublish, ModifiedGmt: "2023-06-15 12:00:00"},
		{Id: 7, Author: 10, Type: PostType, Status: StatusPrivate, ModifiedGmt: "2023-06-15 12:00:00"},
	}}
}

func TestEpochMillis(t *testing.T) {
	assert.Equal(t, int64(1672531200000), EpochMillis("2023-01-01 00:00:00"))
	assert.Equal(t, int64(1686830400000), EpochMillis("2023-06-15 12:00:00"))
	assert.Equal(t, EpochMillis("2023-06-15 12:00:00"), EpochMillis("2023-06-15 12:00:00"))
	assert.Equal(t, int64(0), EpochMillis("0000-00-00 00:00:00"))
	assert.Equal(t, int64(0), EpochMillis("1960-01-01 00:00:00"))
	assert.Equal(t, int64(0), EpochMillis("not a date"))
}

func TestListRejectsBadAuthorBeforeStore(t *testing.T) {
	for name, tc := range map[string]struct {
		raw     string
		present bool
		want    error
	}{
		"absent":   {raw: "", present: false, want: ErrMissingAuthor},
		"empty":    {raw: "", present: true, want: ErrInvalidAuthor},
		"word":     {raw: "nine", present: true, want: ErrInvalidAuthor},
		"negative": {raw: "-9", present: true, want: ErrInvalidAuthor},
		"decimal":  {raw: "9.5", present: true, want: ErrInvalidAuthor},
		"hex":      {raw: "0x9", present: true, want: ErrInvalidAuthor},
		"infinity": {raw: "Inf", present: true, want: ErrInvalidAuthor},
		"trailing": {raw: "9abc", present: true, want: ErrInvalidAuthor},
		"huge":     {raw: "1e30", present: true, want: ErrInvalidAuthor},
		"negexp":   {raw: "-9e0", present: true, want: ErrInvalidAuthor},
	} {
		for _, who := range []auth.User{admin, anonymous} {
			store := scenarioStore()
			_, err := Lister{Store: store}.List(context.Background(), who, tc.raw, tc.present)
			assert.ErrorIs(t, err, tc.want, name)
			assert.Zero(t, store.calls, name)
		}
	}
}

func TestListAcceptsNumericAuthor(t *testing.T) {
	for _, raw := range []string{"9", "09", "+9", " 9", "9 ", "\t9\n", "9.0", "9.", "9e0", "0.9e1", "90e-1"} {
		store := scenarioStore()
		got, err := Lister{Store: store}.List(context.Background(), admin, raw, true)
		require.NoError(t, err, raw)
		assert.Equal(t, []Summary{{Id: 5, ModificationDate: 1686830400000}}, got, raw)
		assert.Equal(t, 1, store.calls, raw)
	}
}

func TestParseAuthorKeepsLargeIds(t *testing.T) {
	author, err := ParseAuthor("18446744073709551615", true)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), author)
}

func TestListAuthorization(t *testing.T) {
	store := scenarioStore()

	_, err := Lister{Store: store}.List(context.Background(), anonymous, "9", true)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = Lister{Store: store}.List(context.Background(), subscriber, "9", true)
	assert.ErrorIs(t, err, ErrForbidden)

	assert.Zero(t, store.calls)

	_, err = Lister{Store: store}.List(context.Background(), admin, "9", true)
	assert.NoError(t, err)
}

func TestListScenario(t *testing.T) {
	store := scenarioStore()
	l := Lister{Store: store}

	got, err := l.List(context.Background(), admin, "9", true)
	require.NoError(t, err)
	assert.Equal(t, []Summary{{Id: 5, ModificationDate: 1686830400000}}, got)

	again, err := l.List(context.Background(), admin, "9", true)
	require.NoError(t, err)
	assert.ElementsMatch(t, got, again)
}

func TestListEmpty(t *testing.T) {
	got, err := Lister{Store: scenarioStore()}.List(context.Background(), admin, "404", true)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListStoreFailure(t *testing.T) {
	boom := errors.New("connection refused")
	got, err := Lister{Store: &fakeStore{err: boom}}.List(context.Background(), admin, "9", true)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, got)
}

func TestListLinks(t *testing.T) {
	compacting := Lister{Store: scenarioStore(), Links: RESTLinks{BaseURL: "http://example.com/"}}
	got, err := compacting.List(context.Background(), admin, "9", true)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "http://example.com/wp/v2/wp-notes/5", got[0].Links["self"][0].Href)
	assert.Len(t, got[0].Links["wp:term"], 2)
	assert.Contains(t, got[0].Links, "curies")

	full := Lister{Store: scenarioStore(), Links: fullLinks{}}
	got, err = full.List(context.Background(), admin, "9", true)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Contains(t, got[0].Links, "https://api.w.org/term")
	assert.NotContains(t, got[0].Links, "curies")
}

func TestItemSchemaDeclaresSummaryFields(t *testing.T) {
	s := ItemSchema()
	assert.Len(t, s.Properties, 2)
	assert.Equal(t, "integer", s.Properties["id"].Type)
	assert.True(t, s.Properties["id"].ReadOnly)
	assert.Equal(t, []string{"view", "edit", "embed"}, s.Properties["id"].Context)
	assert.Equal(t, "integer", s.Properties["modificationDate"].Type)
}

func TestCanRead(t *testing.T) {
	private := Note{Id: 5, Author: 9, Status: StatusPrivate}
	owner := auth.User{ID: 9, Roles: []string{"subscriber"}}

	assert.NoError(t, CanRead(anonymous, Note{Status: StatusPublish}))
	assert.NoError(t, CanRead(owner, private))
	assert.NoError(t, CanRead(admin, private))
	assert.ErrorIs(t, CanRead(subscriber, private), ErrForbidden)
	assert.ErrorIs(t, CanRead(anonymous, private), ErrUnauthorized)

	draft := Note{Id: 11, Author: 9, Status: "draft"}
	editor := auth.User{ID: 3, Roles: []string{"editor"}}
	reader := auth.User{ID: 4, Roles: []string{"subscriber"}}
	draftOwner := auth.User{ID: 9, Roles: []string{"author"}}
	privateReader := fakeReader{id: 12, caps: []string{auth.ReadPrivatePosts}}

	assert.NoError(t, CanRead(draftOwner, draft))
	assert.NoError(t, CanRead(editor, draft))
	assert.NoError(t, CanRead(admin, draft))
	assert.ErrorIs(t, CanRead(privateReader, draft), ErrForbidden)
	assert.ErrorIs(t, CanRead(reader, draft), ErrForbidden)
	assert.ErrorIs(t, CanRead(owner, draft), ErrForbidden)
	assert.ErrorIs(t, CanRead(anonymous, draft), ErrUnauthorized)
	assert.ErrorIs(t, CanRead(anonymous, Note{Author: 9, Status: "pending"}), ErrUnauthorized)
}

// fakeReader holds an arbitrary set of capabilities.
type fakeReader struct {
	id   uint64
	caps []string
}

func (f fakeReader) Authenticated() bool { return f.id != 0 }
func (f fakeReader) UserID() uint64      { return f.id }
func (f fakeReader) Can(capability string) bool {
	for _, c := range f.caps {
		if c == capability {
			return true
		}
	}
	return false
}
