package seo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const origin = "https://stratigo.co.id"

func TestReconcileIsIdempotent(t *testing.T) {
	s := NewSynchronizer(origin)
	once := NewDocument()
	twice := NewDocument()

	meta := Metadata{Title: "A", Description: "B"}
	s.Reconcile(once, meta, "/about")
	s.Reconcile(twice, meta, "/about")
	s.Reconcile(twice, meta, "/about")

	assert.Equal(t, once.String(), twice.String())
}

func TestReconcilePartialUpdateKeepsUnspecifiedFields(t *testing.T) {
	s := NewSynchronizer(origin)
	doc := NewDocument()

	s.Reconcile(doc, Metadata{Title: "A", Description: "B"}, "/")
	s.Reconcile(doc, Metadata{Title: "C"}, "/")

	assert.Equal(t, "C", doc.Title())
	desc, ok := doc.Get(Description)
	require.True(t, ok)
	assert.Equal(t, "B", desc)
	ogTitle, _ := doc.Get(OGTitle)
	assert.Equal(t, "C", ogTitle)
	twDesc, _ := doc.Get(TwitterDescription)
	assert.Equal(t, "B", twDesc)
}

func TestReconcileDefaultCanonical(t *testing.T) {
	s := NewSynchronizer(origin + "/")
	doc := NewDocument()

	s.Reconcile(doc, Metadata{}, "/blog/my-post")

	for _, id := range []ElementID{Canonical, OGURL, TwitterURL} {
		v, ok := doc.Get(id)
		require.True(t, ok, id.String())
		assert.Equal(t, "https://stratigo.co.id/blog/my-post", v)
	}
	_, ok := doc.Get(Description)
	assert.False(t, ok, "empty metadata must not create description")
	assert.Equal(t, "", doc.Title())
}

func TestReconcileExplicitURLWins(t *testing.T) {
	s := NewSynchronizer(origin)
	doc := NewDocument()
	s.Reconcile(doc, Metadata{URL: "https://stratigo.co.id/blog"}, "/blog?page=2")

	v, _ := doc.Get(Canonical)
	assert.Equal(t, "https://stratigo.co.id/blog", v)
}

func TestReconcileReusesElements(t *testing.T) {
	s := NewSynchronizer(origin)
	doc := NewDocument()

	s.Reconcile(doc, Metadata{Title: "A", Description: "first", Image: "i1", Type: "website"}, "/")
	s.Reconcile(doc, Metadata{Title: "B", Description: "second", Image: "i2", Type: "article"}, "/blog/x")

	for _, id := range Elements() {
		assert.Equal(t, 1, doc.Count(id), id.String())
	}
	desc, _ := doc.Get(Description)
	assert.Equal(t, "second", desc)
	ogType, _ := doc.Get(OGType)
	assert.Equal(t, "article", ogType)
}

func TestReconcileUpdatesExistingMarkupInPlace(t *testing.T) {
	page := `<!DOCTYPE html><html><head>
<title>Old</title>
<meta name="description" content="old desc">
<meta property="og:image" content="keep.png">
<link rel="canonical" href="https://old.example/">
<meta name="viewport" content="width=device-width">
</head><body><h1>hi</h1></body></html>`

	doc, err := ParseDocument(strings.NewReader(page))
	require.NoError(t, err)

	NewSynchronizer(origin).Reconcile(doc, Metadata{Title: "New", Description: "new desc"}, "/kontak")

	assert.Equal(t, "New", doc.Title())
	assert.Equal(t, 1, doc.Count(Description))
	desc, _ := doc.Get(Description)
	assert.Equal(t, "new desc", desc)
	img, _ := doc.Get(OGImage)
	assert.Equal(t, "keep.png", img)
	canonical, _ := doc.Get(Canonical)
	assert.Equal(t, "https://stratigo.co.id/kontak", canonical)
	assert.Contains(t, doc.String(), `name="viewport"`)
	assert.Contains(t, doc.String(), "<h1>hi</h1>")
}

func TestBindingMountAndRouteChange(t *testing.T) {
	s := NewSynchronizer(origin)
	doc := NewDocument()
	meta := &Metadata{Title: "Blog", Type: "website"}

	b := s.Bind(doc, meta)
	b.Mount("/blog")
	canonical, _ := doc.Get(Canonical)
	assert.Equal(t, origin+"/blog", canonical)

	b.RouteChanged("/blog?page=2")
	canonical, _ = doc.Get(Canonical)
	assert.Equal(t, origin+"/blog?page=2", canonical)
	assert.Equal(t, "Blog", doc.Title())
}

func TestBindingWithoutMetadataDoesNothing(t *testing.T) {
	s := NewSynchronizer(origin)
	doc := NewDocument()
	before := doc.String()

	b := s.Bind(doc, nil)
	b.Mount("/")
	b.RouteChanged("/blog")
	assert.Equal(t, before, doc.String())

	b.Update(Metadata{Title: "Late"})
	assert.Equal(t, "Late", doc.Title())
	canonical, _ := doc.Get(Canonical)
	assert.Equal(t, origin+"/blog", canonical)
}

func TestParseDocumentWithoutHeadTagStillHasHead(t *testing.T) {
	doc, err := ParseDocument(strings.NewReader("<p>fragment</p>"))
	require.NoError(t, err)
	doc.Set(Description, "x")
	assert.Equal(t, 1, doc.Count(Description))
}

func TestElementIDString(t *testing.T) {
	assert.Equal(t, "og:title", OGTitle.String())
	assert.Equal(t, "canonical", Canonical.String())
	assert.Equal(t, "unknown", ElementID(99).String())
	assert.Len(t, Elements(), 11)
}
