package seo

import "strings"

// Metadata is what a page supplies for its head. Every field is optional;
// empty fields leave the corresponding elements untouched.
type Metadata struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	URL         string `json:"url,omitempty"`
	Type        string `json:"type,omitempty"`
}

// Synchronizer reconciles a document head against page metadata.
type Synchronizer struct {
	baseURL string
}

func NewSynchronizer(baseURL string) *Synchronizer {
	return &Synchronizer{baseURL: strings.TrimRight(baseURL, "/")}
}

// CanonicalURL resolves a router full path against the site origin.
func (s *Synchronizer) CanonicalURL(fullPath string) string {
	if fullPath == "" {
		fullPath = "/"
	}
	if !strings.HasPrefix(fullPath, "/") {
		fullPath = "/" + fullPath
	}
	return s.baseURL + fullPath
}

// Reconcile writes the supplied fields into doc. Calling it repeatedly with
// the same metadata leaves the head unchanged after the first call.
func (s *Synchronizer) Reconcile(doc *Document, meta Metadata, fullPath string) {
	if meta.Title != "" {
		doc.SetTitle(meta.Title)
	}

	if meta.Description != "" {
		doc.Set(Description, meta.Description)
		doc.Set(OGDescription, meta.Description)
		doc.Set(TwitterDescription, meta.Description)
	}

	if meta.Title != "" {
		doc.Set(OGTitle, meta.Title)
		doc.Set(TwitterTitle, meta.Title)
	}

	url := meta.URL
	if url == "" {
		url = s.CanonicalURL(fullPath)
	}
	doc.Set(OGURL, url)
	doc.Set(TwitterURL, url)
	doc.Set(Canonical, url)

	if meta.Image != "" {
		doc.Set(OGImage, meta.Image)
		doc.Set(TwitterImage, meta.Image)
	}

	if meta.Type != "" {
		doc.Set(OGType, meta.Type)
	}
}

// Binding ties static metadata to one document, re-applying it on mount and
// whenever the route path changes.
type Binding struct {
	sync *Synchronizer
	doc  *Document
	meta *Metadata
	path string
}

// Bind returns a Binding. A nil meta makes Mount and RouteChanged no-ops;
// Update still works.
func (s *Synchronizer) Bind(doc *Document, meta *Metadata) *Binding {
	return &Binding{sync: s, doc: doc, meta: meta}
}

func (b *Binding) Mount(fullPath string) {
	b.path = fullPath
	if b.meta != nil {
		b.sync.Reconcile(b.doc, *b.meta, fullPath)
	}
}

// RouteChanged re-runs reconciliation when fullPath differs from the last seen path.
func (b *Binding) RouteChanged(fullPath string) {
	if fullPath == b.path {
		return
	}
	b.path = fullPath
	if b.meta != nil {
		b.sync.Reconcile(b.doc, *b.meta, fullPath)
	}
}

// Update applies ad-hoc metadata against the current path, for pages whose
// metadata arrives after mount.
func (b *Binding) Update(meta Metadata) {
	b.sync.Reconcile(b.doc, meta, b.path)
}
