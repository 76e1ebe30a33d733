package sitemap

import (
	"bytes"
	"encoding/xml"
	"strings"
	"sync"
	"time"
)

const dateLayout = "2006-01-02"

// Page is a static route listed in the sitemap.
type Page struct {
	Path       string `yaml:"path"`
	Priority   string `yaml:"priority"`
	ChangeFreq string `yaml:"changefreq"`
}

// DefaultPages is used when no route file is configured.
var DefaultPages = []Page{
	{Path: "/", Priority: "1.0", ChangeFreq: "weekly"},
	{Path: "/blog", Priority: "0.9", ChangeFreq: "daily"},
	{Path: "/contact", Priority: "0.8", ChangeFreq: "monthly"},
	{Path: "/privacy", Priority: "0.5", ChangeFreq: "monthly"},
}

// Post is the minimal blog post projection the sitemap needs.
type Post struct {
	Slug      string     `json:"slug"`
	UpdatedAt *time.Time `json:"_updatedAt"`
}

type urlEntry struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

type urlSet struct {
	XMLName        xml.Name   `xml:"urlset"`
	Xmlns          string     `xml:"xmlns,attr"`
	XmlnsXsi       string     `xml:"xmlns:xsi,attr"`
	SchemaLocation string     `xml:"xsi:schemaLocation,attr"`
	URLs           []urlEntry `xml:"url"`
}

// Generator renders sitemap.xml for a site origin.
type Generator struct {
	siteURL string
	now     func() time.Time

	mu    sync.RWMutex
	pages []Page
}

func NewGenerator(siteURL string, pages []Page) *Generator {
	if len(pages) == 0 {
		pages = DefaultPages
	}
	return &Generator{siteURL: strings.TrimRight(siteURL, "/"), pages: pages, now: time.Now}
}

// SetPages swaps the static route table, for example after the routes file
// changed on disk. An empty table restores the defaults.
func (g *Generator) SetPages(pages []Page) {
	if len(pages) == 0 {
		pages = DefaultPages
	}
	g.mu.Lock()
	g.pages = pages
	g.mu.Unlock()
}

func (g *Generator) staticPages() []Page {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.pages
}

// Generate lists static pages first, then one entry per post in the order
// given. It also returns the number of <url> entries written.
func (g *Generator) Generate(posts []Post) ([]byte, int, error) {
	today := g.now().UTC().Format(dateLayout)

	set := urlSet{
		Xmlns:          "http://www.sitemaps.org/schemas/sitemap/0.9",
		XmlnsXsi:       "http://www.w3.org/2001/XMLSchema-instance",
		SchemaLocation: "http://www.sitemaps.org/schemas/sitemap/0.9 http://www.sitemaps.org/schemas/sitemap/0.9/sitemap.xsd",
	}

	for _, page := range g.staticPages() {
		set.URLs = append(set.URLs, urlEntry{
			Loc:        g.siteURL + page.Path,
			LastMod:    today,
			ChangeFreq: page.ChangeFreq,
			Priority:   page.Priority,
		})
	}

	for _, post := range posts {
		if post.Slug == "" {
			continue
		}
		lastmod := today
		if post.UpdatedAt != nil && !post.UpdatedAt.IsZero() {
			lastmod = post.UpdatedAt.UTC().Format(dateLayout)
		}
		set.URLs = append(set.URLs, urlEntry{
			Loc:        g.siteURL + "/blog/" + post.Slug,
			LastMod:    lastmod,
			ChangeFreq: "weekly",
			Priority:   "0.8",
		})
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return nil, 0, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), len(set.URLs), nil
}
