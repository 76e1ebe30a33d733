package controller

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"stratigo-site/internal/entity"
	"stratigo-site/internal/pkg/logger"
	"stratigo-site/internal/pkg/serverutils"
	"stratigo-site/internal/repository/contract"
	"stratigo-site/internal/service"
	"stratigo-site/internal/view"
	"stratigo-site/pkg/analytics"
	"stratigo-site/pkg/consent"
	"stratigo-site/pkg/navigation"
	"stratigo-site/pkg/seo"
	"stratigo-site/pkg/sitemap"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubContent struct {
	contract.ContentRepository
	posts []entity.BlogPost
}

func (s *stubContent) Hero(ctx context.Context) (*entity.Hero, error) { return nil, contract.ErrNotFound }
func (s *stubContent) CTA(ctx context.Context) (*entity.CTA, error)   { return nil, contract.ErrNotFound }
func (s *stubContent) BlogPosts(ctx context.Context) ([]entity.BlogPost, error) {
	return s.posts, nil
}
func (s *stubContent) FeaturedBlogPosts(ctx context.Context, limit int) ([]entity.BlogPost, error) {
	return s.posts, nil
}
func (s *stubContent) CaseStudies(ctx context.Context) ([]entity.CaseStudy, error) { return nil, nil }
func (s *stubContent) BlogPostBySlug(ctx context.Context, slug string) (*entity.BlogPost, error) {
	for i := range s.posts {
		if s.posts[i].Slug.Current == slug {
			return &s.posts[i], nil
		}
	}
	return nil, contract.ErrNotFound
}
func (s *stubContent) SitemapPosts(ctx context.Context) ([]sitemap.Post, error) {
	out := make([]sitemap.Post, 0, len(s.posts))
	for _, p := range s.posts {
		out = append(out, sitemap.Post{Slug: p.Slug.Current})
	}
	return out, nil
}

type sinkCall struct {
	cmd      analytics.Command
	name     string
	params   map[string]interface{}
	clientID string
}

type recordingSink struct {
	mu    sync.Mutex
	calls []sinkCall
}

func (s *recordingSink) Send(ctx context.Context, cmd analytics.Command, name string, params map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, sinkCall{cmd: cmd, name: name, params: params, clientID: analytics.ClientIDFrom(ctx)})
	return nil
}

func (s *recordingSink) snapshot() []sinkCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]sinkCall(nil), s.calls...)
}

const testSiteURL = "https://stratigo.co.id"

func newTestApp(t *testing.T, sink analytics.Sink) *fiber.App {
	t.Helper()
	return newTestAppWithDispatcher(t, sink, func(job func()) { job() })
}

func newTestAppWithDispatcher(t *testing.T, sink analytics.Sink, dispatch navigation.Dispatcher) *fiber.App {
	t.Helper()
	log := logger.NewNopLogger()

	published := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	repo := &stubContent{posts: []entity.BlogPost{{
		Title:         "Local SEO",
		Slug:          entity.Slug{Current: "local-seo"},
		Excerpt:       "Rank in your city",
		FeaturedImage: &entity.Image{URL: "https://cdn.sanity.io/images/p/d/seo.jpg"},
		PublishedAt:   &published,
	}}}

	renderer, err := view.NewRenderer()
	require.NoError(t, err)

	observer := navigation.NewObserver(sink, "G-TEST123", log, navigation.WithDispatcher(dispatch))
	contentSvc := service.NewContentService(repo, nil, log)
	pageSvc := service.NewPageService(contentSvc, log)
	sitemapSvc := service.NewSitemapService(repo, sitemap.NewGenerator(testSiteURL, nil), log)
	leadSvc := service.NewLeadService(nil, nil, nil, log)

	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware(log))

	pages := NewPageController(pageSvc, renderer, seo.NewSynchronizer(testSiteURL), observer, log)
	pages.RegisterRoutes(app)
	NewSitemapController(sitemapSvc, testSiteURL).RegisterRoutes(app)

	api := app.Group("/api")
	NewContentController(contentSvc).RegisterRoutes(api)
	NewNavigationController(observer).RegisterRoutes(api)
	NewConsentController(observer, false).RegisterRoutes(api)
	NewLeadController(leadSvc).RegisterRoutes(api)
	NewWebhookController(contentSvc, nil, "s3cret", log).RegisterRoutes(api)

	app.Use(pages.NotFound)
	return app
}

func do(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, string) {
	t.Helper()
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func withConsent(req *http.Request, value string) *http.Request {
	req.AddCookie(&http.Cookie{Name: consent.StorageKey, Value: value})
	return req
}

func parseHead(t *testing.T, body string) *seo.Document {
	t.Helper()
	doc, err := seo.ParseDocument(strings.NewReader(body))
	require.NoError(t, err)
	return doc
}

func TestBlogPostPageHead(t *testing.T) {
	app := newTestApp(t, &recordingSink{})

	resp, body := do(t, app, httptest.NewRequest("GET", "/blog/local-seo", nil))
	require.Equal(t, 200, resp.StatusCode)

	doc := parseHead(t, body)
	assert.Equal(t, "Local SEO | Stratigo Blog", doc.Title())

	canonical, _ := doc.Get(seo.Canonical)
	assert.Equal(t, testSiteURL+"/blog/local-seo", canonical)
	ogType, _ := doc.Get(seo.OGType)
	assert.Equal(t, "article", ogType)
	image, _ := doc.Get(seo.TwitterImage)
	assert.Equal(t, "https://cdn.sanity.io/images/p/d/seo.jpg", image)

	for _, id := range seo.Elements() {
		assert.Equal(t, 1, doc.Count(id), id.String())
	}
}

func TestPageViewOnlyWithConsent(t *testing.T) {
	sink := &recordingSink{}
	app := newTestApp(t, sink)

	do(t, app, httptest.NewRequest("GET", "/pricing", nil))
	do(t, app, withConsent(httptest.NewRequest("GET", "/pricing", nil), "declined"))
	do(t, app, withConsent(httptest.NewRequest("GET", "/pricing", nil), "Accepted"))
	assert.Empty(t, sink.snapshot())

	req := withConsent(httptest.NewRequest("GET", "/pricing?ref=ad", nil), consent.ValueAccepted)
	req.AddCookie(&http.Cookie{Name: serverutils.VisitorCookie, Value: "visitor-1"})
	do(t, app, req)

	calls := sink.snapshot()
	require.Len(t, calls, 1)
	assert.Equal(t, analytics.CommandConfig, calls[0].cmd)
	assert.Equal(t, "G-TEST123", calls[0].name)
	assert.Equal(t, "/pricing?ref=ad", calls[0].params["page_path"])
	assert.Equal(t, "Pricing | Stratigo", calls[0].params["page_title"])
	assert.Equal(t, "visitor-1", calls[0].clientID)
}

func TestMissingPostRendersNotFound(t *testing.T) {
	app := newTestApp(t, nil)

	resp, body := do(t, app, httptest.NewRequest("GET", "/blog/missing", nil))
	assert.Equal(t, 404, resp.StatusCode)
	assert.Equal(t, "Page not found | Stratigo", parseHead(t, body).Title())

	resp, _ = do(t, app, httptest.NewRequest("GET", "/does-not-exist", nil))
	assert.Equal(t, 404, resp.StatusCode)
}

func TestNavigationBeacon(t *testing.T) {
	sink := &recordingSink{}
	app := newTestApp(t, sink)

	newReq := func() *http.Request {
		req := httptest.NewRequest("POST", "/api/navigations", strings.NewReader(`{"path":"/blog","title":"Blog | Stratigo"}`))
		req.Header.Set("Content-Type", "application/json")
		return req
	}

	resp, body := do(t, app, newReq())
	assert.Equal(t, 202, resp.StatusCode)
	assert.Contains(t, body, `"tracked":false`)
	assert.Empty(t, sink.snapshot())

	resp, body = do(t, app, withConsent(newReq(), consent.ValueAccepted))
	assert.Equal(t, 202, resp.StatusCode)
	assert.Contains(t, body, `"tracked":true`)
	require.Len(t, sink.snapshot(), 1)
	assert.Equal(t, "/blog", sink.snapshot()[0].params["page_path"])

	bad := httptest.NewRequest("POST", "/api/navigations", strings.NewReader(`{"path":"blog"}`))
	bad.Header.Set("Content-Type", "application/json")
	resp, _ = do(t, app, bad)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestTrackEvent(t *testing.T) {
	sink := &recordingSink{}
	app := newTestApp(t, sink)

	req := httptest.NewRequest("POST", "/api/events", strings.NewReader(`{"name":"cta_click","params":{"label":"whatsapp"}}`))
	req.Header.Set("Content-Type", "application/json")
	do(t, app, withConsent(req, consent.ValueAccepted))

	calls := sink.snapshot()
	require.Len(t, calls, 1)
	assert.Equal(t, analytics.CommandEvent, calls[0].cmd)
	assert.Equal(t, "cta_click", calls[0].name)
	assert.Equal(t, "whatsapp", calls[0].params["label"])
}

func TestConsentEndpoint(t *testing.T) {
	app := newTestApp(t, &recordingSink{})

	req := httptest.NewRequest("POST", "/api/consent", strings.NewReader(`{"decision":"accepted"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, body := do(t, app, req)
	require.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, body, `"decision":"granted"`)

	var names []string
	for _, c := range resp.Cookies() {
		names = append(names, c.Name)
		if c.Name == consent.StorageKey {
			assert.Equal(t, consent.ValueAccepted, c.Value)
		}
	}
	assert.Contains(t, names, consent.StorageKey)
	assert.Contains(t, names, serverutils.VisitorCookie)

	req = httptest.NewRequest("POST", "/api/consent", strings.NewReader(`{"decision":"maybe"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, _ = do(t, app, req)
	assert.Equal(t, 400, resp.StatusCode)

	resp, body = do(t, app, withConsent(httptest.NewRequest("GET", "/api/consent", nil), consent.ValueDeclined))
	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, body, `"decision":"denied"`)
	assert.Contains(t, body, `"tracking":false`)
}

func TestLeadEndpoint(t *testing.T) {
	app := newTestApp(t, nil)

	req := httptest.NewRequest("POST", "/api/leads", strings.NewReader(`{"name":"Budi","email":"nope","message":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, _ := do(t, app, req)
	assert.Equal(t, 422, resp.StatusCode)

	req = httptest.NewRequest("POST", "/api/leads", strings.NewReader(`{"name":"Budi","email":"budi@example.com","message":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, body := do(t, app, req)
	assert.Equal(t, 201, resp.StatusCode)
	assert.Contains(t, body, `"id"`)
}

func TestContentAPI(t *testing.T) {
	app := newTestApp(t, nil)

	resp, body := do(t, app, httptest.NewRequest("GET", "/api/content/posts/local-seo", nil))
	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, body, `"title":"Local SEO"`)

	resp, _ = do(t, app, httptest.NewRequest("GET", "/api/content/posts/missing", nil))
	assert.Equal(t, 404, resp.StatusCode)

	resp, _ = do(t, app, httptest.NewRequest("GET", "/api/content/hero", nil))
	assert.Equal(t, 404, resp.StatusCode)
}

func TestSitemapAndRobots(t *testing.T) {
	app := newTestApp(t, nil)

	resp, body := do(t, app, httptest.NewRequest("GET", "/sitemap.xml", nil))
	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, body, testSiteURL+"/blog/local-seo")

	_, body = do(t, app, httptest.NewRequest("GET", "/robots.txt", nil))
	assert.Contains(t, body, "Sitemap: "+testSiteURL+"/sitemap.xml")
}

func TestWebhookRequiresToken(t *testing.T) {
	app := newTestApp(t, nil)

	resp, _ := do(t, app, httptest.NewRequest("POST", "/api/webhooks/revalidate", nil))
	assert.Equal(t, 401, resp.StatusCode)
}

func TestPageViewsForwardedAfterResponseKeepTheirPath(t *testing.T) {
	sink := &recordingSink{}
	var mu sync.Mutex
	var queued []func()
	app := newTestAppWithDispatcher(t, sink, func(job func()) {
		mu.Lock()
		queued = append(queued, job)
		mu.Unlock()
	})

	type visit struct{ path, visitor string }
	var visits []visit
	for i := 0; i < 6; i++ {
		v := visit{path: fmt.Sprintf("/blog?q=%d", i), visitor: fmt.Sprintf("visitor-%d", i)}
		if i%2 == 1 {
			v.path = fmt.Sprintf("/privacy?zz=%d", i)
		}
		visits = append(visits, v)

		req := withConsent(httptest.NewRequest(http.MethodGet, v.path, nil), consent.ValueAccepted)
		req.AddCookie(&http.Cookie{Name: serverutils.VisitorCookie, Value: v.visitor})
		resp, _ := do(t, app, req)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	mu.Lock()
	jobs := queued
	mu.Unlock()
	for _, job := range jobs {
		job()
	}

	calls := sink.snapshot()
	require.Len(t, calls, len(visits))
	for i, v := range visits {
		assert.Equal(t, v.path, calls[i].params["page_path"], "visit %d", i)
		assert.Equal(t, v.visitor, calls[i].clientID, "visit %d", i)
	}
}
