package tests

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/mzinga/pageforge/core/layout"
	"github.com/mzinga/pageforge/tests"
)

func Test_siteApi_render(t *testing.T) {
	resetDB(t)

	testutil.CreatePage(t, pageRepo, "/reviews/betting-sites", "Betting Sites",
		testutil.NewSection("s1", "hero", false, layout.Props{"title": "Hidden Hero"}),
		testutil.NewSection("s2", "card_grid", true, layout.Props{
			"title": "Top Sites",
			"cards": []interface{}{
				map[string]interface{}{"name": "Bet365", "url": "/reviews/bet365", "rating": 4.5},
			},
		}),
		testutil.NewSection("s3", "retired_widget", true, nil),
		testutil.NewSection("s4", "promo_banner", true, layout.Props{
			"text": "Claim your bonus", "url": "https://example.com/go/bonus",
		}),
	)

	req, rec := newRequest(http.MethodGet, "/site/reviews/betting-sites")
	app.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("failed! code = %v; wantCode %v: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	html := rec.Body.String()

	if want := "<title>Betting Sites | BetScout</title>"; !strings.Contains(html, want) {
		t.Errorf("failed! missing %q in:\n%s", want, html)
	}
	if !strings.Contains(html, "Top Sites") || !strings.Contains(html, "Bet365") {
		t.Errorf("failed! visible card grid missing in:\n%s", html)
	}
	if strings.Contains(html, "Hidden Hero") {
		t.Errorf("failed! hidden section rendered in:\n%s", html)
	}
	if strings.Contains(html, "retired_widget") {
		t.Errorf("failed! unknown component leaked into output:\n%s", html)
	}
	// visible sections keep their stored order
	if strings.Index(html, "Top Sites") > strings.Index(html, "Claim your bonus") {
		t.Errorf("failed! section order not preserved in:\n%s", html)
	}
}

func Test_siteApi_render_seoHead(t *testing.T) {
	resetDB(t)

	doc := testutil.CreatePage(t, pageRepo, "/about", "About Us")
	doc.SeoTitle = "About BetScout"
	doc.SeoDescription = "Who we are & why you can trust us."
	if _, err := pageRepo.UpdatePage(context.Background(), doc); err != nil {
		t.Fatalf("UpdatePage(): %v", err)
	}

	request, rec := newRequest(http.MethodGet, "/site/about")
	app.ServeHTTP(rec, request)

	if rec.Code != http.StatusOK {
		t.Fatalf("failed! code = %v; wantCode %v", rec.Code, http.StatusOK)
	}
	html := rec.Body.String()

	if want := "<title>About BetScout | BetScout</title>"; !strings.Contains(html, want) {
		t.Errorf("failed! missing %q in:\n%s", want, html)
	}
	if want := `<meta name="description" content="Who we are &amp; why you can trust us.">`; !strings.Contains(html, want) {
		t.Errorf("failed! missing %q in:\n%s", want, html)
	}
}

func Test_siteApi_render_rootPage(t *testing.T) {
	resetDB(t)

	testutil.CreatePage(t, pageRepo, "/", "Home",
		testutil.NewSection("s1", "hero", true, layout.Props{"title": "Welcome to BetScout"}),
	)

	request, rec := newRequest(http.MethodGet, "/site")
	app.ServeHTTP(rec, request)

	if rec.Code != http.StatusOK {
		t.Fatalf("failed! code = %v; wantCode %v", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), "Welcome to BetScout") {
		t.Errorf("failed! hero missing in:\n%s", rec.Body.String())
	}
}

func Test_siteApi_render_emptyLayout(t *testing.T) {
	resetDB(t)

	testutil.CreatePage(t, pageRepo, "/coming-soon", "Coming Soon")

	request, rec := newRequest(http.MethodGet, "/site/coming-soon")
	app.ServeHTTP(rec, request)

	if rec.Code != http.StatusOK {
		t.Fatalf("failed! code = %v; wantCode %v", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), "<title>Coming Soon | BetScout</title>") {
		t.Errorf("failed! empty page shell missing title:\n%s", rec.Body.String())
	}
}

func Test_siteApi_render_notFound(t *testing.T) {
	resetDB(t)

	request, rec := newRequest(http.MethodGet, "/site/nope")
	app.ServeHTTP(rec, request)

	if rec.Code != http.StatusNotFound {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, http.StatusNotFound)
	}
}
