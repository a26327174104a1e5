package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/tsmithofficiating/rules-backend/internal/dto"
	"github.com/tsmithofficiating/rules-backend/internal/middleware"
	"github.com/tsmithofficiating/rules-backend/internal/version"
	"github.com/tsmithofficiating/rules-backend/internal/web"
)

func newPageHandlers(t *testing.T, lookup LookupService, qa QAService) *pageHandlers {
	t.Helper()
	renderer, err := web.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer error: %v", err)
	}
	return NewPageHandlers(&Deps{Renderer: renderer, LookupSvc: lookup, QASvc: qa})
}

func formRequest(target string, form url.Values) *http.Request {
	req := testRequest(http.MethodPost, target, form.Encode())
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestLookupPageGet(t *testing.T) {
	svc := &stubLookupService{}
	h := newPageHandlers(t, svc, &stubQAService{})

	rr := httptest.NewRecorder()
	h.LookupPage(rr, testRequest(http.MethodGet, "/", ""))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if svc.called {
		t.Fatal("GET must not trigger a lookup")
	}
	body := rr.Body.String()
	if !strings.Contains(body, version.Footer()) || !strings.Contains(body, version.Watermark) {
		t.Fatal("page chrome missing")
	}
}

func TestLookupPagePost(t *testing.T) {
	svc := &stubLookupService{resp: dto.LookupResponse{Query: "8-5-3d", Answer: "It is a safety."}}
	h := newPageHandlers(t, svc, &stubQAService{})

	rr := httptest.NewRecorder()
	h.LookupPage(rr, formRequest("/", url.Values{"query": {"8-5-3d"}}))

	if !svc.called || svc.query != "8-5-3d" {
		t.Fatalf("lookup not invoked as expected: %+v", svc)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "It is a safety.") {
		t.Fatal("answer not rendered")
	}
	if !strings.Contains(body, version.Attribution) || !strings.Contains(body, version.Disclaimer) {
		t.Fatal("answer attribution missing")
	}
}

func TestLookupPageEmptyQueryWarns(t *testing.T) {
	svc := &stubLookupService{}
	h := newPageHandlers(t, svc, &stubQAService{})

	rr := httptest.NewRecorder()
	h.LookupPage(rr, formRequest("/", url.Values{"query": {"   "}}))

	if svc.called {
		t.Fatal("empty query must not reach the service")
	}
	if !strings.Contains(rr.Body.String(), emptyQueryWarning) {
		t.Fatal("warning not rendered")
	}
}

func TestLookupPageDebugFlagPassedThrough(t *testing.T) {
	svc := &stubLookupService{resp: dto.LookupResponse{Answer: "ok", Debug: &dto.LookupDebugInfo{InputTokens: 7}}}
	h := newPageHandlers(t, svc, &stubQAService{})

	req := formRequest("/?query=debug", url.Values{"query": {"8-5-3d"}})
	req = req.WithContext(context.WithValue(req.Context(), middleware.DebugKey, true))
	rr := httptest.NewRecorder()

	h.LookupPage(rr, req)

	if !svc.debug {
		t.Fatal("debug flag not passed to the service")
	}
	if !strings.Contains(rr.Body.String(), "Token usage") {
		t.Fatal("debug section not rendered")
	}
}

func TestLookupPageServiceErrorShowsBanner(t *testing.T) {
	svc := &stubLookupService{err: errors.New("api unreachable")}
	h := newPageHandlers(t, svc, &stubQAService{})

	rr := httptest.NewRecorder()
	h.LookupPage(rr, formRequest("/", url.Values{"query": {"8-5-3d"}}))

	if rr.Code != http.StatusOK {
		t.Fatalf("page should still render, status = %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Rule lookup failed") {
		t.Fatal("error banner not rendered")
	}
}

func TestQAPagePost(t *testing.T) {
	svc := &stubQAService{resp: dto.QAResponse{SessionID: "s1", Answer: "Yes, by rule 6-5."}}
	h := newPageHandlers(t, &stubLookupService{}, svc)

	rr := httptest.NewRecorder()
	h.QAPage(rr, formRequest("/qa", url.Values{
		"session_id": {"s1"},
		"question":   {"Can they fair catch?"},
	}))

	if !svc.called || svc.sessionID != "s1" || svc.question != "Can they fair catch?" {
		t.Fatalf("qa not invoked as expected: %+v", svc)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Yes, by rule 6-5.") || !strings.Contains(body, `value="s1"`) {
		t.Fatal("reply or session not rendered")
	}
}

func TestQAPageGeneratesSessionID(t *testing.T) {
	h := newPageHandlers(t, &stubLookupService{}, &stubQAService{})

	rr := httptest.NewRecorder()
	h.QAPage(rr, testRequest(http.MethodGet, "/qa", ""))

	if !strings.Contains(rr.Body.String(), `name="session_id" value="`) {
		t.Fatal("session id not seeded into the form")
	}
}

func TestQAPageEmptyAnswerFallback(t *testing.T) {
	svc := &stubQAService{resp: dto.QAResponse{SessionID: "s1"}}
	h := newPageHandlers(t, &stubLookupService{}, svc)

	rr := httptest.NewRecorder()
	h.QAPage(rr, formRequest("/qa", url.Values{
		"session_id": {"s1"},
		"question":   {"q"},
	}))

	if !strings.Contains(rr.Body.String(), noResponseMessage) {
		t.Fatal("fallback message not rendered")
	}
}
