package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"ytmeta/config"
	"ytmeta/model"
	"ytmeta/youtube"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func upstream(t *testing.T, available ...string) *httptest.Server {
	t.Helper()
	known := make(map[string]struct{}, len(available))
	for _, id := range available {
		known[id] = struct{}{}
	}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var parts []string
		for _, id := range strings.Split(r.URL.Query().Get("id"), ",") {
			if _, ok := known[id]; ok {
				parts = append(parts, fmt.Sprintf(`{"id":%q,"snippet":{"title":"title %s"}}`, id, id))
			}
		}
		fmt.Fprintf(w, `{"items":[%s]}`, strings.Join(parts, ","))
	}))
}

func testRouter(baseURL string) *gin.Engine {
	return Setup(youtube.NewFetcher(&config.Config{
		APIKey:      "test-key",
		APIBaseURL:  baseURL,
		HTTPTimeout: 5 * time.Second,
	}))
}

func TestGetVideos_RequiresIDs(t *testing.T) {
	r := testRouter("http://unused.invalid")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/videos", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "ids is required") {
		t.Fatalf("body=%q, want ids-required error", w.Body.String())
	}
}

func TestGetVideos_JSON(t *testing.T) {
	srv := upstream(t, "X", "Y")
	defer srv.Close()
	r := testRouter(srv.URL)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/videos?ids=X,Y,Z", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want 200 (body: %s)", w.Code, w.Body.String())
	}

	var resp model.VideosResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Count != 2 || len(resp.Videos) != 2 {
		t.Fatalf("count=%d videos=%d, want 2 rows", resp.Count, len(resp.Videos))
	}
	if len(resp.NotFound) != 1 || resp.NotFound[0] != "Z" {
		t.Fatalf("notFound=%v, want [Z]", resp.NotFound)
	}
	if got := resp.Videos[0]["title"]; got != "title X" {
		t.Fatalf("first row title=%q, want %q", got, "title X")
	}
}

func TestGetVideos_MarkdownFormat(t *testing.T) {
	srv := upstream(t, "X")
	defer srv.Close()
	r := testRouter(srv.URL)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/videos?ids=X,Z&format=markdown&columns=id,title", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("Content-Type=%q, want text/plain", ct)
	}
	if got := w.Header().Get("X-Not-Found"); got != "Z" {
		t.Fatalf("X-Not-Found=%q, want Z", got)
	}
	if body := w.Body.String(); !strings.HasPrefix(body, "| id") {
		t.Fatalf("body is not a markdown table:\n%s", body)
	}
}

func TestGetVideos_UpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"error":{"message":"quota exceeded"}}`)
	}))
	defer srv.Close()
	r := testRouter(srv.URL)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/videos?ids=X", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("status=%d, want 502", w.Code)
	}
	if !strings.Contains(w.Body.String(), "API error 403") {
		t.Fatalf("body=%q, want upstream error detail", w.Body.String())
	}
}

func TestGetVideos_InvalidFormat(t *testing.T) {
	srv := upstream(t, "X")
	defer srv.Close()
	r := testRouter(srv.URL)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/videos?ids=X&format=csv", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400", w.Code)
	}
}

func TestHealthEndpoints(t *testing.T) {
	r := testRouter("http://unused.invalid")

	for _, path := range []string{"/", "/health"} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, path, nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("GET %s status=%d, want 200", path, w.Code)
		}
		if !strings.Contains(w.Body.String(), "ytmeta") {
			t.Fatalf("GET %s body=%q, want service name", path, w.Body.String())
		}
	}
}
