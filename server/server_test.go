package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/master-bogdan/termfolio/blog"
	"github.com/master-bogdan/termfolio/commands"
	"github.com/master-bogdan/termfolio/content"
	"github.com/master-bogdan/termfolio/hamlet"
	"github.com/master-bogdan/termfolio/server"
	"github.com/master-bogdan/termfolio/stats"
	"github.com/master-bogdan/termfolio/xviper"
)

var moment = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func init() {
	gin.SetMode(gin.TestMode)
}

type fixture struct {
	handler http.Handler
	stats   *stats.Store
}

func newFixture(t *testing.T, base string, tracked bool) *fixture {
	t.Helper()
	xviper.Reset()
	t.Cleanup(xviper.Reset)

	clock := func() time.Time { return moment }
	posts := blog.NewStore(blog.Post{Slug: "welcome", Title: "Welcome", Date: "2024-01-01", Content: "Hello **there**"})
	registry, err := commands.Build(commands.Environment{Posts: posts, Clock: clock, Intn: func(int) int { return 0 }})
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	options := server.Options{
		Registry: registry,
		Posts:    posts,
		BasePath: base,
		Clock:    clock,
	}
	var store *stats.Store
	if tracked {
		store, err = stats.Open(filepath.Join(t.TempDir(), "stats.db"))
		if err != nil {
			t.Fatalf("stats: %v", err)
		}
		store.Clock = clock
		t.Cleanup(func() { store.Close() })
		options.Stats = store
	}
	return &fixture{handler: server.New(options).Handler(), stats: store}
}

func (it *fixture) do(method, path, body string, headers ...string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, path, strings.NewReader(body))
	if len(body) > 0 {
		request.Header.Set("Content-Type", "application/json")
	}
	for at := 0; at+1 < len(headers); at += 2 {
		request.Header.Set(headers[at], headers[at+1])
	}
	recorder := httptest.NewRecorder()
	it.handler.ServeHTTP(recorder, request)
	return recorder
}

func decode(t *testing.T, recorder *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	if err := json.Unmarshal(recorder.Body.Bytes(), target); err != nil {
		t.Fatalf("decoding %q: %v", recorder.Body.String(), err)
	}
}

func TestHealthz(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	f := newFixture(t, "", false)
	recorder := f.do(http.MethodGet, "/healthz", "")
	must_be.Equal(http.StatusOK, recorder.Code)
	must_be.Contains(recorder.Body.String(), `"status":"ok"`)
}

func TestCommandsListVisibleOnly(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	f := newFixture(t, "", false)
	recorder := f.do(http.MethodGet, "/api/commands", "")
	must_be.Equal(http.StatusOK, recorder.Code)

	listed := []struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}{}
	decode(t, recorder, &listed)
	names := []string{}
	for _, entry := range listed {
		names = append(names, entry.Name)
	}
	must_be.Equal([]string{"whoami", "projects", "blog", "contacts", "resume", "clear", "help"}, names)
	must_be.Equal("Show available commands", listed[6].Description)
}

func TestExecAnswers(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		status  int
		kind    string
		command string
		text    string
	}{
		{"executed", `{"line": "  WhoAmI  "}`, http.StatusOK, "executed", "WhoAmI", ""},
		{"unknown", `{"line": "nope"}`, http.StatusOK, "unknown", "nope", "Command not found: nope"},
		{"blog post", `{"line": "blog welcome"}`, http.StatusOK, "executed", "blog welcome", "Hello there"},
		{"clear", `{"line": "clear"}`, http.StatusOK, "clear", "clear", ""},
		{"blank", `{"line": "   "}`, http.StatusBadRequest, "", "", ""},
		{"broken", `{"line":`, http.StatusBadRequest, "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			must_be, wont_be := hamlet.Specifications(t)

			f := newFixture(t, "", false)
			recorder := f.do(http.MethodPost, "/api/exec", tt.body)
			must_be.Equal(tt.status, recorder.Code)
			if tt.status != http.StatusOK {
				must_be.Contains(recorder.Body.String(), `"error"`)
				return
			}
			answer := struct {
				Command   string          `json:"command"`
				Kind      string          `json:"kind"`
				Text      string          `json:"text"`
				Output    json.RawMessage `json:"output"`
				Timestamp time.Time       `json:"timestamp"`
			}{}
			decode(t, recorder, &answer)
			must_be.Equal(tt.kind, answer.Kind)
			must_be.Equal(tt.command, answer.Command)
			must_be.Contains(answer.Text, tt.text)
			must_be.True(answer.Timestamp.Equal(moment))

			node, err := content.Unmarshal(answer.Output)
			must_be.Nil(err)
			wont_be.Nil(node)
		})
	}
}

func TestPosts(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	f := newFixture(t, "", false)
	recorder := f.do(http.MethodGet, "/api/posts", "")
	must_be.Equal(http.StatusOK, recorder.Code)
	must_be.Contains(recorder.Body.String(), `"slug":"welcome"`)

	recorder = f.do(http.MethodGet, "/api/posts/welcome", "")
	must_be.Equal(http.StatusOK, recorder.Code)
	must_be.Contains(recorder.Body.String(), `"body":{`)

	recorder = f.do(http.MethodGet, "/api/posts/nonexistent-slug", "")
	must_be.Equal(http.StatusNotFound, recorder.Code)
}

func TestBasePathPrefixesEveryRoute(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	f := newFixture(t, "/folio", false)
	must_be.Equal(http.StatusOK, f.do(http.MethodGet, "/folio/healthz", "").Code)
	must_be.Equal(http.StatusOK, f.do(http.MethodGet, "/folio/api/commands", "").Code)
	must_be.Equal(http.StatusNotFound, f.do(http.MethodGet, "/api/commands", "").Code)
}

func TestStatsAreDisabledWithoutStore(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	f := newFixture(t, "", false)
	must_be.Equal(http.StatusServiceUnavailable, f.do(http.MethodGet, "/api/stats", "").Code)
}

func TestVisitsAndCommandsAreRecorded(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	f := newFixture(t, "", true)
	recorder := f.do(http.MethodPost, "/api/exec", `{"line": "help"}`, "User-Agent", "tester")
	must_be.Equal(http.StatusOK, recorder.Code)
	wont_be.Equal("", recorder.Header().Get("X-Termfolio-Instance"))
	f.do(http.MethodPost, "/api/exec", `{"line": "nope"}`)
	f.do(http.MethodPost, "/api/exec", `{"line": "help"}`, "DNT", "1")

	recorder = f.do(http.MethodGet, "/api/stats", "")
	must_be.Equal(http.StatusOK, recorder.Code)
	summary := stats.Summary{}
	decode(t, recorder, &summary)
	// the stats request itself is a visit too
	must_be.Equal(int64(3), summary.TotalVisitors)
	must_be.Equal(int64(1), summary.UniqueVisitors)
	must_be.Equal(int64(1), summary.TotalCommands)
	must_be.Equal("help", summary.TopCommands[0].Name)
}

func TestTrackingCanBeSwitchedOff(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	f := newFixture(t, "", true)
	xviper.ConsentTracking(false)
	f.do(http.MethodPost, "/api/exec", `{"line": "help"}`)

	summary, err := f.stats.Summary()
	must_be.Nil(err)
	must_be.Equal(int64(0), summary.TotalVisitors)
	must_be.Equal(int64(0), summary.TotalCommands)
}
