package profile

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ghinsight/pkg/cache"
	apperrors "github.com/matzehuels/ghinsight/pkg/errors"
	"github.com/matzehuels/ghinsight/pkg/integrations"
	"github.com/matzehuels/ghinsight/pkg/integrations/github"
)

// fakeGitHub serves canned responses by path and counts requests.
type fakeGitHub struct {
	mu     sync.Mutex
	calls  map[string]int
	routes map[string]func(w http.ResponseWriter, r *http.Request)
}

func newFakeGitHub() *fakeGitHub {
	return &fakeGitHub{
		calls:  make(map[string]int),
		routes: make(map[string]func(w http.ResponseWriter, r *http.Request)),
	}
}

func (f *fakeGitHub) reply(path string, v any) {
	f.routes[path] = func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(v)
	}
}

func (f *fakeGitHub) status(path string, code int) {
	f.routes[path] = func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(code) }
}

func (f *fakeGitHub) count(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[path]
}

func (f *fakeGitHub) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

func (f *fakeGitHub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.calls[r.URL.Path]++
	h, ok := f.routes[r.URL.Path]
	f.mu.Unlock()
	if !ok {
		http.NotFound(w, r)
		return
	}
	h(w, r)
}

func testService(t *testing.T, f *fakeGitHub) (*Service, *cache.MemoryCache) {
	t.Helper()
	server := httptest.NewServer(f)
	t.Cleanup(server.Close)

	gh := github.NewClient("",
		integrations.WithBaseURL(server.URL),
		integrations.WithBaseDelay(time.Millisecond),
	)
	c := cache.NewMemoryCache(time.Minute)
	logger := log.New(io.Discard)
	return NewService(gh, c, nil, time.Minute, logger), c
}

func TestService_GetUser(t *testing.T) {
	f := newFakeGitHub()
	f.reply("/users/octocat", github.User{Login: "octocat", Name: "The Octocat"})
	s, _ := testService(t, f)

	res := s.GetUser(context.Background(), "  octocat ")
	if !res.OK() {
		t.Fatalf("GetUser() failed: %v", res.Err)
	}
	if res.Data.Name != "The Octocat" {
		t.Errorf("Name = %q, want The Octocat", res.Data.Name)
	}
}

func TestService_GetUserCached(t *testing.T) {
	f := newFakeGitHub()
	f.reply("/users/octocat", github.User{Login: "octocat"})
	s, c := testService(t, f)

	for i := 0; i < 3; i++ {
		if res := s.GetUser(context.Background(), "octocat"); !res.OK() {
			t.Fatalf("GetUser() failed: %v", res.Err)
		}
	}
	if n := f.count("/users/octocat"); n != 1 {
		t.Errorf("requests = %d, want 1", n)
	}
	if _, hit, _ := c.Get(context.Background(), "user-octocat"); !hit {
		t.Error("expected user-octocat in cache")
	}
}

func TestService_Refresh(t *testing.T) {
	f := newFakeGitHub()
	f.reply("/users/octocat", github.User{Login: "octocat"})
	s, _ := testService(t, f)
	s.Refresh = true

	s.GetUser(context.Background(), "octocat")
	s.GetUser(context.Background(), "octocat")
	if n := f.count("/users/octocat"); n != 2 {
		t.Errorf("requests = %d, want 2", n)
	}
}

func TestService_GetUserEmpty(t *testing.T) {
	f := newFakeGitHub()
	s, _ := testService(t, f)

	res := s.GetUser(context.Background(), "   ")
	if res.OK() {
		t.Fatal("GetUser(blank) should fail")
	}
	if res.Code() != apperrors.ErrCodeInvalidInput {
		t.Errorf("Code() = %s, want %s", res.Code(), apperrors.ErrCodeInvalidInput)
	}
	if res.Message() != apperrors.MsgEmptyInput {
		t.Errorf("Message() = %q, want %q", res.Message(), apperrors.MsgEmptyInput)
	}
	if f.total() != 0 {
		t.Errorf("requests = %d, want 0", f.total())
	}
}

func TestService_GetUserNotFound(t *testing.T) {
	f := newFakeGitHub()
	s, c := testService(t, f)

	res := s.GetUser(context.Background(), "ghost")
	if res.Code() != apperrors.ErrCodeNotFound {
		t.Errorf("Code() = %s, want NOT_FOUND", res.Code())
	}
	if res.Message() != apperrors.MsgUserNotFound {
		t.Errorf("Message() = %q", res.Message())
	}
	if f.count("/users/ghost") != 1 {
		t.Errorf("requests = %d, want 1 (404 is not retried)", f.count("/users/ghost"))
	}
	if c.Len() != 0 {
		t.Error("failed result should not be cached")
	}
}

func TestService_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		handler func(w http.ResponseWriter, r *http.Request)
		code    apperrors.Code
		message string
	}{
		{
			name: "rate limited",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("X-RateLimit-Remaining", "0")
				w.WriteHeader(http.StatusForbidden)
			},
			code:    apperrors.ErrCodeRateLimited,
			message: apperrors.MsgRateLimit,
		},
		{
			name:    "server error",
			handler: func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusBadGateway) },
			code:    apperrors.ErrCodeNetwork,
			message: apperrors.MsgGeneric,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFakeGitHub()
			f.routes["/users/octocat"] = tt.handler
			s, c := testService(t, f)

			res := s.GetUser(context.Background(), "octocat")
			if res.Code() != tt.code {
				t.Errorf("Code() = %s, want %s", res.Code(), tt.code)
			}
			if res.Message() != tt.message {
				t.Errorf("Message() = %q, want %q", res.Message(), tt.message)
			}
			if c.Len() != 0 {
				t.Error("failed result should not be cached")
			}
		})
	}
}

func TestService_GetRepos(t *testing.T) {
	f := newFakeGitHub()
	var gotQuery string
	f.routes["/users/octocat/repos"] = func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[]`))
	}
	s, _ := testService(t, f)

	res := s.GetRepos(context.Background(), "octocat")
	if !res.OK() {
		t.Fatalf("GetRepos() failed: %v", res.Err)
	}
	if res.Data == nil || len(res.Data) != 0 {
		t.Errorf("Data = %v, want empty slice", res.Data)
	}
	if gotQuery != "sort=created&per_page=5&direction=desc" {
		t.Errorf("query = %q", gotQuery)
	}
}

func TestService_GetUserEvents(t *testing.T) {
	f := newFakeGitHub()
	var gotQuery string
	f.routes["/users/octocat/events/public"] = func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[{"id":"1","type":"WatchEvent"}]`))
	}
	s, _ := testService(t, f)

	res := s.GetUserEvents(context.Background(), "octocat", 0)
	if !res.OK() || len(res.Data) != 1 {
		t.Fatalf("GetUserEvents() = %+v", res)
	}
	if gotQuery != "per_page=100" {
		t.Errorf("query = %q, want per_page=100", gotQuery)
	}
}

func TestService_SearchUsers(t *testing.T) {
	f := newFakeGitHub()
	f.reply("/search/users", map[string]any{"items": []map[string]any{
		{"login": "alice", "id": 1},
		{"login": "bob", "id": 2},
		{"login": "carol", "id": 3},
	}})
	f.reply("/users/alice", github.User{Login: "alice", Name: "Alice A."})
	f.reply("/users/bob", github.User{Login: "bob"})
	f.status("/users/carol", http.StatusInternalServerError)
	s, _ := testService(t, f)

	res := s.SearchUsers(context.Background(), "Ali")
	if !res.OK() {
		t.Fatalf("SearchUsers() failed: %v", res.Err)
	}
	want := []string{"Alice A.", "bob", "carol"}
	if len(res.Data) != len(want) {
		t.Fatalf("len = %d, want %d", len(res.Data), len(want))
	}
	for i, name := range want {
		if res.Data[i].Name != name {
			t.Errorf("Data[%d].Name = %q, want %q", i, res.Data[i].Name, name)
		}
	}
	if n := f.count("/users/carol"); n != 1 {
		t.Errorf("detail attempts = %d, want 1", n)
	}

	// Cached under the lowercased query.
	s.SearchUsers(context.Background(), "ali")
	if n := f.count("/search/users"); n != 1 {
		t.Errorf("search requests = %d, want 1", n)
	}
}

func TestService_SearchUsersBlank(t *testing.T) {
	f := newFakeGitHub()
	s, _ := testService(t, f)

	for _, q := range []string{"", "   ", "\t"} {
		res := s.SearchUsers(context.Background(), q)
		if !res.OK() {
			t.Errorf("SearchUsers(%q) failed: %v", q, res.Err)
		}
		if res.Data == nil || len(res.Data) != 0 {
			t.Errorf("SearchUsers(%q) = %v, want empty", q, res.Data)
		}
	}
	if f.total() != 0 {
		t.Errorf("requests = %d, want 0", f.total())
	}
}

func TestService_SearchUsersInvalidQuery(t *testing.T) {
	f := newFakeGitHub()
	s, _ := testService(t, f)

	for _, q := range []string{strings.Repeat("a", 257), "octo\x00cat"} {
		res := s.SearchUsers(context.Background(), q)
		if res.OK() {
			t.Errorf("SearchUsers(%.20q) should fail", q)
			continue
		}
		if res.Err.Code != apperrors.ErrCodeInvalidInput {
			t.Errorf("SearchUsers(%.20q) code = %v, want %v", q, res.Err.Code, apperrors.ErrCodeInvalidInput)
		}
	}
	if f.total() != 0 {
		t.Errorf("requests = %d, want 0", f.total())
	}
}

func TestService_SearchUsersFailure(t *testing.T) {
	f := newFakeGitHub()
	f.status("/search/users", http.StatusServiceUnavailable)
	s, c := testService(t, f)

	res := s.SearchUsers(context.Background(), "x")
	if res.OK() {
		t.Fatal("SearchUsers() should fail when search fails")
	}
	if n := f.count("/search/users"); n != 1 {
		t.Errorf("search attempts = %d, want 1", n)
	}
	if c.Len() != 0 {
		t.Error("failed search should not be cached")
	}
}

func TestService_GetLanguageBreakdown(t *testing.T) {
	f := newFakeGitHub()
	f.reply("/users/octocat/repos", []github.Repository{
		{Name: "one", Language: "Go"},
		{Name: "docs"},
		{Name: "two", Language: "Python"},
		{Name: "broken", Language: "C"},
		{Name: "three", Language: "Go"},
	})
	f.reply("/repos/octocat/one/languages", map[string]int64{"Go": 100})
	f.reply("/repos/octocat/two/languages", map[string]int64{"Python": 300, "Shell": 5})
	f.status("/repos/octocat/broken/languages", http.StatusInternalServerError)
	f.reply("/repos/octocat/three/languages", map[string]int64{"Go": 50})
	s, _ := testService(t, f)

	res := s.GetLanguageBreakdown(context.Background(), "octocat")
	if !res.OK() {
		t.Fatalf("GetLanguageBreakdown() failed: %v", res.Err)
	}
	if len(res.Data.Repos) != 5 {
		t.Errorf("len(Repos) = %d, want 5", len(res.Data.Repos))
	}
	var names []string
	for _, rl := range res.Data.Languages {
		names = append(names, rl.RepoName)
	}
	if got := strings.Join(names, ","); got != "one,two,three" {
		t.Errorf("Languages = %s, want one,two,three", got)
	}
	if f.count("/repos/octocat/docs/languages") != 0 {
		t.Error("repo without a language should not be queried")
	}
	if f.count("/repos/octocat/broken/languages") != 1 {
		t.Error("per-repo language lookup should get a single attempt")
	}
}

func TestService_LoadProfile(t *testing.T) {
	f := newFakeGitHub()
	f.reply("/users/octocat", github.User{Login: "octocat"})
	f.status("/users/octocat/repos", http.StatusInternalServerError)
	s, _ := testService(t, f)

	res := s.LoadProfile(context.Background(), "octocat")
	if !res.OK() {
		t.Fatalf("LoadProfile() failed: %v", res.Err)
	}
	if res.Data.User.Login != "octocat" {
		t.Errorf("User.Login = %q", res.Data.User.Login)
	}
	if res.Data.Repos == nil || len(res.Data.Repos) != 0 {
		t.Errorf("Repos = %v, want empty after repo failure", res.Data.Repos)
	}
}

func TestService_LoadProfileUserMissing(t *testing.T) {
	f := newFakeGitHub()
	f.reply("/users/ghost/repos", []github.Repository{})
	s, _ := testService(t, f)

	res := s.LoadProfile(context.Background(), "ghost")
	if res.Code() != apperrors.ErrCodeNotFound {
		t.Errorf("Code() = %s, want NOT_FOUND", res.Code())
	}
}

func TestService_LoadAnalytics(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	f := newFakeGitHub()
	f.reply("/users/octocat/events/public", []github.Event{
		{ID: "1", Type: github.EventPush, CreatedAt: now, Payload: github.EventPayload{
			Size: 2, Commits: []github.Commit{{Message: "a"}, {Message: "b"}},
		}},
	})
	f.status("/users/octocat/repos", http.StatusInternalServerError)
	s, _ := testService(t, f)
	s.Analytics = analyticsOptions(now)

	res := s.LoadAnalytics(context.Background(), "octocat")
	if !res.OK() {
		t.Fatalf("LoadAnalytics() failed: %v", res.Err)
	}
	if res.Data.Grid.Total != 2 {
		t.Errorf("Grid.Total = %d, want 2", res.Data.Grid.Total)
	}
	if len(res.Data.Feed) != 1 {
		t.Errorf("len(Feed) = %d, want 1", len(res.Data.Feed))
	}
	if res.Data.Insights == nil || res.Data.Insights.TotalCommits != 2 {
		t.Errorf("Insights = %+v", res.Data.Insights)
	}
	if len(res.Data.Languages.Languages) != 0 {
		t.Error("languages should degrade to empty after a repo failure")
	}
}

func TestService_LoadAnalyticsEventsFail(t *testing.T) {
	f := newFakeGitHub()
	f.reply("/users/octocat/repos", []github.Repository{})
	s, _ := testService(t, f)

	res := s.LoadAnalytics(context.Background(), "octocat")
	if res.OK() {
		t.Fatal("LoadAnalytics() should fail when events fail")
	}
}

func TestNewService_Defaults(t *testing.T) {
	s := NewService(github.NewClient(""), nil, nil, 0, nil)
	if s.Cache == nil || s.Keyer == nil || s.Logger == nil {
		t.Error("NewService() should fill nil dependencies")
	}
	if s.TTL != cache.DefaultTTL {
		t.Errorf("TTL = %v, want %v", s.TTL, cache.DefaultTTL)
	}
}
