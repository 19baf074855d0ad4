package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	apperrors "github.com/matzehuels/ghinsight/pkg/errors"
	"github.com/matzehuels/ghinsight/pkg/integrations/github"
	"github.com/matzehuels/ghinsight/pkg/observability"
)

func fakeGitHub(t *testing.T) *httptest.Server {
	t.Helper()
	now := time.Now().UTC().Format(time.RFC3339)
	mux := http.NewServeMux()
	mux.HandleFunc("/users/octocat", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"login":"octocat","name":"The Octocat","followers":1200,"public_repos":8}`))
	})
	mux.HandleFunc("/users/octocat/repos", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"name":"hello-world","language":"Go","stargazers_count":42}]`))
	})
	mux.HandleFunc("/users/octocat/events/public", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"1","type":"PushEvent","repo":{"name":"octocat/hello-world"},"created_at":"` + now +
			`","payload":{"size":2,"commits":[{"sha":"a","message":"fix"},{"sha":"b","message":"add"}]}}]`))
	})
	mux.HandleFunc("/repos/octocat/hello-world/languages", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Go":2048}`))
	})
	mux.HandleFunc("/search/users", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[{"login":"octocat","id":1}]}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	srv := fakeGitHub(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("GHINSIGHT_API_BASE_URL", srv.URL)
	t.Cleanup(observability.Reset)

	var out bytes.Buffer
	c := New(io.Discard, LogInfo)
	c.Out = &out
	c.Err = io.Discard

	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommand_Subcommands(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	want := []string{"user", "repos", "search", "events", "heatmap", "languages", "insights", "analytics", "serve", "completion"}
	for _, name := range want {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("missing subcommand %q", name)
		}
	}
	for _, flag := range []string{"json", "config", "token", "no-cache"} {
		if root.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("missing persistent flag --%s", flag)
		}
	}
}

func TestCLI_User(t *testing.T) {
	out, err := runCLI(t, "user", "octocat")
	if err != nil {
		t.Fatalf("user: %v", err)
	}
	for _, want := range []string{"The Octocat", "@octocat", "1,200", "hello-world"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCLI_UserJSON(t *testing.T) {
	out, err := runCLI(t, "--json", "user", "octocat")
	if err != nil {
		t.Fatalf("user: %v", err)
	}
	var p struct {
		User  github.User         `json:"user"`
		Repos []github.Repository `json:"repos"`
	}
	if err := json.Unmarshal([]byte(out), &p); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if p.User.Login != "octocat" || len(p.Repos) != 1 {
		t.Errorf("profile = %+v", p)
	}
}

func TestCLI_UserNotFound(t *testing.T) {
	_, err := runCLI(t, "user", "ghost")
	if err == nil {
		t.Fatal("user ghost should fail")
	}
	if err.Error() != apperrors.MsgUserNotFound {
		t.Errorf("error = %q, want %q", err, apperrors.MsgUserNotFound)
	}
}

func TestCLI_Views(t *testing.T) {
	tests := []struct {
		args []string
		want []string
	}{
		{[]string{"repos", "octocat"}, []string{"hello-world", "Go", "42"}},
		{[]string{"events", "octocat"}, []string{"pushed", "2 commits", "octocat/hello-world", "fix"}},
		{[]string{"heatmap", "octocat"}, []string{"Contributions", "contributions in the last year", "longest streak"}},
		{[]string{"languages", "octocat"}, []string{"Languages", "Go", "100.0%", "2 KB"}},
		{[]string{"insights", "octocat"}, []string{"Productivity", "Commits", "Peak hour"}},
		{[]string{"analytics", "octocat"}, []string{"Contributions", "Languages", "Productivity", "Repositories", "Recent Activity"}},
		{[]string{"search", "octo"}, []string{"The Octocat", "@octocat"}},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := runCLI(t, tt.args...)
			if err != nil {
				t.Fatalf("%v: %v", tt.args, err)
			}
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestCLI_InsightsJSON(t *testing.T) {
	out, err := runCLI(t, "--json", "insights", "octocat")
	if err != nil {
		t.Fatalf("insights: %v", err)
	}
	var in struct {
		TotalCommits int `json:"total_commits"`
	}
	if err := json.Unmarshal([]byte(out), &in); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if in.TotalCommits != 2 {
		t.Errorf("total_commits = %d, want 2", in.TotalCommits)
	}
}

func TestCLI_BadConfig(t *testing.T) {
	t.Setenv("GHINSIGHT_REPOS_DIRECTION", "sideways")
	if _, err := runCLI(t, "user", "octocat"); err == nil {
		t.Error("invalid configuration should fail the command")
	}
}

func TestCLI_MissingArgument(t *testing.T) {
	if _, err := runCLI(t, "heatmap"); err == nil {
		t.Error("heatmap without a login should fail")
	}
}
