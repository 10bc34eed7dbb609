package export_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/master-bogdan/termfolio/blog"
	"github.com/master-bogdan/termfolio/commands"
	"github.com/master-bogdan/termfolio/content"
	"github.com/master-bogdan/termfolio/export"
	"github.com/master-bogdan/termfolio/hamlet"
)

var moment = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func exportTo(t *testing.T, base, prefix string) (string, *export.Report) {
	t.Helper()
	clock := func() time.Time { return moment }
	posts := blog.NewStore(
		blog.Post{Slug: "welcome", Title: "Welcome", Date: "2024-01-01", Content: "Hello"},
		blog.Post{Slug: "second", Title: "Second", Date: "2024-02-01", Content: "Again"},
	)
	registry, err := commands.Build(commands.Environment{Posts: posts, Clock: clock, Intn: func(int) int { return 0 }})
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	target := filepath.Join(t.TempDir(), "out")
	report, err := export.Export(target, export.Options{
		Registry:    registry,
		Posts:       posts,
		BasePath:    base,
		AssetPrefix: prefix,
		Clock:       clock,
		Workers:     2,
	})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	return target, report
}

func load(t *testing.T, filename string, target interface{}) {
	t.Helper()
	blob, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("reading %q: %v", filename, err)
	}
	if err := json.Unmarshal(blob, target); err != nil {
		t.Fatalf("decoding %q: %v", filename, err)
	}
}

func TestExportWritesEveryRoute(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	target, report := exportTo(t, "", "")
	must_be.Equal(target, report.Target)
	must_be.Equal([]string{
		"blog/second/index.json",
		"blog/welcome/index.json",
		"commands/blog/index.json",
		"commands/contacts/index.json",
		"commands/help/index.json",
		"commands/projects/index.json",
		"commands/resume/index.json",
		"commands/whoami/index.json",
		"index.json",
	}, report.Files)

	_, err := os.Stat(filepath.Join(target, "commands", "clear"))
	must_be.True(os.IsNotExist(err))
}

func TestIndexCarriesPathsAndCommands(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	target, _ := exportTo(t, "/folio", "")
	index := export.Index{}
	load(t, filepath.Join(target, "index.json"), &index)
	must_be.Equal("/folio", index.BasePath)
	must_be.Equal("/folio/", index.AssetPrefix)
	must_be.Length(7, index.Commands)
	must_be.Equal("whoami", index.Commands[0].Name)
	must_be.Equal("/folio/commands/whoami/", index.Commands[0].Route)
	must_be.Equal("", index.Commands[5].Route)
	must_be.True(len(index.Boot) > 0)
}

func TestCommandPagesHoldContentTrees(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	target, _ := exportTo(t, "", "/static/")
	page := struct {
		Command string          `json:"command"`
		Text    string          `json:"text"`
		Output  json.RawMessage `json:"output"`
	}{}
	load(t, filepath.Join(target, "commands", "help", "index.json"), &page)
	must_be.Equal("help", page.Command)
	must_be.Contains(page.Text, "whoami")

	node, err := content.Unmarshal(page.Output)
	must_be.Nil(err)
	wont_be.Nil(node)
	must_be.Equal(page.Text, content.RenderPlain(node))
}

func TestPostPagesUseTrailingSlashRoutes(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	target, _ := exportTo(t, "/folio", "")
	post := struct {
		Slug  string `json:"slug"`
		Route string `json:"route"`
	}{}
	load(t, filepath.Join(target, "blog", "welcome", "index.json"), &post)
	must_be.Equal("welcome", post.Slug)
	must_be.Equal("/folio/blog/welcome/", post.Route)
}

func TestRoute(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		parts    []string
		expected string
	}{
		{"root", "", nil, "/"},
		{"root command", "", []string{"commands", "help"}, "/commands/help/"},
		{"based", "/folio", []string{"blog", "hi"}, "/folio/blog/hi/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			must_be, _ := hamlet.Specifications(t)
			must_be.Equal(tt.expected, export.Route(tt.base, tt.parts...))
		})
	}
}
