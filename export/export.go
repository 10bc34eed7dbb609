// Package export writes the whole terminal as static JSON documents, one
// folder per route with an index.json inside.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/master-bogdan/termfolio/anywork"
	"github.com/master-bogdan/termfolio/blog"
	"github.com/master-bogdan/termfolio/commands"
	"github.com/master-bogdan/termfolio/common"
	"github.com/master-bogdan/termfolio/content"
	"github.com/master-bogdan/termfolio/site"
)

const indexFile = "index.json"

type Options struct {
	Registry    *commands.Registry
	Profile     *site.Profile
	Posts       *blog.Store
	BasePath    string
	AssetPrefix string
	Clock       func() time.Time
	Workers     int
}

type Command struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Route       string `json:"route"`
}

type Index struct {
	Version     string    `json:"version"`
	BasePath    string    `json:"base_path"`
	AssetPrefix string    `json:"asset_prefix"`
	Name        string    `json:"name"`
	Title       string    `json:"title"`
	Prompt      string    `json:"prompt"`
	Banner      string    `json:"banner"`
	Words       []string  `json:"words"`
	Boot        []string  `json:"boot"`
	Commands    []Command `json:"commands"`
}

type Page struct {
	Command   string       `json:"command"`
	Text      string       `json:"text"`
	Output    content.Node `json:"output"`
	Timestamp time.Time    `json:"timestamp"`
}

type Post struct {
	blog.Post
	Route string       `json:"route"`
	Body  content.Node `json:"body"`
}

// Report lists the written files relative to the target folder.
type Report struct {
	Target string
	Files  []string
}

type exporter struct {
	Options
	target string
	group  *anywork.Group
	mu     sync.Mutex
	files  []string
}

// Export writes every document under target. Hidden commands and clear are
// left out; they only make sense interactively.
func Export(target string, options Options) (*Report, error) {
	if options.Registry == nil {
		return nil, fmt.Errorf("export needs a command registry")
	}
	if options.Profile == nil {
		options.Profile = site.Default()
	}
	if options.Posts == nil {
		options.Posts = blog.Builtin()
	}
	if options.Clock == nil {
		options.Clock = time.Now
	}
	if len(options.AssetPrefix) == 0 {
		options.AssetPrefix = options.BasePath + "/"
	}
	if err := os.MkdirAll(target, 0o755); err != nil {
		return nil, fmt.Errorf("export target %q: %w", target, err)
	}

	group := anywork.New(options.Workers)
	defer group.Close()
	it := &exporter{Options: options, target: target, group: group}

	defer common.Stopwatch("Static export to %q took", target).Report()
	it.index()
	for _, descriptor := range options.Registry.Descriptors(false) {
		if descriptor.Name == commands.ClearCommand {
			continue
		}
		it.command(descriptor.Name)
	}
	for _, post := range options.Posts.All() {
		it.post(post)
	}
	if err := group.Sync(); err != nil {
		return nil, fmt.Errorf("export to %q: %w", target, err)
	}

	sort.Strings(it.files)
	common.Log("Exported %d documents to %s", len(it.files), target)
	return &Report{Target: target, Files: it.files}, nil
}

// Route is the public URL of a document folder, always with a trailing slash.
func Route(base string, parts ...string) string {
	route := base + "/"
	for _, part := range parts {
		route += part + "/"
	}
	return route
}

func (it *exporter) index() {
	listed := []Command{}
	for _, descriptor := range it.Registry.Descriptors(false) {
		route := ""
		if descriptor.Name != commands.ClearCommand {
			route = Route(it.BasePath, "commands", descriptor.Name)
		}
		listed = append(listed, Command{Name: descriptor.Name, Description: descriptor.Description, Route: route})
	}
	profile := it.Profile
	it.write(indexFile, &Index{
		Version:     common.Version,
		BasePath:    it.BasePath,
		AssetPrefix: it.AssetPrefix,
		Name:        profile.Name,
		Title:       profile.Title,
		Prompt:      profile.Prompt.String(),
		Banner:      profile.Banner,
		Words:       profile.Words,
		Boot:        profile.Boot,
		Commands:    listed,
	})
}

func (it *exporter) command(name string) {
	result := it.Registry.Dispatch(name, it.Clock())
	if result.Output == nil {
		return
	}
	it.write(filepath.Join("commands", name, indexFile), &Page{
		Command:   result.Output.Command,
		Text:      content.RenderPlain(result.Output.Output),
		Output:    result.Output.Output,
		Timestamp: result.Output.Timestamp,
	})
}

func (it *exporter) post(post blog.Post) {
	it.write(filepath.Join("blog", post.Slug, indexFile), &Post{
		Post:  post,
		Route: Route(it.BasePath, "blog", post.Slug),
		Body:  post.Body(),
	})
}

func (it *exporter) write(relative string, document interface{}) {
	it.group.Backlog(func() {
		blob, err := json.MarshalIndent(document, "", "  ")
		anywork.OnErrPanic(err)
		fullpath := filepath.Join(it.target, relative)
		anywork.OnErrPanic(os.MkdirAll(filepath.Dir(fullpath), 0o755))
		anywork.OnErrPanic(os.WriteFile(fullpath, blob, 0o644))
		common.Trace("Wrote %s (%d bytes).", fullpath, len(blob))

		it.mu.Lock()
		it.files = append(it.files, filepath.ToSlash(relative))
		it.mu.Unlock()
	})
}
