// Package blog loads markdown posts with front matter and serves them by
// slug.
package blog

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/master-bogdan/termfolio/common"
	"github.com/master-bogdan/termfolio/content"
)

//go:embed posts/*.md
var builtin embed.FS

const dateLayout = "2006-01-02"

type Post struct {
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	Date    string `json:"date"`
	Content string `json:"content"`
}

// Body is the post rendered as a content tree.
func (it Post) Body() content.Node {
	return Markdown([]byte(it.Content))
}

type Store struct {
	posts []Post
}

func NewStore(posts ...Post) *Store {
	result := &Store{posts: append([]Post{}, posts...)}
	result.sort()
	return result
}

func Builtin() *Store {
	store, err := LoadFS(builtin, "posts")
	if err != nil {
		panic(fmt.Sprintf("builtin posts are broken: %v", err))
	}
	return store
}

// LoadDir reads every *.md file of a directory; an empty directory name
// means the builtin posts.
func LoadDir(directory string) (*Store, error) {
	if len(directory) == 0 {
		return Builtin(), nil
	}
	return LoadFS(os.DirFS(directory), ".")
}

func LoadFS(fsys fs.FS, directory string) (*Store, error) {
	defer common.Stopwatch("loading posts from %q took", directory).Report()

	entries, err := fs.ReadDir(fsys, directory)
	if err != nil {
		return nil, fmt.Errorf("reading posts from %q: %w", directory, err)
	}
	posts := make([]Post, 0, len(entries))
	seen := make(map[string]bool)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".md") {
			continue
		}
		blob, err := fs.ReadFile(fsys, path.Join(directory, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading post %q: %w", entry.Name(), err)
		}
		post := Parse(strings.TrimSuffix(entry.Name(), path.Ext(entry.Name())), blob)
		if seen[post.Slug] {
			common.Log("Duplicate post slug %q ignored.", post.Slug)
			continue
		}
		seen[post.Slug] = true
		posts = append(posts, post)
	}
	common.Debug("loaded %d posts from %q", len(posts), directory)
	store := &Store{posts: posts}
	store.sort()
	return store, nil
}

// Parse splits front matter from markdown. Missing titles are derived from
// the slug and dates are normalized to YYYY-MM-DD when possible.
func Parse(slug string, blob []byte) Post {
	meta := map[string]interface{}{}
	body, err := frontmatter.Parse(bytes.NewReader(blob), &meta)
	if err != nil {
		common.Uncritical(fmt.Sprintf("front matter of %q", slug), err)
		body = blob
		meta = map[string]interface{}{}
	}
	title, _ := meta["title"].(string)
	if len(strings.TrimSpace(title)) == 0 {
		title = titleFromSlug(slug)
	}
	return Post{
		Slug:    slug,
		Title:   title,
		Date:    normalizeDate(meta["date"]),
		Content: strings.TrimSpace(string(body)),
	}
}

func titleFromSlug(slug string) string {
	words := strings.ReplaceAll(strings.ReplaceAll(slug, "-", " "), "_", " ")
	return cases.Title(language.English).String(words)
}

func normalizeDate(value interface{}) string {
	switch it := value.(type) {
	case nil:
		return ""
	case string:
		return it
	case time.Time:
		return it.UTC().Format(dateLayout)
	case *time.Time:
		if it == nil {
			return ""
		}
		return it.UTC().Format(dateLayout)
	}
	return fmt.Sprint(value)
}

func (it *Store) sort() {
	sort.SliceStable(it.posts, func(left, right int) bool {
		if it.posts[left].Date != it.posts[right].Date {
			return it.posts[left].Date > it.posts[right].Date
		}
		return it.posts[left].Slug < it.posts[right].Slug
	})
}

// All returns the posts newest first.
func (it *Store) All() []Post {
	return append([]Post{}, it.posts...)
}

func (it *Store) Len() int {
	return len(it.posts)
}

// Find is a linear scan returning the first post with slug.
func (it *Store) Find(slug string) (Post, bool) {
	for _, post := range it.posts {
		if post.Slug == slug {
			return post, true
		}
	}
	return Post{}, false
}
