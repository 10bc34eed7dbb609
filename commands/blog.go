package commands

import (
	"fmt"

	"github.com/master-bogdan/termfolio/content"
)

func (it *Environment) blog(args []string) content.Node {
	if len(args) == 0 {
		return it.blogIndex()
	}
	slug := args[0]
	post, ok := it.Posts.Find(slug)
	if !ok {
		return line(styled(content.Error, fmt.Sprintf("Error: Post '%s' not found. Use 'blog' to list all posts.", slug)))
	}
	return content.Wrap(content.Box,
		styled(content.Heading, post.Title),
		line(styled(content.Muted, fmt.Sprintf("Published: %s", post.Date))),
		gap(),
		post.Body(),
	)
}

func (it *Environment) blogIndex() content.Node {
	body := content.Sequence{line(styled(content.Accent, "Blog Posts:"))}
	posts := it.Posts.All()
	if len(posts) == 0 {
		body = append(body, content.Wrap(content.Indent, line(styled(content.Muted, "No posts yet."))))
		return content.Wrapper{Tag: content.Box, Child: body}
	}
	for at, post := range posts {
		body = append(body,
			line(
				styled(content.Success, fmt.Sprintf("%d. ", at+1)),
				content.CommandLink("blog "+post.Slug, styled(content.Success, post.Title)),
			),
			content.Wrap(content.Indent, line(styled(content.Muted, fmt.Sprintf("Date: %s", post.Date)))),
		)
	}
	body = append(body, gap(), line(styled(content.Muted, "Pick a post title to read it, or use: blog [slug]")))
	return content.Wrapper{Tag: content.Box, Child: body}
}
