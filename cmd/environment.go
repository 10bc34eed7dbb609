package cmd

import (
	"github.com/master-bogdan/termfolio/blog"
	"github.com/master-bogdan/termfolio/commands"
	"github.com/master-bogdan/termfolio/common"
	"github.com/master-bogdan/termfolio/interactive"
	"github.com/master-bogdan/termfolio/pretty"
	"github.com/master-bogdan/termfolio/settings"
	"github.com/master-bogdan/termfolio/site"
	"github.com/master-bogdan/termfolio/sysinfo"
)

// workspace is everything a surface needs, assembled from settings.
type workspace struct {
	variant  commands.Variant
	theme    interactive.Theme
	profile  *site.Profile
	posts    *blog.Store
	registry *commands.Registry
}

func summonWorkspace() *workspace {
	config := settings.Global
	variant, err := commands.ParseVariant(config.Variant())
	pretty.Guard(err == nil, 2, "%v", err)

	theme, err := interactive.ThemeNamed(config.Theme(), string(variant))
	pretty.Guard(err == nil, 2, "%v", err)

	profile, err := site.Load(config.SiteFile())
	pretty.Guard(err == nil, 3, "%v", err)

	posts, err := blog.LoadDir(config.PostsFolder())
	pretty.Guard(err == nil, 3, "%v", err)

	registry, err := commands.Build(commands.Environment{
		Variant: variant,
		Profile: profile,
		Posts:   posts,
		System:  sysinfo.Take(),
		Themes:  interactive.ThemeNames(),
		Theme:   theme.Name,
	})
	pretty.Guard(err == nil, 4, "Command registry is broken: %v", err)

	common.Debug("Workspace: variant %s, theme %s, %d posts.", variant, theme.Name, posts.Len())
	return &workspace{
		variant:  variant,
		theme:    theme,
		profile:  profile,
		posts:    posts,
		registry: registry,
	}
}
