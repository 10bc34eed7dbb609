package commands

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/master-bogdan/termfolio/blog"
	"github.com/master-bogdan/termfolio/content"
	"github.com/master-bogdan/termfolio/site"
	"github.com/master-bogdan/termfolio/sysinfo"
)

type Variant string

const (
	Classic Variant = "classic"
	Retro   Variant = "retro"
)

func Variants() []Variant {
	return []Variant{Classic, Retro}
}

func ParseVariant(value string) (Variant, error) {
	switch Variant(strings.ToLower(strings.TrimSpace(value))) {
	case Classic, "":
		return Classic, nil
	case Retro:
		return Retro, nil
	}
	return "", fmt.Errorf("unknown variant %q, expected one of %v", value, Variants())
}

// Environment is the static data the builtin commands read from.
type Environment struct {
	Variant Variant
	Profile *site.Profile
	Posts   *blog.Store
	System  sysinfo.Snapshot
	Themes  []string
	Theme   string
	Clock   func() time.Time
	Intn    func(int) int
}

func (it *Environment) defaults() {
	if it.Variant == "" {
		it.Variant = Classic
	}
	if it.Profile == nil {
		it.Profile = site.Default()
	}
	if it.Posts == nil {
		it.Posts = blog.Builtin()
	}
	if it.Clock == nil {
		it.Clock = time.Now
	}
	if it.Intn == nil {
		it.Intn = rand.Intn
	}
	if it.System.Started.IsZero() {
		it.System.Started = it.Clock()
	}
}

// Build assembles the registry for a variant: the visible commands shared by
// every variant followed by the variant's hidden ones.
func Build(environment Environment) (*Registry, error) {
	environment.defaults()
	var registry *Registry
	env := &environment

	descriptors := []Descriptor{
		{Name: "whoami", Description: "Display information about me", Execute: env.whoami},
		{Name: "projects", Description: "List featured projects", Execute: env.projects},
		{Name: "blog", Description: "Read blog posts", Execute: env.blog},
		{Name: "contacts", Description: "Get contact information", Execute: env.contacts},
		{Name: "resume", Description: "Download my resume", Execute: env.resume},
		{Name: ClearCommand, Description: "Clear the terminal output", Execute: cleared},
		{Name: HelpCommand, Description: "Show available commands", Execute: func(args []string) content.Node {
			return help(registry, args)
		}},
	}
	switch env.Variant {
	case Classic:
		descriptors = append(descriptors,
			Descriptor{Name: "neofetch", Description: "Display system information", Hidden: true, Execute: env.neofetch},
			Descriptor{Name: "sudo", Description: "Execute command as superuser", Hidden: true, Execute: env.sudo},
			Descriptor{Name: "hack", Description: "Initiate hack sequence", Hidden: true, Execute: hack},
			Descriptor{Name: "fortune", Description: "Get your fortune", Hidden: true, Execute: env.fortune},
			Descriptor{Name: "cowsay", Description: "Make a cow say something", Hidden: true, Execute: cowsay},
			Descriptor{Name: "matrix", Description: "Enter the Matrix", Hidden: true, Execute: env.matrix},
			Descriptor{Name: "rickroll", Description: "Never gonna give you up", Hidden: true, Execute: rickroll},
			Descriptor{Name: "coffee", Description: "Get some coffee", Hidden: true, Execute: coffee},
		)
	case Retro:
		descriptors = append(descriptors,
			Descriptor{Name: "neofetch", Description: "Display system information", Hidden: true, Execute: env.neofetch},
			Descriptor{Name: "sudo", Description: "Execute command as superuser", Hidden: true, Execute: env.sudo},
			Descriptor{Name: "fortune", Description: "Get your fortune", Hidden: true, Execute: env.fortune},
			Descriptor{Name: "cowsay", Description: "Make a cow say something", Hidden: true, Execute: cowsay},
			Descriptor{Name: "coffee", Description: "Get some coffee", Hidden: true, Execute: coffee},
			Descriptor{Name: "motd", Description: "Show the message of the day", Hidden: true, Execute: env.motd},
			Descriptor{Name: "skills", Description: "List technical skills", Hidden: true, Execute: env.skills},
			Descriptor{Name: "theme", Description: "List available color themes", Hidden: true, Execute: env.theme},
		)
	default:
		return nil, fmt.Errorf("unknown variant %q", env.Variant)
	}

	registry, err := NewRegistry(descriptors...)
	if err != nil {
		return nil, err
	}
	return registry, nil
}
