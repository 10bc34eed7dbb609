package commands

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/master-bogdan/termfolio/content"
)

const debianSwirl = `       _,met$$$$$gg.
    ,g$$$$$$$$$$$$$$$P.
  ,g$$P"     """Y$$.".
 ,$$P'              ` + "`" + `$$$.
',$$P       ,ggs.     ` + "`" + `$$b:
` + "`" + `d$$'     ,$P"'   .    $$$
 $$P      d$'     ,    $$P
 $$:      $$.   -    ,d$$'
 $$;      Y$b._   _,d$P'
 Y$$.    ` + "`.`" + `"Y$$$$P"'
 ` + "`" + `$$b      "-.__
  ` + "`" + `Y$$
   ` + "`" + `Y$$.
     ` + "`" + `$$b.
       ` + "`" + `Y$$b.
          ` + "`" + `"Y$b._
              ` + "`" + `""""`

const coffeeCup = `        (  )   (   )  )
         ) (   )  (  (
         ( )  (    ) )
         _____________
        <_____________> ___
        |             |/ _ \
        |               | | |
        |               |_| |
     ___|             |\___/
    /    \___________/    \
    \_____________________/`

const cow = `        \   ^__^
         \  (oo)\_______
            (__)\       )\/\
                ||----w |
                ||     ||`

const matrixGlyphs = "01アイウエオカキクケコサシスセソタチツテト"

var (
	hackLines = []string{
		"Initializing hack sequence...",
		"Connecting to mainframe...",
		"Bypassing firewall...",
		"Decrypting passwords...",
		"Accessing database...",
		"Downloading files...",
		"Covering tracks...",
		"",
		"HACK COMPLETE! 🎉",
		"",
		"Just kidding. Please don't hack anyone. 🙃",
	}

	fortunes = []string{
		"You will write bug-free code today... just kidding!",
		"A merge conflict approaches. Prepare yourself.",
		"Your next commit will be legendary.",
		"The production server is stable... for now.",
		"Coffee levels are optimal for coding.",
		"A wild segfault appears!",
		"Your code will compile on the first try. (Unlikely)",
		"The cloud is just someone else's computer.",
	}
)

func field(label, value string) content.Wrapper {
	return line(styled(content.Accent, label+":"), content.Text(" "+value))
}

func (it *Environment) neofetch([]string) content.Node {
	system := it.System
	prompt := it.Profile.Prompt
	title := fmt.Sprintf("%s@%s", prompt.User, prompt.Host)
	uptime := int(system.Uptime(it.Clock()).Seconds())
	return content.Wrap(content.Box,
		content.Wrap(content.Pre, styled(content.Error, debianSwirl)),
		gap(),
		line(content.Wrap(content.Strong, styled(content.Accent, title))),
		line(styled(content.Muted, strings.Repeat("-", utf8.RuneCountInString(title)))),
		field("OS", fmt.Sprintf("%s %s", system.OS, system.Arch)),
		field("Host", "Personal Portfolio"),
		field("Kernel", "6.2.0-terminal"),
		field("Uptime", fmt.Sprintf("%d seconds", uptime)),
		field("Shell", system.Shell),
		field("Terminal", system.Terminal),
		field("Processes", fmt.Sprintf("%d", system.Processes)),
		field("CPU", fmt.Sprintf("Go Engine (%d) @ 3.9GHz", system.CPUs)),
		field("Memory", fmt.Sprintf("%dMiB / 16384MiB", it.Intn(2000)+1000)),
	)
}

func (it *Environment) sudo([]string) content.Node {
	return content.Wrap(content.Box,
		line(styled(content.Error, fmt.Sprintf("[sudo] password for %s:", it.Profile.Prompt.User))),
		line(content.Text("Sorry, try again.")),
		line(styled(content.Muted, "sudo: 3 incorrect password attempts")),
		line(styled(content.Success, "Just kidding! You don't need sudo here. 😉")),
	)
}

func hack([]string) content.Node {
	body := make(content.Sequence, 0, len(hackLines))
	for at, text := range hackLines {
		tag := content.Accent
		if at == len(hackLines)-3 {
			tag = content.Success
		}
		body = append(body, line(styled(tag, text)))
	}
	return content.Wrapper{Tag: content.Box, Child: body}
}

func (it *Environment) fortune([]string) content.Node {
	return line(styled(content.Success, fortunes[it.Intn(len(fortunes))]))
}

func cowsay(args []string) content.Node {
	message := strings.Join(args, " ")
	if len(message) == 0 {
		message = "Hello from the terminal!"
	}
	width := utf8.RuneCountInString(message) + 2
	bubble := strings.Join([]string{
		" " + strings.Repeat("_", width),
		"< " + message + " >",
		" " + strings.Repeat("-", width),
		cow,
	}, "\n")
	return content.Wrap(content.Pre, content.Text(bubble))
}

func (it *Environment) matrix([]string) content.Node {
	glyphs := []rune(matrixGlyphs)
	body := make(content.Sequence, 0, 11)
	for row := 0; row < 10; row++ {
		var builder strings.Builder
		for column := 0; column < 60; column++ {
			builder.WriteRune(glyphs[it.Intn(len(glyphs))])
		}
		body = append(body, line(styled(content.Success, builder.String())))
	}
	body = append(body, gap(), line(styled(content.Accent, "Wake up, Neo... The Matrix has you...")))
	return content.Wrapper{Tag: content.Box, Child: body}
}

func rickroll([]string) content.Node {
	return content.Wrap(content.Box,
		line(styled(content.Secret, "♪ Never gonna give you up ♪")),
		line(styled(content.Secret, "♪ Never gonna let you down ♪")),
		line(styled(content.Secret, "♪ Never gonna run around and desert you ♪")),
		gap(),
		line(styled(content.Accent, "You just got rickrolled! 🎵")),
		line(styled(content.Muted, "(Opening YouTube would be too obvious...)")),
	)
}

func coffee([]string) content.Node {
	return content.Wrap(content.Box,
		content.Wrap(content.Pre, styled(content.Error, coffeeCup)),
		gap(),
		line(styled(content.Accent, "☕ Coffee break! Refueling developer energy...")),
	)
}

func (it *Environment) motd([]string) content.Node {
	body := content.Sequence{}
	for at, text := range it.Profile.Motd {
		if at == 0 {
			body = append(body, line(styled(content.Accent, text)))
			continue
		}
		body = append(body, line(content.Text(text)))
	}
	started := it.System.Started.Format("Mon Jan _2 15:04:05 2006")
	body = append(body, gap(), line(styled(content.Muted, fmt.Sprintf("Session started: %s", started))))
	return content.Wrapper{Tag: content.Box, Child: body}
}

func (it *Environment) skills([]string) content.Node {
	body := content.Sequence{line(styled(content.Accent, "Skills:"))}
	for _, skill := range it.Profile.Skills {
		body = append(body, line(
			styled(content.Success, fmt.Sprintf("%-*s", nameColumn, skill.Area)),
			content.Text(strings.Join(skill.Items, " · ")),
		))
	}
	return content.Wrapper{Tag: content.Box, Child: body}
}

func (it *Environment) theme([]string) content.Node {
	body := content.Sequence{line(styled(content.Accent, "Available themes:"))}
	for _, name := range it.Themes {
		row := line(styled(content.Success, name))
		if name == it.Theme {
			row = line(styled(content.Success, name), styled(content.Muted, " (active)"))
		}
		body = append(body, content.Wrap(content.Indent, row))
	}
	body = append(body, gap(), line(styled(content.Muted, "Switch with --theme <name> or TERMFOLIO_THEME=<name>.")))
	return content.Wrapper{Tag: content.Box, Child: body}
}
