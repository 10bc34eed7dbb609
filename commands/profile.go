package commands

import (
	"fmt"
	"strings"

	"github.com/master-bogdan/termfolio/content"
)

const nameColumn = 12

func line(children ...content.Node) content.Wrapper {
	return content.Wrap(content.Line, children...)
}

func styled(tag content.Tag, text string) content.Wrapper {
	return content.Wrap(tag, content.Text(text))
}

func gap() content.Wrapper {
	return content.Wrap(content.Line)
}

// entry is one "name - description" row; the name runs the command.
func entry(tag content.Tag, descriptor Descriptor) content.Wrapper {
	padding := nameColumn - len(descriptor.Name)
	if padding < 1 {
		padding = 1
	}
	return line(
		content.CommandLink(descriptor.Name, styled(tag, descriptor.Name)),
		content.Text(strings.Repeat(" ", padding)),
		content.Textf("- %s", descriptor.Description),
	)
}

func cleared([]string) content.Node {
	return content.Empty{}
}

func (it *Environment) whoami([]string) content.Node {
	profile := it.Profile
	return content.Wrap(content.Box,
		line(styled(content.Success, profile.Name)),
		line(content.Text(profile.Title)),
		line(content.Textf("Specializations: %s", strings.Join(profile.Specializations, " | "))),
		line(content.Textf("Expert in: %s", strings.Join(profile.Expertise, ", "))),
		line(content.Textf("Cloud: %s", strings.Join(profile.Cloud, ", "))),
	)
}

func (it *Environment) projects([]string) content.Node {
	body := content.Sequence{line(styled(content.Accent, "Featured Projects:"))}
	if len(it.Profile.Projects) == 0 {
		body = append(body, content.Wrap(content.Indent, line(content.Text("In development"))))
		return content.Wrapper{Tag: content.Box, Child: body}
	}
	for at, project := range it.Profile.Projects {
		details := content.Sequence{line(content.Text(project.Description))}
		if len(project.URL) > 0 {
			details = append(details, line(content.Text("→ "), content.Href(project.URL, styled(content.Success, project.URL))))
		}
		body = append(body,
			line(styled(content.Success, fmt.Sprintf("%d. ", at+1)), styled(content.Strong, project.Name)),
			content.Wrapper{Tag: content.Indent, Child: details},
		)
	}
	return content.Wrapper{Tag: content.Box, Child: body}
}

func (it *Environment) contacts([]string) content.Node {
	body := content.Sequence{line(styled(content.Accent, "Contact Information:"))}
	for _, contact := range it.Profile.Contacts {
		body = append(body, line(
			content.Textf("%s: ", contact.Label),
			content.Href(contact.Href, styled(content.Success, contact.Text)),
		))
	}
	return content.Wrapper{Tag: content.Box, Child: body}
}

func (it *Environment) resume([]string) content.Node {
	resume := it.Profile.Resume
	body := content.Sequence{
		line(styled(content.Accent, "Resume / CV")),
		line(content.Text("Download my resume:")),
		line(content.Href(resume.File, styled(content.Success, "[Download PDF]"))),
	}
	if len(resume.Online.Href) > 0 {
		body = append(body,
			gap(),
			line(
				styled(content.Muted, "Or view online at: "),
				content.Href(resume.Online.Href, styled(content.Success, resume.Online.Text)),
			),
		)
	}
	return content.Wrapper{Tag: content.Box, Child: body}
}

func help(registry *Registry, args []string) content.Node {
	for _, arg := range args {
		if arg == HiddenFlag {
			return secrets(registry)
		}
	}
	body := content.Sequence{line(styled(content.Accent, "Available Commands:"))}
	for _, descriptor := range registry.Descriptors(false) {
		body = append(body, entry(content.Success, descriptor))
	}
	body = append(body, gap(), line(styled(content.Muted, "Hint: Try exploring for hidden commands...")))
	return content.Wrapper{Tag: content.Box, Child: body}
}

func secrets(registry *Registry) content.Node {
	body := content.Sequence{line(styled(content.Secret, "🎉 Secret Hidden Commands:"))}
	for _, descriptor := range registry.Descriptors(true) {
		body = append(body, entry(content.Secret, descriptor))
	}
	body = append(body, gap(), line(styled(content.Muted, "Congratulations on finding the secret! 🎊")))
	return content.Wrapper{Tag: content.Box, Child: body}
}
