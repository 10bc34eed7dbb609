// Package site holds the canned profile shown by the terminal commands.
package site

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

//go:embed site.yaml
var builtin []byte

type Contact struct {
	Label string `yaml:"label" json:"label"`
	Text  string `yaml:"text" json:"text"`
	Href  string `yaml:"href" json:"href"`
}

type Project struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	URL         string `yaml:"url" json:"url,omitempty"`
}

type Resume struct {
	File   string  `yaml:"file" json:"file"`
	Online Contact `yaml:"online" json:"online"`
}

type Skill struct {
	Area  string   `yaml:"area" json:"area"`
	Items []string `yaml:"items" json:"items"`
}

type Prompt struct {
	User string `yaml:"user" json:"user"`
	Host string `yaml:"host" json:"host"`
}

func (it Prompt) String() string {
	return fmt.Sprintf("%s@%s:~$", it.User, it.Host)
}

type Profile struct {
	Name            string    `yaml:"name" json:"name"`
	Title           string    `yaml:"title" json:"title"`
	Specializations []string  `yaml:"specializations" json:"specializations"`
	Expertise       []string  `yaml:"expertise" json:"expertise"`
	Cloud           []string  `yaml:"cloud" json:"cloud"`
	Prompt          Prompt    `yaml:"prompt" json:"prompt"`
	Words           []string  `yaml:"words" json:"words"`
	Banner          string    `yaml:"banner" json:"banner"`
	Boot            []string  `yaml:"boot" json:"boot"`
	Contacts        []Contact `yaml:"contacts" json:"contacts"`
	Projects        []Project `yaml:"projects" json:"projects"`
	Resume          Resume    `yaml:"resume" json:"resume"`
	Skills          []Skill   `yaml:"skills" json:"skills"`
	Motd            []string  `yaml:"motd" json:"motd"`
}

func Default() *Profile {
	profile, err := Parse(builtin)
	if err != nil {
		panic(fmt.Sprintf("builtin site profile is broken: %v", err))
	}
	return profile
}

func Parse(blob []byte) (*Profile, error) {
	profile := &Profile{}
	err := yaml.Unmarshal(blob, profile)
	if err != nil {
		return nil, fmt.Errorf("site profile: %w", err)
	}
	err = profile.validate()
	if err != nil {
		return nil, err
	}
	profile.Banner = strings.TrimRight(profile.Banner, "\n")
	return profile, nil
}

// Load reads a profile file, or returns the builtin profile for an empty
// filename. Fields missing from the file keep their builtin values.
func Load(filename string) (*Profile, error) {
	if len(filename) == 0 {
		return Default(), nil
	}
	blob, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading site profile %q: %w", filename, err)
	}
	profile := &Profile{}
	err = yaml.Unmarshal(builtin, profile)
	if err != nil {
		return nil, fmt.Errorf("site profile: %w", err)
	}
	err = yaml.Unmarshal(blob, profile)
	if err != nil {
		return nil, fmt.Errorf("site profile %q: %w", filename, err)
	}
	err = profile.validate()
	if err != nil {
		return nil, fmt.Errorf("site profile %q: %w", filename, err)
	}
	profile.Banner = strings.TrimRight(profile.Banner, "\n")
	return profile, nil
}

func (it *Profile) validate() error {
	if len(strings.TrimSpace(it.Name)) == 0 {
		return fmt.Errorf("name is required")
	}
	if len(it.Prompt.User) == 0 || len(it.Prompt.Host) == 0 {
		return fmt.Errorf("prompt user and host are required")
	}
	return nil
}

func (it *Profile) ContactNamed(label string) (Contact, bool) {
	for _, contact := range it.Contacts {
		if strings.EqualFold(contact.Label, label) {
			return contact, true
		}
	}
	return Contact{}, false
}
