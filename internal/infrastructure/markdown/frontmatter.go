package markdown

import (
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
)

// Frontmatter is the YAML metadata block expected at the top of a post.
type Frontmatter struct {
	Title       string   `yaml:"title"`
	Date        string   `yaml:"date"`
	Description *string  `yaml:"description"`
	Tags        []string `yaml:"tags"`
}

// Parse splits raw Markdown into front matter and body. Content without a
// front matter block parses as an empty Frontmatter with the full body.
func Parse(raw string) (Frontmatter, string, error) {
	var fm Frontmatter
	body, err := frontmatter.Parse(strings.NewReader(raw), &fm)
	if err != nil {
		return Frontmatter{}, "", fmt.Errorf("parse front matter: %w", err)
	}
	return fm, string(body), nil
}
