package output

import (
	"fmt"
	"strings"
)

// BannerData holds the values rendered into the success banner.
type BannerData struct {
	// Name is the generated project name.
	Name string

	// Path is the absolute destination path.
	Path string
}

// commands the generated project supports, in the order they are presented.
var nextCommands = []struct {
	command     string
	description string
}{
	{"make install", "Install dependencies"},
	{"make start", "Start the development server"},
	{"make test", "Run tests"},
	{"make lint", "Run linter"},
}

// RenderSuccessBanner renders the post-generation banner: destination path,
// the commands the project supports, and the suggested first steps.
func RenderSuccessBanner(data BannerData) string {
	styles := GetStyles()

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s Created %s at %s\n",
		styles.Success.Render("Success!"), data.Name, data.Path))
	b.WriteString("\nInside that directory, you can run several commands:\n\n")

	for _, c := range nextCommands {
		b.WriteString(fmt.Sprintf("    %s\n    %s\n\n",
			styles.Command.Render(c.command), c.description))
	}

	b.WriteString("We suggest that you begin by typing:\n\n")
	b.WriteString(fmt.Sprintf("    %s\n", styles.Command.Render("cd "+data.Name)))
	b.WriteString(fmt.Sprintf("    %s\n", styles.Command.Render("make install")))
	b.WriteString(fmt.Sprintf("    %s\n", styles.Command.Render("make start")))
	b.WriteString(fmt.Sprintf("\nThen open %s to see your API.\n\n",
		styles.Noun.Render("http://localhost:8000/docs")))
	b.WriteString(styles.SignOff.Render("Happy hacking!"))
	b.WriteString("\n")

	return b.String()
}
