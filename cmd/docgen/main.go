// Package main provides the attribute reference generator. It renders the
// carousel's own option metadata into docs/attributes.md so the wire
// documentation cannot drift from the code.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/carousel/pkg/carousel"
)

func main() {
	root, err := findRepoRoot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error finding repo root: %v\n", err)
		os.Exit(1)
	}

	docsDir := filepath.Join(root, "docs")
	if err := os.MkdirAll(docsDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating docs directory: %v\n", err)
		os.Exit(1)
	}

	outputPath := filepath.Join(docsDir, "attributes.md")
	if err := os.WriteFile(outputPath, []byte(render()), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", outputPath, err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s\n", outputPath)
}

func findRepoRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	// Walk up looking for go.mod
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find go.mod in any parent directory")
		}
		dir = parent
	}
}

func render() string {
	var b strings.Builder

	b.WriteString("# Carousel attribute reference\n\n")
	b.WriteString("<!-- Generated by cmd/docgen. Do not edit by hand. -->\n\n")
	b.WriteString("The carousel control configures its host renderer through the string\n")
	b.WriteString("attributes below. Keys are matched exactly, including the legacy\n")
	b.WriteString("spellings. An absent attribute means the host applies the documented\n")
	b.WriteString("default.\n\n")

	b.WriteString("## Options\n\n")
	b.WriteString("| Option | Attribute key | Type | Default | Description |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, opt := range carousel.Options() {
		fmt.Fprintf(&b, "| %s | `%s` | %s | `%s` | %s |\n",
			opt.Name, opt.Key, opt.Type, opt.Default, opt.Doc)
	}
	b.WriteString("\n")

	b.WriteString("## Enumerations\n\n")
	for _, opt := range carousel.Options() {
		if len(opt.Enum) == 0 {
			continue
		}
		fmt.Fprintf(&b, "`%s`: ", opt.Key)
		for i, id := range opt.Enum {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "`%s`", id)
		}
		b.WriteString("\n\n")
	}

	b.WriteString("## Navigation commands\n\n")
	fmt.Fprintf(&b, "Navigation requests ride the reserved `%s` attribute as\n", carousel.CommandAttr)
	b.WriteString("`<target>:<duration>:<curve>:<token>` with durations in milliseconds:\n\n")
	b.WriteString("| Call | Wire form |\n")
	b.WriteString("|---|---|\n")
	b.WriteString("| AnimateToPage(2, 500ms, easeIn) | `2:500:easeIn:<token>` |\n")
	fmt.Fprintf(&b, "| NextPage | `__next:%d:fastOutSlowIn:<token>` |\n", carousel.DefaultSlideDuration.Milliseconds())
	fmt.Fprintf(&b, "| PreviousPage | `__prev:%d:fastOutSlowIn:<token>` |\n", carousel.DefaultSlideDuration.Milliseconds())
	b.WriteString("| JumpToPage(5) | `__jump:5:none:<token>` |\n\n")
	fmt.Fprintf(&b, "AnimateToPage defaults to %dms and fastOutSlowIn; NextPage and\n", carousel.DefaultAnimateDuration.Milliseconds())
	fmt.Fprintf(&b, "PreviousPage default to %dms. Jump commands carry the page index in\n", carousel.DefaultSlideDuration.Milliseconds())
	b.WriteString("the duration slot and never animate. The trailing token increases\n")
	b.WriteString("monotonically per control, so repeating a command changes the attribute\n")
	b.WriteString("value and survives changed-value-only forwarding.\n\n")

	b.WriteString("## Events\n\n")
	b.WriteString("| Event | Payload | Degraded value |\n")
	b.WriteString("|---|---|---|\n")
	fmt.Fprintf(&b, "| `%s` | `<index>:<reason>` with reason `timed`, `manual` or `controller` | index `0`, reason `manual` |\n", carousel.EventChange)
	fmt.Fprintf(&b, "| `%s` | scroll offset in page units as a decimal string | `0` |\n", carousel.EventScrolled)
	b.WriteString("\nEvent parsing is total: malformed payloads degrade to the values above\n")
	b.WriteString("and never fail.\n")

	return b.String()
}
