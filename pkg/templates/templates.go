// Package templates holds the embedded project scaffolding assets: starter
// file sets, Dockerfile templates and README templates per language.
package templates

import (
	"bytes"
	"embed"
	"sort"
	"strings"
	"text/template"

	"github.com/m-mizutani/goerr/v2"
)

//go:embed dockerfile/*.dockerfile readme/*.md
var assets embed.FS

const fallbackPort = 8080

var defaultPorts = map[string]int{
	"python":  8000,
	"node":    3000,
	"java":    8080,
	"golang":  8080,
	"php":     80,
	"angular": 4200,
}

// DefaultPort returns the conventional port for a language's runtime.
func DefaultPort(language string) int {
	if port, ok := defaultPorts[language]; ok {
		return port
	}
	return fallbackPort
}

// Languages lists the supported language identifiers, sorted.
func Languages() []string {
	names := make([]string, 0, len(defaultPorts))
	for name := range defaultPorts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type dockerfileData struct {
	Port int
}

type readmeData struct {
	Title       string
	Description string
}

func render(path string, data any) (string, error) {
	raw, err := assets.ReadFile(path)
	if err != nil {
		return "", goerr.New("unsupported language, supported: " + strings.Join(Languages(), ", "))
	}

	tmpl, err := template.New(path).Parse(string(raw))
	if err != nil {
		return "", goerr.Wrap(err, "broken embedded template", goerr.V("path", path))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", goerr.Wrap(err, "failed to render template", goerr.V("path", path))
	}
	return buf.String(), nil
}

// RenderDockerfile renders the Dockerfile template for a language with the
// given exposed port.
func RenderDockerfile(language string, port int) (string, error) {
	return render("dockerfile/"+language+".dockerfile", dockerfileData{Port: port})
}

// RenderReadme renders the README template for a language.
func RenderReadme(language, title, description string) (string, error) {
	return render("readme/"+language+".md", readmeData{Title: title, Description: description})
}
