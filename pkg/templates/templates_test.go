package templates_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octoscope/pkg/templates"
)

func TestDefaultPort(t *testing.T) {
	testCases := []struct {
		language string
		want     int
	}{
		{"python", 8000},
		{"node", 3000},
		{"java", 8080},
		{"golang", 8080},
		{"php", 80},
		{"angular", 4200},
		{"unknown", 8080},
	}

	for _, tc := range testCases {
		t.Run(tc.language, func(t *testing.T) {
			gt.Equal(t, templates.DefaultPort(tc.language), tc.want)
		})
	}
}

func TestRenderDockerfile(t *testing.T) {
	for _, language := range templates.Languages() {
		t.Run(language, func(t *testing.T) {
			content, err := templates.RenderDockerfile(language, 1234)
			gt.NoError(t, err)
			gt.True(t, strings.Contains(content, "EXPOSE 1234"))
			gt.False(t, strings.Contains(content, "{{"))
		})
	}
}

func TestRenderDockerfileUnsupported(t *testing.T) {
	_, err := templates.RenderDockerfile("haskell", 8080)
	gt.Error(t, err)
	gt.True(t, strings.Contains(err.Error(), "unsupported language"))
}

func TestRenderReadme(t *testing.T) {
	for _, language := range templates.Languages() {
		t.Run(language, func(t *testing.T) {
			content, err := templates.RenderReadme(language, "My Project", "What it does.")
			gt.NoError(t, err)
			gt.True(t, strings.HasPrefix(content, "# My Project"))
			gt.True(t, strings.Contains(content, "What it does."))
		})
	}
}

func TestScaffold(t *testing.T) {
	for _, name := range templates.Languages() {
		t.Run(name, func(t *testing.T) {
			files, ok := templates.Scaffold(name)
			gt.True(t, ok)
			gt.True(t, len(files) > 0)

			seen := map[string]bool{}
			for _, file := range files {
				gt.True(t, file.Path != "")
				gt.False(t, seen[file.Path])
				seen[file.Path] = true
			}
		})
	}

	_, ok := templates.Scaffold("cobol")
	gt.False(t, ok)
}

// The python starter ships requirements.txt as an empty placeholder.
func TestScaffoldEmptyPlaceholder(t *testing.T) {
	files, ok := templates.Scaffold("python")
	gt.True(t, ok)

	var requirements *templates.ScaffoldFile
	for i := range files {
		if files[i].Path == "requirements.txt" {
			requirements = &files[i]
		}
	}
	gt.True(t, requirements != nil)
	gt.Equal(t, requirements.Content, "")
}
