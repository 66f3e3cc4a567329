package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"path"
	"text/template"

	"github.com/mvc-kit/create-mvc-structure/internal/manifest"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// DefaultDatabaseURL is the placeholder connection string written to .env.
const DefaultDatabaseURL = "mongodb://localhost:27017/myapp"

// Directories is the ordered list of directories created under the target,
// slash-separated and relative to it.
var Directories = []string{
	"controllers",
	"models",
	"routes",
	"public/css",
	"views",
	"config",
	"middleware",
}

// File is a relative filename and the content written to it.
type File struct {
	Name    string
	Content []byte
}

// Generated file names.
const (
	GitignoreFile = ".gitignore"
	EnvFile       = ".env"
	EntryFile     = manifest.EntryPoint
	ManifestFile  = manifest.FileName
)

// fileTemplates maps each templated file to its embedded template. The
// manifest is not templated; it is serialized from manifest.Manifest.
var fileTemplates = []struct {
	name     string
	template string
}{
	{GitignoreFile, "gitignore.tmpl"},
	{EnvFile, "env.tmpl"},
	{EntryFile, "index.js.tmpl"},
}

// FileNames returns the ordered list of files the layout writes.
func FileNames() []string {
	names := make([]string, 0, len(fileTemplates)+1)
	for _, ft := range fileTemplates {
		names = append(names, ft.name)
	}
	return append(names, ManifestFile)
}

// Data holds the values substituted into the file templates.
type Data struct {
	ProjectName string
	Port        int
	DatabaseURL string
	Minimal     bool
}

// NewData returns Data for a project with the placeholder database URL.
func NewData(projectName string, port int, minimal bool) *Data {
	return &Data{
		ProjectName: projectName,
		Port:        port,
		DatabaseURL: DefaultDatabaseURL,
		Minimal:     minimal,
	}
}

// RenderFiles resolves the content of every layout file in write order.
func RenderFiles(data *Data) ([]File, error) {
	files := make([]File, 0, len(fileTemplates)+1)
	for _, ft := range fileTemplates {
		content, err := renderTemplate(ft.template, data)
		if err != nil {
			return nil, err
		}
		files = append(files, File{Name: ft.name, Content: content})
	}

	pkg, err := manifest.New(data.ProjectName, manifest.Options{Minimal: data.Minimal}).Marshal()
	if err != nil {
		return nil, err
	}
	files = append(files, File{Name: ManifestFile, Content: pkg})
	return files, nil
}

func renderTemplate(name string, data *Data) ([]byte, error) {
	tmplBytes, err := templateFS.ReadFile(path.Join("templates", name))
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", name, err)
	}

	tmpl, err := template.New(name).Option("missingkey=error").Parse(string(tmplBytes))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
