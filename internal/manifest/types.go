package manifest

// FileName is the manifest's file name inside a generated project.
const FileName = "package.json"

// Fixed manifest values.
const (
	DefaultVersion = "1.0.0"
	EntryPoint     = "index.js"
)

// Script aliases.
const (
	ScriptStart = "start"
	ScriptDev   = "dev"
)

// Manifest is the package.json record of a generated project. Field order
// matches the order written to disk.
type Manifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Main            string            `json:"main"`
	Scripts         Fields `json:"scripts"`
	Dependencies    Fields `json:"dependencies"`
	DevDependencies Fields `json:"devDependencies,omitempty"`
}

// Field is one key/value pair of a string-valued JSON object.
type Field struct {
	Key   string
	Value string
}

// Fields is a string-valued JSON object that keeps its key order when
// encoded and decoded. Keys are unique.
type Fields []Field

// Lookup returns the value stored under key.
func (f Fields) Lookup(key string) (string, bool) {
	for _, field := range f {
		if field.Key == key {
			return field.Value, true
		}
	}
	return "", false
}

// Get returns the value stored under key, or "" when absent.
func (f Fields) Get(key string) string {
	v, _ := f.Lookup(key)
	return v
}

// Set replaces the value under key, or appends the pair when key is new.
func (f *Fields) Set(key, value string) {
	for i := range *f {
		if (*f)[i].Key == key {
			(*f)[i].Value = value
			return
		}
	}
	*f = append(*f, Field{Key: key, Value: value})
}

// Dependency is a package name with its semver range.
type Dependency struct {
	Name  string
	Range string
}

// Declared dependencies.
var (
	Express = Dependency{Name: "express", Range: "^4.17.1"}
	DotEnv  = Dependency{Name: "dotenv", Range: "^10.0.0"}
	Nodemon = Dependency{Name: "nodemon", Range: "^3.1.0"}
)

// Options controls optional parts of a new manifest.
type Options struct {
	// Minimal drops the nodemon dev dependency and the dev script.
	Minimal bool
}
