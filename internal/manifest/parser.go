package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// New returns the manifest for a project named name.
func New(name string, opts Options) *Manifest {
	m := &Manifest{
		Name:    name,
		Version: DefaultVersion,
		Main:    EntryPoint,
		Scripts: Fields{
			{Key: ScriptStart, Value: "node " + EntryPoint},
		},
		Dependencies: Fields{
			{Key: Express.Name, Value: Express.Range},
			{Key: DotEnv.Name, Value: DotEnv.Range},
		},
	}
	if !opts.Minimal {
		m.Scripts.Set(ScriptDev, Nodemon.Name+" "+EntryPoint)
		m.DevDependencies = Fields{
			{Key: Nodemon.Name, Value: Nodemon.Range},
		}
	}
	return m
}

// Marshal serializes the manifest as two-space indented JSON in declaration
// order, without a trailing newline. HTML characters are left unescaped.
func (m *Manifest) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("encoding %s: %w", FileName, err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Parse decodes manifest JSON.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", FileName, err)
	}
	return &m, nil
}
