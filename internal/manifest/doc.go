// Package manifest builds, parses and validates the package.json manifest
// written into generated projects. Validation runs the manifest against an
// embedded JSON Schema and checks every dependency range with semver.
package manifest
