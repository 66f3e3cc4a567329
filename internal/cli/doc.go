// Package cli defines the Cobra command tree for the create-mvc-structure CLI.
// The root command scaffolds a project; each other file registers one
// subcommand (doctor, config, version) with the root command. Commands
// delegate to internal packages for the work and only handle flags, output
// formatting and exit codes.
package cli
