// Package main hosts the indentlog CLI.
//
// The Cobra command tree exercises the rendering engine from a terminal:
// demo prints nested scopes, logger hierarchies, colors and a structured
// dump; dump renders a JSON, YAML or TOML file as an indented tree; config
// scaffolds and inspects the TOML configuration. Configuration is resolved
// once per invocation in commandContext and every command logs through the
// logger it builds.
package main
