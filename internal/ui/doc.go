// Package ui holds terminal confirmation prompts for the CLI.
package ui
