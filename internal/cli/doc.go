// Package cli defines the gmc command tree. It turns flags and the optional
// YAML configuration file into an app.Config, runs the requested command
// and maps every failure onto a process exit code.
package cli
