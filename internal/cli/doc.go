// Package cli defines the command line of the desktop application. Without a
// subcommand it launches the GUI; the update subcommands run the same update
// client headless.
package cli
