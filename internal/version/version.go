// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.2.0"

// Milestones:
// 0.2.0 - Live TUI progress view, JSON export, ASCII sky map
// 0.1.0 - Initial release: parallel pairwise separation engine, catalog loader
