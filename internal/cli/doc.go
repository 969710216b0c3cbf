// Package cli provides the interactive school-dashboard command-line client.
//
// It wires configuration, the local record store, the session gate, and the
// feature services behind an interactive REPL. Typical flow: restore the
// previous session if one survives on disk, prompt for credentials otherwise,
// and execute user commands until exit.
//
// Key features:
//   - Login / Logout backed by the offline account directory
//   - Profile viewing and editing, including an inlined avatar
//   - A personal event calendar with CSV export
//   - School settings (admin-writable) with JSON export
//   - Report collections: upload, generate, download, delete
//   - The admin notification feed with approve/reject decisions
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
package cli
