// Package terminal owns the tcell screen for a session: startup checks, raw
// mode entry and exit, and best-effort restoration after a crash.
package terminal
