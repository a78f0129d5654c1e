// Package vlrgg extracts structured esports records from vlr.gg HTML pages.
// It covers the events listing, per-event match lists, full match details,
// player profiles and match histories, and team profiles, match histories
// and roster transactions. Results are plain value snapshots; nothing is
// cached and nothing refers back into the source document.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, slog/).
package vlrgg
