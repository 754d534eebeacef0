package trending

// Package trending coordinates the trending carousel: it decides which card
// is active as the viewport scrolls, keeps at most one card playing, and
// derives the zoom transition for every card. The package has no UI
// dependency; callers feed it ordered events from a single goroutine and read
// back per-card render instructions.
