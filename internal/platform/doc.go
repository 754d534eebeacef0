package platform

// Package platform contains OS/platform integration and external tooling glue:
// feed sources (YAML files, YouTube playlists via ytdlp), thumbnail lookup,
// filesystem helpers, and the external player that backs video surfaces.
