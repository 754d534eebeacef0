package model

// Package model defines domain data structures used across the app: video
// records supplied by feed sources and the helpers that give every record a
// stable key before it reaches the trending carousel.
