package ui

// Package ui contains the Fyne user interface: the tab shell, the search
// input and the trending carousel with its video cards. The carousel widgets
// render what trending.Carousel decides and forward scroll and tap input to
// it. All UI strings are localized via Localization.
