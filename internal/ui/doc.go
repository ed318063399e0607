package ui

// Package ui contains the Fyne-based user interface: the swipeable card
// stack, lightbox viewer, favorites history grid, progress bar, toasts,
// and settings dialog. Renderers are read-only projections of the shared
// catalog and navigation state owned by RootUI.
