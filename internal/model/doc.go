package model

// Package model defines domain data structures used across the app: the image
// catalog, navigation state for the card stack and lightbox, and download
// tasks with explicit status transitions. Structures are designed for direct
// use by the UI; renderers treat them as the single source of truth.
