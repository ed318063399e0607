package platform

// Package platform contains OS integration glue: filesystem helpers for the
// image save directory and open/reveal actions on saved files.
