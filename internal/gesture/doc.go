package gesture

// Package gesture implements the drag/swipe state machine for the card
// stack. It is pure index-and-distance arithmetic with no Fyne dependency;
// the ui package feeds it pointer events and renders the transforms it
// returns.
