package download

// Package download implements the image save pipeline. It manages task
// lifecycle, a parallel fetch limit, and progress propagation to the UI
// through an update callback. Fetch failures end the task in an error
// state; nothing here is fatal.
