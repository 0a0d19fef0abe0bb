package ui

// FixtureReloadedMsg reports a reload of the testimonial fixture. It is sent
// into the program from the watcher goroutine.
type FixtureReloadedMsg struct {
	Err error
}
