package notify

// Center holds the notification currently on screen. Only one is visible at a
// time; a newer notification replaces the older one.
type Center struct {
	current *Notification
	count   int
}

// NewCenter creates an empty notification center
func NewCenter() *Center {
	return &Center{}
}

// Notify shows n, replacing whatever was visible
func (c *Center) Notify(n Notification) {
	c.current = &n
	c.count++
}

// Current returns the visible notification, if any
func (c *Center) Current() (Notification, bool) {
	if c.current == nil {
		return Notification{}, false
	}
	return *c.current, true
}

// Dismiss hides the visible notification
func (c *Center) Dismiss() {
	c.current = nil
}

// Count returns how many notifications were shown since creation
func (c *Center) Count() int {
	return c.count
}
