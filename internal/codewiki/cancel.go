package codewiki

// CancelFlow is the two-phase confirmation for cancelling a generation.
// Requesting records intent and opens the confirm dialog; the cancel call
// itself is issued only after an explicit confirm.
type CancelFlow struct {
	pending   string
	requested bool
}

// Pending reports whether a cancel is awaiting confirmation, and for which
// generation.
func (c *CancelFlow) Pending() (string, bool) {
	return c.pending, c.requested
}

// RequestCancel records intent to cancel the given generation. A second
// request replaces the first.
func (c *CancelFlow) RequestCancel(generationID string) {
	c.pending = generationID
	c.requested = true
}

// ConfirmCancel clears the pending intent and returns the generation to
// cancel. Returns false when nothing was requested.
func (c *CancelFlow) ConfirmCancel() (string, bool) {
	if !c.requested {
		return "", false
	}
	id := c.pending
	c.pending = ""
	c.requested = false
	return id, true
}

// DismissCancel drops the pending intent without firing.
func (c *CancelFlow) DismissCancel() {
	c.pending = ""
	c.requested = false
}
