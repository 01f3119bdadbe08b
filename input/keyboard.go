package input

// Navigator keeps the keyboard focus cursor, independent of pointer state
// The cursor is valid in [0, count-1] and resets to 0 when the visible list changes identity
type Navigator struct {
	table  *KeyTable
	cursor int
	count  int
	listID string
}

// NewNavigator creates a navigator using table, or the default table when nil
func NewNavigator(table *KeyTable) *Navigator {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Navigator{table: table}
}

// SetTable swaps the key bindings
func (n *Navigator) SetTable(table *KeyTable) {
	if table != nil {
		n.table = table
	}
}

// Resolve maps a key event to its action
func (n *Navigator) Resolve(ev KeyEvent) KeyEntry {
	e, ok := n.table.Lookup(ev)
	if !ok {
		return KeyEntry{}
	}
	return e
}

// Sync records the current visible list identity
// Returns true when the cursor was reset because the list changed
func (n *Navigator) Sync(listID string, count int) bool {
	if listID == n.listID && count == n.count {
		return false
	}
	n.listID = listID
	n.count = count
	n.cursor = 0
	return true
}

// Cursor returns the focused index, or -1 when the list is empty
func (n *Navigator) Cursor() int {
	if n.count == 0 {
		return -1
	}
	return n.cursor
}

// Count returns the size of the synced list
func (n *Navigator) Count() int {
	return n.count
}

// Next moves focus forward, wrapping from the last item to the first
func (n *Navigator) Next() (int, bool) {
	if n.count == 0 {
		return -1, false
	}
	n.cursor = (n.cursor + 1) % n.count
	return n.cursor, true
}

// Prev moves focus backward, wrapping from the first item to the last
func (n *Navigator) Prev() (int, bool) {
	if n.count == 0 {
		return -1, false
	}
	n.cursor = (n.cursor - 1 + n.count) % n.count
	return n.cursor, true
}

// Jump focuses index directly; out-of-range indices are rejected
func (n *Navigator) Jump(index int) bool {
	if index < 0 || index >= n.count {
		return false
	}
	n.cursor = index
	return true
}
