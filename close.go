package tabula

// Close releases the table's memory reservation and its columns. Closing a
// closed table is a no-op.
func (t *Table) Close() error {
	if t == nil || t.closed {
		return nil
	}
	t.release(t.reserved)
	for _, c := range t.columns {
		c.Unbind(t)
	}
	t.closed = true
	return nil
}
