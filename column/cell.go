package column

// AddCell converts token to the column's type and appends it.
//
// Empty tokens and tokens in the configured missing-token set append the
// missing sentinel. Grouping separators (commas) are stripped from numeric
// tokens, so "1,234" reads as 1234. A token that cannot be parsed, or that
// parses to the reserved sentinel, fails with a *ConversionError and leaves the
// column unchanged.
func (c *Typed[T]) AddCell(token string) error {
	v, err := c.Convert(token)
	if err != nil {
		return err
	}
	c.data = append(c.data, v)
	return nil
}

// Convert parses token by the column's rules without appending it.
func (c *Typed[T]) Convert(token string) (T, error) {
	if _, ok := c.opts.missingTokens[token]; ok || token == "" {
		return c.kind.missing, nil
	}
	v, err := c.kind.parse(token, &c.opts)
	if err != nil {
		return c.kind.missing, &ConversionError{Column: c.name, Token: token, Type: c.kind.typ, cause: err}
	}
	return v, nil
}

// SetCell converts token and stores it at index.
func (c *Typed[T]) SetCell(index int, token string) error {
	if err := c.checkIndex(index); err != nil {
		return err
	}
	v, err := c.Convert(token)
	if err != nil {
		return err
	}
	c.data[index] = v
	return nil
}
