package deck

import (
	"encoding/json"
	"fmt"
)

// MarshalJSON encodes a card as its compact notation, e.g. "As".
func (c Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Notation())
}

// UnmarshalJSON decodes a card from compact notation.
func (c *Card) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("card must be a string like \"As\": %w", err)
	}
	card, err := ParseCard(s)
	if err != nil {
		return err
	}
	*c = card
	return nil
}
