package domain

import "encoding/json"

// Item is the canonical line item sent to the analytics service
type Item struct {
	ID       string  `json:"item_id"`
	Name     *string `json:"item_name"`
	Quantity float64 `json:"quantity"`
}

// Transaction is the canonical cart sent to the analytics service
type Transaction struct {
	ID        string `json:"transaction_id"`
	Items     []Item `json:"items"`
	Timestamp string `json:"timestamp"`
}

// ItemInput is a line item as submitted by the UI. It is either a bare
// item id string or an object.
type ItemInput struct {
	ID       string  `json:"id" validate:"required"`
	Name     string  `json:"name,omitempty"`
	Quantity float64 `json:"quantity,omitempty" validate:"qty"`
}

func (i *ItemInput) UnmarshalJSON(b []byte) error {
	var id string
	if err := json.Unmarshal(b, &id); err == nil {
		*i = ItemInput{ID: id}
		return nil
	}
	type plain ItemInput
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*i = ItemInput(p)
	return nil
}

// TransactionInput is a cart as submitted by the UI; id and timestamp
// are optional
type TransactionInput struct {
	ID        string      `json:"id,omitempty"`
	Items     []ItemInput `json:"items"`
	Timestamp string      `json:"timestamp,omitempty"`
}
