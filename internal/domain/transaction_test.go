package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemInputAcceptsStringOrObject(t *testing.T) {
	var items []ItemInput
	err := json.Unmarshal([]byte(`["p1", {"id":"p2","name":"Milk","quantity":2.5}, {"id":"p3"}]`), &items)
	require.NoError(t, err)

	assert.Equal(t, []ItemInput{
		{ID: "p1"},
		{ID: "p2", Name: "Milk", Quantity: 2.5},
		{ID: "p3"},
	}, items)
}

func TestItemInputRejectsOtherShapes(t *testing.T) {
	var item ItemInput
	assert.Error(t, json.Unmarshal([]byte(`42`), &item))
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &item))
}

func TestTransactionMarshalsUpstreamShape(t *testing.T) {
	tx := Transaction{
		ID:        "t1",
		Items:     []Item{{ID: "p1", Quantity: 1}},
		Timestamp: "2023-04-01T18:20:23.537Z",
	}

	b, err := json.Marshal(tx)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"transaction_id": "t1",
		"items": [{"item_id": "p1", "item_name": null, "quantity": 1}],
		"timestamp": "2023-04-01T18:20:23.537Z"
	}`, string(b))
}

func TestClientError(t *testing.T) {
	err := NewClientError("items[%d] is invalid", 2)
	assert.Equal(t, "items[2] is invalid", err.Error())
	assert.True(t, IsClientError(err))
	assert.False(t, IsClientError(assert.AnError))
}
