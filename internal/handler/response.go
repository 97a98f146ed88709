package handler

import "encoding/json"

type SuccessResponse struct {
	Status string `json:"status"`
	Data   any    `json:"data"`
}

// ErrorBody is the single error shape every route answers with
type ErrorBody struct {
	Message   string `json:"message"`
	Status    int    `json:"status"`
	RequestID string `json:"requestId,omitempty"`
	Path      string `json:"path,omitempty"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// TrainRequest carries optional training parameters. Omitted values get
// defaults in the handler.
type TrainRequest struct {
	MinSupport    *float64 `json:"min_support" validate:"omitempty,gt=0,lte=1"`
	MinThreshold  *float64 `json:"min_threshold" validate:"omitempty,gt=0,lte=1"`
	UseSampleData *bool    `json:"use_sample_data"`
	MaxLength     *int     `json:"max_length" validate:"omitempty,gt=0"`
}

// Items and Transactions stay raw so a non-array can be told apart
// from a missing field.
type SimulateRequest struct {
	Items json.RawMessage `json:"items"`
}

type BatchSimulateRequest struct {
	Transactions json.RawMessage `json:"transactions"`
}
