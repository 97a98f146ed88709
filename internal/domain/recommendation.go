package domain

import "encoding/json"

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// RecommendationQuery asks the analytics service for items associated
// with Items. Thresholds are forwarded only when set.
type RecommendationQuery struct {
	Items        []string `json:"items"`
	MinSupport   *float64 `json:"min_support,omitempty"`
	MinThreshold *float64 `json:"min_threshold,omitempty"`
}

// BatchTransactionResult is the outcome of one transaction in a batch
type BatchTransactionResult struct {
	TransactionID string          `json:"transaction_id"`
	Status        string          `json:"status"`
	Data          json.RawMessage `json:"data,omitempty"`
	Error         string          `json:"error,omitempty"`
}

type BatchSummary struct {
	SuccessCount     int   `json:"success_count"`
	FailedCount      int   `json:"failed_count"`
	ProcessingTimeMs int64 `json:"processing_time_ms"`
}

// BatchResponse always has one result per submitted transaction, in
// submission order
type BatchResponse struct {
	Status    string                   `json:"status"`
	Processed int                      `json:"processed"`
	Results   []BatchTransactionResult `json:"results"`
	Summary   BatchSummary             `json:"summary"`
}
