package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/actuallystonmai/basket-gateway/internal/domain"
	"github.com/actuallystonmai/basket-gateway/internal/logger"
	"github.com/actuallystonmai/basket-gateway/internal/validation"
)

const (
	defaultQuantity    = 1.0
	unknownTransaction = "unknown"
	isoMillis          = "2006-01-02T15:04:05.000Z07:00"

	defaultErrorMessage = "Internal Server Error"
)

// Simulate sends a single cart with a generated id and the current time
func (s *Service) Simulate(ctx context.Context, items []domain.ItemInput) (json.RawMessage, error) {
	if len(items) == 0 {
		return nil, domain.NewClientError("Items array is required")
	}
	normalized, err := normalizeItems(items)
	if err != nil {
		return nil, err
	}
	return s.upstream.Simulate(ctx, domain.Transaction{
		ID:        s.newID(),
		Items:     normalized,
		Timestamp: s.timestamp(),
	})
}

// SimulateBatch simulates each transaction in order, one at a time. A
// failing transaction is recorded and the batch moves on, so the result
// always has one entry per input, in input order.
func (s *Service) SimulateBatch(ctx context.Context, transactions []json.RawMessage) *domain.BatchResponse {
	start := time.Now()

	results := make([]domain.BatchTransactionResult, 0, len(transactions))
	for i, raw := range transactions {
		results = append(results, s.processTransactionForBatch(ctx, i, raw))
	}

	successCount := 0
	failedCount := 0
	for _, r := range results {
		if r.Status == domain.StatusSuccess {
			successCount++
		} else {
			failedCount++
		}
	}

	return &domain.BatchResponse{
		Status:    domain.StatusSuccess,
		Processed: len(results),
		Results:   results,
		Summary: domain.BatchSummary{
			SuccessCount:     successCount,
			FailedCount:      failedCount,
			ProcessingTimeMs: time.Since(start).Milliseconds(),
		},
	}
}

// Simulates one batch entry, capturing errors.
func (s *Service) processTransactionForBatch(ctx context.Context, idx int, raw json.RawMessage) domain.BatchTransactionResult {
	log := logger.C(ctx)

	tx, err := s.normalizeTransaction(raw)
	if err != nil {
		log.Warn().Err(err).Int("index", idx).Str("transaction_id", tx.ID).Msg("[service] batch: invalid transaction")
		return failed(tx.ID, err)
	}

	data, err := s.upstream.Simulate(ctx, tx)
	if err != nil {
		log.Warn().Err(err).Int("index", idx).Str("transaction_id", tx.ID).Msg("[service] batch: simulate failed")
		return failed(tx.ID, err)
	}

	return domain.BatchTransactionResult{
		TransactionID: tx.ID,
		Status:        domain.StatusSuccess,
		Data:          data,
	}
}

// normalizeTransaction decodes one batch entry into the canonical form.
// On failure the returned transaction still carries the best known id.
func (s *Service) normalizeTransaction(raw json.RawMessage) (domain.Transaction, error) {
	var in domain.TransactionInput
	if err := json.Unmarshal(raw, &in); err != nil {
		return domain.Transaction{ID: suppliedID(raw)}, domain.NewClientError("invalid transaction: %v", err)
	}

	id := strings.TrimSpace(in.ID)
	if id == "" {
		if len(in.Items) == 0 {
			id = unknownTransaction
		} else {
			id = s.newID()
		}
	}
	if len(in.Items) == 0 {
		return domain.Transaction{ID: id}, domain.NewClientError("Items array is required")
	}

	items, err := normalizeItems(in.Items)
	if err != nil {
		return domain.Transaction{ID: id}, err
	}

	ts := in.Timestamp
	if ts == "" {
		ts = s.timestamp()
	}
	return domain.Transaction{ID: id, Items: items, Timestamp: ts}, nil
}

// normalizeItems trims ids, checks them and defaults missing or zero
// quantities to 1.0
func normalizeItems(in []domain.ItemInput) ([]domain.Item, error) {
	items := make([]domain.Item, 0, len(in))
	for i, it := range in {
		it.ID = strings.TrimSpace(it.ID)
		if err := validation.Struct(it); err != nil {
			return nil, domain.NewClientError("items[%d]: %v", i, err)
		}

		item := domain.Item{ID: it.ID, Quantity: it.Quantity}
		if item.Quantity == 0 {
			item.Quantity = defaultQuantity
		}
		if name := strings.TrimSpace(it.Name); name != "" {
			item.Name = &name
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *Service) timestamp() string {
	return s.now().UTC().Format(isoMillis)
}

func failed(id string, err error) domain.BatchTransactionResult {
	if id == "" {
		id = unknownTransaction
	}
	return domain.BatchTransactionResult{
		TransactionID: id,
		Status:        domain.StatusError,
		Error:         errorMessage(err),
	}
}

func errorMessage(err error) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return defaultErrorMessage
}

// suppliedID pulls "id" out of an entry that failed to decode as a whole
func suppliedID(raw json.RawMessage) string {
	var probe struct {
		ID string `json:"id"`
	}
	if json.Unmarshal(raw, &probe) != nil {
		return unknownTransaction
	}
	if id := strings.TrimSpace(probe.ID); id != "" {
		return id
	}
	return unknownTransaction
}
