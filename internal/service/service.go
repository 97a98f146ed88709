package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/actuallystonmai/basket-gateway/internal/domain"
	"github.com/actuallystonmai/basket-gateway/internal/logger"
	"github.com/actuallystonmai/basket-gateway/internal/model"
	"github.com/google/uuid"
)

const (
	dashboardItemsetLimit = 5
	dashboardRuleLimit    = 5
	productItemsetLimit   = 50

	cacheKindItemsets = "itemsets"
	cacheKindRules    = "rules"
)

// Upstream is the analytics service. Every method makes one call and
// returns the response body unmodified.
type Upstream interface {
	Status(ctx context.Context) (json.RawMessage, error)
	Train(ctx context.Context, req model.TrainRequest) (json.RawMessage, error)
	Recommend(ctx context.Context, q domain.RecommendationQuery) (json.RawMessage, error)
	Simulate(ctx context.Context, tx domain.Transaction) (json.RawMessage, error)
	FrequentItemsets(ctx context.Context, q model.ItemsetQuery) (json.RawMessage, error)
	Rules(ctx context.Context, q model.RuleQuery) (json.RawMessage, error)
}

// ResponseCache holds raw itemset/rule bodies. A nil ResponseCache
// disables caching.
type ResponseCache interface {
	Get(ctx context.Context, kind, query string) (json.RawMessage, bool, error)
	Set(ctx context.Context, kind, query string, body json.RawMessage) error
	Clear(ctx context.Context) error
}

type Service struct {
	upstream Upstream
	cache    ResponseCache
	newID    func() string
	now      func() time.Time
}

func NewService(upstream Upstream, cache ResponseCache) *Service {
	return &Service{
		upstream: upstream,
		cache:    cache,
		newID:    uuid.NewString,
		now:      time.Now,
	}
}

func (s *Service) Status(ctx context.Context) (json.RawMessage, error) {
	return s.upstream.Status(ctx)
}

func (s *Service) Recommend(ctx context.Context, q domain.RecommendationQuery) (json.RawMessage, error) {
	if len(q.Items) == 0 {
		return nil, domain.NewClientError("Item IDs are required (as comma-separated values)")
	}
	return s.upstream.Recommend(ctx, q)
}

func (s *Service) FrequentItemsets(ctx context.Context, q model.ItemsetQuery) (json.RawMessage, error) {
	return s.cached(ctx, cacheKindItemsets, q.Params().Encode(), func() (json.RawMessage, error) {
		return s.upstream.FrequentItemsets(ctx, q)
	})
}

func (s *Service) Rules(ctx context.Context, q model.RuleQuery) (json.RawMessage, error) {
	return s.cached(ctx, cacheKindRules, q.Params().Encode(), func() (json.RawMessage, error) {
		return s.upstream.Rules(ctx, q)
	})
}

// Train retrains the upstream model and drops cached itemsets/rules
func (s *Service) Train(ctx context.Context, req model.TrainRequest) (json.RawMessage, error) {
	body, err := s.upstream.Train(ctx, req)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if cacheErr := s.cache.Clear(ctx); cacheErr != nil {
			logger.C(ctx).Warn().Err(cacheErr).Msg("[service] cache clear after train failed")
		}
	}
	return body, nil
}

// Dashboard requires a trained model; when the model is untrained no
// itemset or rule call is made.
func (s *Service) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	status, err := s.trainedStatus(ctx, "dashboard")
	if err != nil {
		return nil, err
	}

	itemsets, err := s.itemsets(ctx, dashboardItemsetLimit)
	if err != nil {
		return nil, err
	}

	limit := dashboardRuleLimit
	raw, err := s.Rules(ctx, model.RuleQuery{Limit: &limit})
	if err != nil {
		return nil, err
	}
	var rules domain.RulesResponse
	if err := json.Unmarshal(raw, &rules); err != nil {
		return nil, fmt.Errorf("decode rules: %w", err)
	}

	return &domain.Dashboard{
		Stats:           Stats(*status),
		TopProducts:     TopProducts(itemsets, status.TransactionsCount),
		TopCombinations: TopCombinations(rules.Rules),
	}, nil
}

// Products lists single-item frequent itemsets as a product catalog
func (s *Service) Products(ctx context.Context) ([]domain.Product, error) {
	if _, err := s.trainedStatus(ctx, "product"); err != nil {
		return nil, err
	}
	itemsets, err := s.itemsets(ctx, productItemsetLimit)
	if err != nil {
		return nil, err
	}
	return Catalog(itemsets), nil
}

func (s *Service) trainedStatus(ctx context.Context, resource string) (*domain.ModelStatus, error) {
	raw, err := s.upstream.Status(ctx)
	if err != nil {
		return nil, err
	}
	var status domain.ModelStatus
	if err := json.Unmarshal(raw, &status); err != nil {
		return nil, fmt.Errorf("decode status: %w", err)
	}
	if !status.ModelTrained {
		return nil, domain.NewClientError(
			"Model not trained. Please train the model first before accessing %s data.", resource)
	}
	return &status, nil
}

func (s *Service) itemsets(ctx context.Context, limit int) ([]domain.Itemset, error) {
	raw, err := s.FrequentItemsets(ctx, model.ItemsetQuery{Limit: &limit})
	if err != nil {
		return nil, err
	}
	var resp domain.ItemsetsResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decode frequent itemsets: %w", err)
	}
	return resp.FrequentItemsets, nil
}

// cached is a read-through around fetch. Cache failures are logged and
// never fail the request; only successful bodies are stored.
func (s *Service) cached(ctx context.Context, kind, query string, fetch func() (json.RawMessage, error)) (json.RawMessage, error) {
	if s.cache == nil {
		return fetch()
	}

	log := logger.C(ctx)
	body, found, err := s.cache.Get(ctx, kind, query)
	if err != nil {
		log.Warn().Err(err).Str("kind", kind).Msg("[service] cache get failed")
	}
	if found {
		return body, nil
	}

	body, err = fetch()
	if err != nil {
		return nil, err
	}
	if cacheErr := s.cache.Set(ctx, kind, query, body); cacheErr != nil {
		log.Warn().Err(cacheErr).Str("kind", kind).Msg("[service] cache set failed")
	}
	return body, nil
}
