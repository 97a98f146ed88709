package service

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/actuallystonmai/basket-gateway/internal/domain"
	"github.com/actuallystonmai/basket-gateway/internal/model"
)

// fakeUpstream records calls and answers from per-capability funcs
type fakeUpstream struct {
	mu        sync.Mutex
	calls     map[string]int
	simulated []domain.Transaction

	status    func() (json.RawMessage, error)
	train     func(model.TrainRequest) (json.RawMessage, error)
	recommend func(domain.RecommendationQuery) (json.RawMessage, error)
	simulate  func(domain.Transaction) (json.RawMessage, error)
	itemsets  func(model.ItemsetQuery) (json.RawMessage, error)
	rules     func(model.RuleQuery) (json.RawMessage, error)
}

func newFakeUpstream() *fakeUpstream {
	return &fakeUpstream{calls: map[string]int{}}
}

func (f *fakeUpstream) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
}

func (f *fakeUpstream) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeUpstream) Status(ctx context.Context) (json.RawMessage, error) {
	f.record("status")
	return f.status()
}

func (f *fakeUpstream) Train(ctx context.Context, req model.TrainRequest) (json.RawMessage, error) {
	f.record("train")
	return f.train(req)
}

func (f *fakeUpstream) Recommend(ctx context.Context, q domain.RecommendationQuery) (json.RawMessage, error) {
	f.record("recommend")
	return f.recommend(q)
}

func (f *fakeUpstream) Simulate(ctx context.Context, tx domain.Transaction) (json.RawMessage, error) {
	f.record("simulate")
	f.mu.Lock()
	f.simulated = append(f.simulated, tx)
	f.mu.Unlock()
	return f.simulate(tx)
}

func (f *fakeUpstream) FrequentItemsets(ctx context.Context, q model.ItemsetQuery) (json.RawMessage, error) {
	f.record("itemsets")
	return f.itemsets(q)
}

func (f *fakeUpstream) Rules(ctx context.Context, q model.RuleQuery) (json.RawMessage, error) {
	f.record("rules")
	return f.rules(q)
}

// memCache is an in-memory ResponseCache
type memCache struct {
	entries map[string]json.RawMessage
	cleared int
}

func newMemCache() *memCache {
	return &memCache{entries: map[string]json.RawMessage{}}
}

func (m *memCache) Get(ctx context.Context, kind, query string) (json.RawMessage, bool, error) {
	b, ok := m.entries[kind+"|"+query]
	return b, ok, nil
}

func (m *memCache) Set(ctx context.Context, kind, query string, body json.RawMessage) error {
	m.entries[kind+"|"+query] = body
	return nil
}

func (m *memCache) Clear(ctx context.Context) error {
	m.cleared++
	m.entries = map[string]json.RawMessage{}
	return nil
}

func raw(s string) json.RawMessage { return json.RawMessage(s) }
