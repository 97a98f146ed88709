package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/actuallystonmai/basket-gateway/internal/domain"
	"github.com/actuallystonmai/basket-gateway/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const trainedStatus = `{"model_trained":true,"transactions_count":100,"rules_count":3,"unique_items_count":4,"avg_basket_size":2.5,"avg_basket_value":20}`

func trainedUpstream() *fakeUpstream {
	up := newFakeUpstream()
	up.status = func() (json.RawMessage, error) { return raw(trainedStatus), nil }
	up.itemsets = func(q model.ItemsetQuery) (json.RawMessage, error) {
		return raw(`{"status":"success","frequent_itemsets":[
			{"itemset":["p1"],"support":0.3,"product_names":["Bread"]},
			{"itemset":["p1","p2"],"support":0.2},
			{"itemset":["p2"],"support":0.5}
		]}`), nil
	}
	up.rules = func(q model.RuleQuery) (json.RawMessage, error) {
		return raw(`{"status":"success","rules":[
			{"antecedents":["p1"],"consequents":["p2"],"support":0.2,"confidence":0.66,"lift":1.3}
		]}`), nil
	}
	return up
}

func TestDashboardUntrainedMakesNoDataCalls(t *testing.T) {
	up := newFakeUpstream()
	up.status = func() (json.RawMessage, error) {
		return raw(`{"model_trained":false,"transactions_count":0}`), nil
	}
	s := NewService(up, nil)

	_, err := s.Dashboard(context.Background())

	require.Error(t, err)
	assert.True(t, domain.IsClientError(err))
	assert.Equal(t, "Model not trained. Please train the model first before accessing dashboard data.", err.Error())
	assert.Equal(t, 1, up.count("status"))
	assert.Equal(t, 0, up.count("itemsets"))
	assert.Equal(t, 0, up.count("rules"))
}

func TestProductsUntrained(t *testing.T) {
	up := newFakeUpstream()
	up.status = func() (json.RawMessage, error) { return raw(`{"model_trained":false}`), nil }
	s := NewService(up, nil)

	_, err := s.Products(context.Background())

	assert.True(t, domain.IsClientError(err))
	assert.Contains(t, err.Error(), "product data")
	assert.Equal(t, 0, up.count("itemsets"))
}

func TestDashboardAggregates(t *testing.T) {
	up := trainedUpstream()
	var gotItemsetLimit, gotRuleLimit int
	itemsets := up.itemsets
	up.itemsets = func(q model.ItemsetQuery) (json.RawMessage, error) {
		gotItemsetLimit = *q.Limit
		return itemsets(q)
	}
	rules := up.rules
	up.rules = func(q model.RuleQuery) (json.RawMessage, error) {
		gotRuleLimit = *q.Limit
		return rules(q)
	}
	s := NewService(up, nil)

	d, err := s.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, gotItemsetLimit)
	assert.Equal(t, 5, gotRuleLimit)
	assert.Equal(t, 100, d.Stats.TotalTransactions)
	assert.Equal(t, 4, d.Stats.TotalProducts)
	assert.Equal(t, []domain.TopProduct{
		{ID: "p2", Name: "Unknown Product (p2)", Frequency: 50},
		{ID: "p1", Name: "Bread", Frequency: 30},
	}, d.TopProducts)
	require.Len(t, d.TopCombinations, 1)
	assert.Equal(t, []string{"Unknown Product (p1)"}, d.TopCombinations[0].Antecedents)
}

func TestDashboardPropagatesUpstreamFailure(t *testing.T) {
	up := trainedUpstream()
	up.rules = func(q model.RuleQuery) (json.RawMessage, error) {
		return nil, &model.UpstreamError{Status: 503, Detail: "busy"}
	}
	s := NewService(up, nil)

	_, err := s.Dashboard(context.Background())

	ue, ok := model.AsUpstreamError(err)
	require.True(t, ok)
	assert.Equal(t, 503, ue.Status)
}

func TestProductsCatalog(t *testing.T) {
	up := trainedUpstream()
	var gotLimit int
	itemsets := up.itemsets
	up.itemsets = func(q model.ItemsetQuery) (json.RawMessage, error) {
		gotLimit = *q.Limit
		return itemsets(q)
	}
	s := NewService(up, nil)

	products, err := s.Products(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 50, gotLimit)
	require.Len(t, products, 2)
	assert.Equal(t, "p1", products[0].ID)
	assert.Equal(t, "Bread", products[0].Name)
}

func TestRecommendRequiresItems(t *testing.T) {
	up := newFakeUpstream()
	s := NewService(up, nil)

	_, err := s.Recommend(context.Background(), domain.RecommendationQuery{})

	assert.True(t, domain.IsClientError(err))
	assert.Equal(t, 0, up.count("recommend"))
}

func TestRulesPassThroughUnchanged(t *testing.T) {
	body := `{"status":"success","rules":[{"antecedents":["a"],"consequents":["b"],"support":0.1,"confidence":0.5,"lift":1.2,"extra":"kept"}]}`
	up := newFakeUpstream()
	up.rules = func(q model.RuleQuery) (json.RawMessage, error) { return raw(body), nil }
	s := NewService(up, nil)

	first, err := s.Rules(context.Background(), model.RuleQuery{})
	require.NoError(t, err)
	second, err := s.Rules(context.Background(), model.RuleQuery{})
	require.NoError(t, err)

	assert.Equal(t, body, string(first))
	assert.Equal(t, first, second)
	assert.Equal(t, 2, up.count("rules"))
}

func TestCacheReadThroughAndClearOnTrain(t *testing.T) {
	up := trainedUpstream()
	up.train = func(req model.TrainRequest) (json.RawMessage, error) {
		return raw(`{"status":"success"}`), nil
	}
	cache := newMemCache()
	s := NewService(up, cache)
	ctx := context.Background()

	limit := 10
	q := model.RuleQuery{Limit: &limit}
	first, err := s.Rules(ctx, q)
	require.NoError(t, err)
	second, err := s.Rules(ctx, q)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, up.count("rules"))

	_, err = s.Train(ctx, model.TrainRequest{MinSupport: 0.01, MinThreshold: 0.5, UseSampleData: true})
	require.NoError(t, err)
	assert.Equal(t, 1, cache.cleared)

	_, err = s.Rules(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, 2, up.count("rules"))
}

func TestCacheSkipsFailures(t *testing.T) {
	up := newFakeUpstream()
	up.itemsets = func(q model.ItemsetQuery) (json.RawMessage, error) {
		return nil, &model.TransportError{Op: "GET /frequent-itemsets"}
	}
	cache := newMemCache()
	s := NewService(up, cache)

	_, err := s.FrequentItemsets(context.Background(), model.ItemsetQuery{})
	require.Error(t, err)
	assert.Empty(t, cache.entries)
}

func TestTrainFailureKeepsCache(t *testing.T) {
	up := newFakeUpstream()
	up.train = func(req model.TrainRequest) (json.RawMessage, error) {
		return nil, &model.UpstreamError{Status: 500}
	}
	cache := newMemCache()
	s := NewService(up, cache)

	_, err := s.Train(context.Background(), model.TrainRequest{})
	require.Error(t, err)
	assert.Equal(t, 0, cache.cleared)
}
