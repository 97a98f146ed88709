package service

import (
	"fmt"
	"math"
	"sort"

	"github.com/actuallystonmai/basket-gateway/internal/domain"
)

const topN = 5

var categories = []string{"Electronics", "Kitchen", "Home", "Food", "Clothing"}

// PlaceholderName labels an item the analytics service has no name for
func PlaceholderName(id string) string {
	return fmt.Sprintf("Unknown Product (%s)", id)
}

// Stats maps the upstream model status to dashboard stats
func Stats(status domain.ModelStatus) domain.DashboardStats {
	return domain.DashboardStats{
		TotalTransactions: status.TransactionsCount,
		TotalProducts:     status.UniqueItemsCount,
		AvgBasketSize:     status.AvgBasketSize,
		AvgBasketValue:    status.AvgBasketValue,
	}
}

// TopProducts keeps single-item itemsets, estimates each one's frequency
// as round(support * totalTransactions) and returns the five most frequent.
// Ties keep upstream order.
func TopProducts(itemsets []domain.Itemset, totalTransactions int) []domain.TopProduct {
	products := make([]domain.TopProduct, 0, len(itemsets))
	for _, is := range itemsets {
		if len(is.Items) != 1 {
			continue
		}
		id := is.Items[0]
		products = append(products, domain.TopProduct{
			ID:        id,
			Name:      itemsetName(is),
			Frequency: int(math.Round(is.Support * float64(totalTransactions))),
		})
	}

	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Frequency > products[j].Frequency
	})

	if len(products) > topN {
		products = products[:topN]
	}
	return products
}

// TopCombinations keeps upstream rule order, swaps ids for display names
// and caps the list at five
func TopCombinations(rules []domain.Rule) []domain.TopCombination {
	n := min(len(rules), topN)
	out := make([]domain.TopCombination, 0, n)
	for _, r := range rules[:n] {
		out = append(out, domain.TopCombination{
			Antecedents: displayNames(r.AntecedentNames, r.Antecedents),
			Consequents: displayNames(r.ConsequentNames, r.Consequents),
			Support:     r.Support,
			Confidence:  r.Confidence,
			Lift:        r.Lift,
		})
	}
	return out
}

// Catalog turns single-item itemsets into products. Price and category are
// derived from the id so they are stable across calls.
func Catalog(itemsets []domain.Itemset) []domain.Product {
	products := make([]domain.Product, 0, len(itemsets))
	for _, is := range itemsets {
		if len(is.Items) != 1 {
			continue
		}
		id := is.Items[0]
		sum := 0
		for _, r := range id {
			sum += int(r)
		}
		products = append(products, domain.Product{
			ID:       id,
			Name:     itemsetName(is),
			Price:    float64(10 + sum%90),
			Category: categories[sum%len(categories)],
		})
	}
	return products
}

func itemsetName(is domain.Itemset) string {
	if is.Name != "" {
		return is.Name
	}
	if len(is.ProductNames) == 1 && is.ProductNames[0] != "" {
		return is.ProductNames[0]
	}
	return PlaceholderName(is.Items[0])
}

func displayNames(names, ids []string) []string {
	if len(names) > 0 {
		return names
	}
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = PlaceholderName(id)
	}
	return out
}
