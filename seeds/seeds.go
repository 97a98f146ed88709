// Package seeds holds the fixed sample dataset served by the dummy-data
// routes, so the UI can be exercised without a trained model.
package seeds

import (
	_ "embed"
	"fmt"

	"github.com/actuallystonmai/basket-gateway/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed dataset.yaml
var datasetYAML []byte

type LineItem struct {
	ID       string  `json:"id" yaml:"id"`
	Quantity float64 `json:"quantity" yaml:"quantity"`
}

// Transaction is a historical cart, shaped the way the UI lists it
type Transaction struct {
	ID    string     `json:"id" yaml:"id"`
	Date  string     `json:"date" yaml:"date"`
	Items []LineItem `json:"items" yaml:"items"`
	Total float64    `json:"total" yaml:"total"`
}

type Dataset struct {
	Products     []domain.Product `yaml:"products"`
	Transactions []Transaction    `yaml:"transactions"`
	Rules        []domain.Rule    `yaml:"rules"`
	Dashboard    domain.Dashboard `yaml:"dashboard"`
}

// Load parses the embedded dataset. The sample dashboard's top
// combinations are the sample rules.
func Load() (*Dataset, error) {
	return parse(datasetYAML)
}

func parse(b []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(b, &ds); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	if len(ds.Products) == 0 {
		return nil, fmt.Errorf("parse dataset: no products")
	}

	ds.Dashboard.TopCombinations = make([]domain.TopCombination, 0, len(ds.Rules))
	for _, r := range ds.Rules {
		ds.Dashboard.TopCombinations = append(ds.Dashboard.TopCombinations, domain.TopCombination{
			Antecedents: r.Antecedents,
			Consequents: r.Consequents,
			Support:     r.Support,
			Confidence:  r.Confidence,
			Lift:        r.Lift,
		})
	}
	return &ds, nil
}

// Product looks up a sample product by exact id
func (d *Dataset) Product(id string) (domain.Product, bool) {
	for _, p := range d.Products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}
