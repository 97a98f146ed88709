package domain

// ModelStatus is the analytics service's view of the trained model
type ModelStatus struct {
	ModelTrained      bool    `json:"model_trained"`
	TransactionsCount int     `json:"transactions_count"`
	RulesCount        int     `json:"rules_count"`
	LastTrainingTime  *string `json:"last_training_time"`
	UniqueItemsCount  int     `json:"unique_items_count"`
	AvgBasketSize     float64 `json:"avg_basket_size"`
	AvgBasketValue    float64 `json:"avg_basket_value"`
}

// Itemset is a set of item ids observed together, with its support
type Itemset struct {
	Items        []string `json:"itemset"`
	ProductNames []string `json:"product_names,omitempty"`
	Support      float64  `json:"support"`
	Name         string   `json:"name,omitempty"`
}

type ItemsetsResponse struct {
	Status           string    `json:"status"`
	FrequentItemsets []Itemset `json:"frequent_itemsets"`
}

// Rule is an association rule antecedents -> consequents
type Rule struct {
	Antecedents     []string `json:"antecedents" yaml:"antecedents"`
	Consequents     []string `json:"consequents" yaml:"consequents"`
	AntecedentNames []string `json:"antecedent_names,omitempty" yaml:"antecedent_names,omitempty"`
	ConsequentNames []string `json:"consequent_names,omitempty" yaml:"consequent_names,omitempty"`
	Support         float64  `json:"support" yaml:"support"`
	Confidence      float64  `json:"confidence" yaml:"confidence"`
	Lift            float64  `json:"lift" yaml:"lift"`
}

type RulesResponse struct {
	Status string `json:"status"`
	Rules  []Rule `json:"rules"`
}

type DashboardStats struct {
	TotalTransactions int     `json:"total_transactions" yaml:"total_transactions"`
	TotalProducts     int     `json:"total_products" yaml:"total_products"`
	AvgBasketSize     float64 `json:"avg_basket_size" yaml:"avg_basket_size"`
	AvgBasketValue    float64 `json:"avg_basket_value" yaml:"avg_basket_value"`
}

type TopProduct struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Frequency int    `json:"frequency" yaml:"frequency"`
}

type TopCombination struct {
	Antecedents []string `json:"antecedents" yaml:"antecedents"`
	Consequents []string `json:"consequents" yaml:"consequents"`
	Support     float64  `json:"support" yaml:"support"`
	Confidence  float64  `json:"confidence" yaml:"confidence"`
	Lift        float64  `json:"lift" yaml:"lift"`
}

type Dashboard struct {
	Stats           DashboardStats   `json:"stats" yaml:"stats"`
	TopProducts     []TopProduct     `json:"top_products" yaml:"top_products"`
	TopCombinations []TopCombination `json:"top_combinations" yaml:"top_combinations"`
}

// Product is a catalog entry for the simulation dropdown
type Product struct {
	ID       string  `json:"id" yaml:"id"`
	Name     string  `json:"name" yaml:"name"`
	Price    float64 `json:"price" yaml:"price"`
	Category string  `json:"category" yaml:"category"`
}
