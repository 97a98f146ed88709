package handler

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/actuallystonmai/basket-gateway/internal/domain"
)

// Optional query parameters are nil when absent or blank; malformed
// values are client errors.

func queryInt(q url.Values, name string) (*int, error) {
	s := strings.TrimSpace(q.Get(name))
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return nil, domain.NewClientError("Invalid %s parameter", name)
	}
	return &n, nil
}

func queryFloat(q url.Values, name string) (*float64, error) {
	s := strings.TrimSpace(q.Get(name))
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return nil, domain.NewClientError("Invalid %s parameter", name)
	}
	return &f, nil
}

// queryFraction is queryFloat restricted to (0,1]
func queryFraction(q url.Values, name string) (*float64, error) {
	f, err := queryFloat(q, name)
	if err != nil || f == nil {
		return f, err
	}
	if *f <= 0 || *f > 1 {
		return nil, domain.NewClientError("Invalid %s parameter: must be in (0,1]", name)
	}
	return f, nil
}

// splitItems turns "a, b,,c,a" into [a b c], keeping first-seen order
func splitItems(s string) []string {
	parts := strings.Split(s, ",")
	items := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		items = append(items, p)
	}
	return items
}
