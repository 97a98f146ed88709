package model

import (
	"net/url"
	"strconv"
	"strings"
)

// Param is one query parameter
type Param struct {
	Name  string
	Value string
}

// Query is an ordered list of query parameters. Encode keeps insertion
// order, so identical inputs always encode to identical strings.
type Query []Param

func (q Query) Encode() string {
	if len(q) == 0 {
		return ""
	}
	var b strings.Builder
	for i, p := range q {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}

func (q Query) addInt(name string, v *int) Query {
	if v == nil {
		return q
	}
	return append(q, Param{Name: name, Value: strconv.Itoa(*v)})
}

func (q Query) addFloat(name string, v *float64) Query {
	if v == nil {
		return q
	}
	return append(q, Param{Name: name, Value: strconv.FormatFloat(*v, 'f', -1, 64)})
}

// ItemsetQuery filters frequent itemsets. Nil fields are not sent.
type ItemsetQuery struct {
	Limit      *int
	MinSupport *float64
}

func (q ItemsetQuery) Params() Query {
	var p Query
	p = p.addInt("limit", q.Limit)
	p = p.addFloat("min_support", q.MinSupport)
	return p
}

// RuleQuery filters association rules. Nil fields are not sent.
type RuleQuery struct {
	Limit         *int
	MinConfidence *float64
	MinLift       *float64
}

func (q RuleQuery) Params() Query {
	var p Query
	p = p.addInt("limit", q.Limit)
	p = p.addFloat("min_confidence", q.MinConfidence)
	p = p.addFloat("min_lift", q.MinLift)
	return p
}
