package documentstore

import (
	"fmt"
	"strings"
)

// Operator is the comparison applied by a Condition.
type Operator int

const (
	// OpEquals matches when the attribute equals the value exactly.
	OpEquals Operator = iota
	// OpContainsFold matches when the string attribute contains the value,
	// ignoring case. The value is a literal, not a pattern.
	OpContainsFold
)

func (o Operator) String() string {
	switch o {
	case OpEquals:
		return "eq"
	case OpContainsFold:
		return "contains_fold"
	default:
		return fmt.Sprintf("operator(%d)", int(o))
	}
}

// Condition restricts a single top-level attribute. Values are strings or bools.
type Condition struct {
	Field string
	Op    Operator
	Value any
}

func Eq(field string, value any) Condition {
	return Condition{Field: field, Op: OpEquals, Value: value}
}

func ContainsFold(field, substr string) Condition {
	return Condition{Field: field, Op: OpContainsFold, Value: substr}
}

// Filter is a conjunction of conditions. The zero Filter matches everything.
type Filter struct {
	Conditions []Condition
}

func Where(conds ...Condition) Filter {
	return Filter{Conditions: conds}
}

// And returns a copy of f with c appended.
func (f Filter) And(c Condition) Filter {
	conds := make([]Condition, 0, len(f.Conditions)+1)
	conds = append(conds, f.Conditions...)
	return Filter{Conditions: append(conds, c)}
}

// Match reports whether doc satisfies every condition of f.
func (f Filter) Match(doc Document) bool {
	for _, c := range f.Conditions {
		if !c.match(doc) {
			return false
		}
	}
	return true
}

func (c Condition) match(doc Document) bool {
	got, ok := doc[c.Field]
	if !ok {
		return false
	}
	switch c.Op {
	case OpEquals:
		return got == c.Value
	case OpContainsFold:
		s, ok := got.(string)
		want, _ := c.Value.(string)
		return ok && strings.Contains(strings.ToLower(s), strings.ToLower(want))
	default:
		return false
	}
}
