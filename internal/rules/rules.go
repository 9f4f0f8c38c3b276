// Package rules implements the highlight rule model: numeric conditions on
// metric percentage-differences, grouped by priority. Rules are validated at
// construction so evaluation can never fail.
package rules

import (
	"fmt"
)

// Operator is the comparison a rule applies to a metric value.
type Operator string

const (
	OpGreaterThan Operator = ">"
	OpLessThan    Operator = "<"
	OpEquals      Operator = "="
	OpBetween     Operator = "Between"
)

// validOperators is the closed operator set; anything else is rejected at
// construction.
var validOperators = map[Operator]bool{
	OpGreaterThan: true,
	OpLessThan:    true,
	OpEquals:      true,
	OpBetween:     true,
}

// Priority is a highlight priority level.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
	// PriorityNone means no rule matched.
	PriorityNone Priority = ""
)

// Levels returns the priority levels from most to least urgent.
func Levels() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// Rule is one numeric condition on a metric's percentage difference.
// For Between, Value is the lower bound and High the upper bound.
type Rule struct {
	Metric   string   `yaml:"metric"`
	Operator Operator `yaml:"operator"`
	Value    float64  `yaml:"value"`
	High     float64  `yaml:"high,omitempty"`
}

// New constructs a validated rule.
func New(metric string, op Operator, value, high float64) (Rule, error) {
	r := Rule{Metric: metric, Operator: op, Value: value, High: high}
	if err := r.Validate(); err != nil {
		return Rule{}, err
	}
	return r, nil
}

// Validate checks the rule's shape. Called at construction and again when
// rules arrive from a YAML file.
func (r Rule) Validate() error {
	if r.Metric == "" {
		return fmt.Errorf("rule has no metric")
	}
	if !validOperators[r.Operator] {
		return fmt.Errorf("rule for %s: unknown operator %q", r.Metric, r.Operator)
	}
	if r.Operator == OpBetween && r.High <= r.Value {
		return fmt.Errorf("rule for %s: Between needs high (%v) greater than low (%v)", r.Metric, r.High, r.Value)
	}
	return nil
}

// Matches reports whether the value satisfies the rule.
func (r Rule) Matches(v float64) bool {
	switch r.Operator {
	case OpGreaterThan:
		return v > r.Value
	case OpLessThan:
		return v < r.Value
	case OpEquals:
		return v == r.Value
	case OpBetween:
		return v >= r.Value && v <= r.High
	default:
		return false
	}
}

// Set holds the active rules per priority level.
type Set struct {
	High   []Rule `yaml:"high"`
	Medium []Rule `yaml:"medium"`
	Low    []Rule `yaml:"low"`
}

// Validate checks every rule in the set.
func (s Set) Validate() error {
	for _, group := range []struct {
		priority Priority
		rules    []Rule
	}{
		{PriorityHigh, s.High},
		{PriorityMedium, s.Medium},
		{PriorityLow, s.Low},
	} {
		for _, r := range group.rules {
			if err := r.Validate(); err != nil {
				return fmt.Errorf("%s priority: %w", group.priority, err)
			}
		}
	}
	return nil
}

// ForPriority returns the rules at one level.
func (s Set) ForPriority(p Priority) []Rule {
	switch p {
	case PriorityHigh:
		return s.High
	case PriorityMedium:
		return s.Medium
	case PriorityLow:
		return s.Low
	default:
		return nil
	}
}

// Empty reports whether the set holds no rules at all.
func (s Set) Empty() bool {
	return len(s.High) == 0 && len(s.Medium) == 0 && len(s.Low) == 0
}

// Resolve evaluates the set against a row of metric diff values (keyed by
// metric name; missing keys mean the metric had no computable diff) and
// returns the most urgent priority with at least one satisfied rule.
func (s Set) Resolve(diffs map[string]float64) Priority {
	for _, p := range Levels() {
		for _, r := range s.ForPriority(p) {
			v, ok := diffs[r.Metric]
			if !ok {
				continue
			}
			if r.Matches(v) {
				return p
			}
		}
	}
	return PriorityNone
}
