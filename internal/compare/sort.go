// Copyright 2025 Erst Users
// SPDX-License-Identifier: Apache-2.0

package compare

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/go-analyze/bulk"

	"github.com/Rubilmax/foundry-gas-diff/internal/errors"
)

// Sort criteria accepted by SortOptions.
const (
	CriterionName   = "name"
	CriterionMin    = "min"
	CriterionAvg    = "avg"
	CriterionMedian = "median"
	CriterionMax    = "max"
	CriterionCalls  = "calls"
)

// Sort orders accepted by SortOptions.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

var (
	validCriteria = bulk.SliceToSet([]string{
		CriterionName, CriterionMin, CriterionAvg, CriterionMedian, CriterionMax, CriterionCalls,
	})
	validOrders = bulk.SliceToSet([]string{OrderAsc, OrderDesc})
)

// SortOptions controls the order of methods within a contract. Orders pair
// with Criteria by position; a criterion without an order sorts "asc" for
// name and "desc" for the numeric criteria. With no criteria, methods are
// ordered by |avg| percentage change, largest first.
type SortOptions struct {
	Criteria []string
	Orders   []string
}

// Validate rejects unknown criteria or orders, and more orders than criteria.
func (o SortOptions) Validate() error {
	for _, c := range o.Criteria {
		if _, ok := validCriteria[normalize(c)]; !ok {
			return errors.WrapValidationError(fmt.Sprintf("invalid sort criterion %q", c))
		}
	}
	for _, ord := range o.Orders {
		if _, ok := validOrders[normalize(ord)]; !ok {
			return errors.WrapValidationError(fmt.Sprintf("invalid sort order %q", ord))
		}
	}
	if len(o.Orders) > len(o.Criteria) {
		return errors.WrapValidationError(fmt.Sprintf(
			"%d sort orders given for %d sort criteria", len(o.Orders), len(o.Criteria)))
	}
	return nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

type sortKey struct {
	criterion string
	desc      bool
}

func (o SortOptions) keys() []sortKey {
	if len(o.Criteria) == 0 {
		return []sortKey{{criterion: CriterionAvg, desc: true}}
	}
	keys := make([]sortKey, len(o.Criteria))
	for i, c := range o.Criteria {
		k := sortKey{criterion: normalize(c), desc: defaultDesc(normalize(c))}
		if i < len(o.Orders) {
			k.desc = normalize(o.Orders[i]) == OrderDesc
		}
		keys[i] = k
	}
	return keys
}

func defaultDesc(criterion string) bool {
	return criterion != CriterionName
}

func (o SortOptions) sortMethods(methods []DiffMethod) {
	keys := o.keys()
	sort.SliceStable(methods, func(i, j int) bool {
		for _, k := range keys {
			if c := compareBy(k, methods[i], methods[j]); c != 0 {
				return c < 0
			}
		}
		return false
	})
}

// compareBy returns a negative value when a sorts before b under k. NaN
// percentages sort last whatever the order.
func compareBy(k sortKey, a, b DiffMethod) int {
	if k.criterion == CriterionName {
		c := strings.Compare(a.Name, b.Name)
		if k.desc {
			return -c
		}
		return c
	}

	x, y := math.Abs(a.cell(k.criterion).Prcnt), math.Abs(b.cell(k.criterion).Prcnt)
	switch xNaN, yNaN := math.IsNaN(x), math.IsNaN(y); {
	case xNaN && yNaN:
		return 0
	case xNaN:
		return 1
	case yNaN:
		return -1
	}

	c := 0
	switch {
	case x < y:
		c = -1
	case x > y:
		c = 1
	}
	if k.desc {
		return -c
	}
	return c
}

func (m DiffMethod) cell(criterion string) DiffCell {
	switch criterion {
	case CriterionMin:
		return m.Min
	case CriterionMedian:
		return m.Median
	case CriterionMax:
		return m.Max
	case CriterionCalls:
		return m.Calls
	default:
		return m.Avg
	}
}
