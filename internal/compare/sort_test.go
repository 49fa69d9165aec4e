// Copyright 2025 Erst Users
// SPDX-License-Identifier: Apache-2.0

package compare

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Rubilmax/foundry-gas-diff/internal/errors"
)

func TestSortOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    SortOptions
		wantErr bool
	}{
		{"empty", SortOptions{}, false},
		{"all criteria", SortOptions{Criteria: []string{"name", "min", "avg", "median", "max", "calls"}}, false},
		{"with orders", SortOptions{Criteria: []string{"avg", "name"}, Orders: []string{"asc", "DESC"}}, false},
		{"fewer orders", SortOptions{Criteria: []string{"avg", "name"}, Orders: []string{"asc"}}, false},
		{"unknown criterion", SortOptions{Criteria: []string{"gas"}}, true},
		{"unknown order", SortOptions{Criteria: []string{"avg"}, Orders: []string{"up"}}, true},
		{"too many orders", SortOptions{Criteria: []string{"avg"}, Orders: []string{"asc", "desc"}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, errors.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func diffMethod(name string, avgPrcnt, minPrcnt float64) DiffMethod {
	return DiffMethod{
		Name: name,
		Avg:  DiffCell{Prcnt: avgPrcnt},
		Min:  DiffCell{Prcnt: minPrcnt},
	}
}

func names(methods []DiffMethod) []string {
	out := make([]string, len(methods))
	for i, m := range methods {
		out[i] = m.Name
	}
	return out
}

func TestSortMethods(t *testing.T) {
	base := []DiffMethod{
		diffMethod("b", 5, 1),
		diffMethod("a", -20, 1),
		diffMethod("nan", math.NaN(), 1),
		diffMethod("c", 5, 3),
		diffMethod("inf", math.Inf(1), 0),
	}

	tests := []struct {
		name string
		opts SortOptions
		want []string
	}{
		{"default avg desc", SortOptions{}, []string{"inf", "a", "b", "c", "nan"}},
		{"avg asc keeps nan last", SortOptions{Criteria: []string{"avg"}, Orders: []string{"asc"}}, []string{"b", "c", "a", "inf", "nan"}},
		{"name defaults asc", SortOptions{Criteria: []string{"name"}}, []string{"a", "b", "c", "inf", "nan"}},
		{"name desc", SortOptions{Criteria: []string{"name"}, Orders: []string{"desc"}}, []string{"nan", "inf", "c", "b", "a"}},
		{"multi key", SortOptions{Criteria: []string{"avg", "min"}, Orders: []string{"asc"}}, []string{"c", "b", "a", "inf", "nan"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			methods := append([]DiffMethod(nil), base...)
			tt.opts.sortMethods(methods)
			assert.Equal(t, tt.want, names(methods))
		})
	}
}
