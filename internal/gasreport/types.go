// Copyright 2025 Erst Users
// SPDX-License-Identifier: Apache-2.0

package gasreport

// MethodReport holds the gas statistics of one contract method. Unavailable
// fields are NaN.
type MethodReport struct {
	Name   string
	Min    float64
	Avg    float64
	Median float64
	Max    float64
	Calls  float64
}

// ContractReport is the parsed gas table of a single contract.
type ContractReport struct {
	Name           string
	FilePath       string
	DeploymentCost float64
	DeploymentSize float64
	Methods        []MethodReport
}

// Method returns the method with the given name.
func (c *ContractReport) Method(name string) (MethodReport, bool) {
	for _, m := range c.Methods {
		if m.Name == name {
			return m, true
		}
	}
	return MethodReport{}, false
}

// putMethod appends m, or overwrites an existing method of the same name in place.
func (c *ContractReport) putMethod(m MethodReport) {
	for i := range c.Methods {
		if c.Methods[i].Name == m.Name {
			c.Methods[i] = m
			return
		}
	}
	c.Methods = append(c.Methods, m)
}

// GasReport is an ordered association from contract name to its report.
//
// Order is the order of first appearance in the source text. When two tables
// share a contract name the later one wins: its value replaces the earlier
// one, keeping the earlier position, and the name is recorded in Duplicates.
type GasReport struct {
	names      []string
	contracts  map[string]*ContractReport
	duplicates []string
}

func NewGasReport() *GasReport {
	return &GasReport{contracts: make(map[string]*ContractReport)}
}

// Put stores c under its name, applying the last-wins policy.
func (r *GasReport) Put(c *ContractReport) {
	if _, ok := r.contracts[c.Name]; ok {
		r.duplicates = append(r.duplicates, c.Name)
	} else {
		r.names = append(r.names, c.Name)
	}
	r.contracts[c.Name] = c
}

func (r *GasReport) Get(name string) (*ContractReport, bool) {
	if r == nil {
		return nil, false
	}
	c, ok := r.contracts[name]
	return c, ok
}

// Names returns contract names in order of first appearance.
func (r *GasReport) Names() []string {
	if r == nil {
		return nil
	}
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Contracts returns the contract reports in order of first appearance.
func (r *GasReport) Contracts() []*ContractReport {
	if r == nil {
		return nil
	}
	out := make([]*ContractReport, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, r.contracts[name])
	}
	return out
}

func (r *GasReport) Len() int {
	if r == nil {
		return 0
	}
	return len(r.names)
}

// Duplicates lists every contract name that overwrote an earlier table.
func (r *GasReport) Duplicates() []string {
	if r == nil {
		return nil
	}
	return append([]string(nil), r.duplicates...)
}
