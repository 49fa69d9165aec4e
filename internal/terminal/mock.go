// Copyright 2025 Erst Users
// SPDX-License-Identifier: Apache-2.0

package terminal

// MockStyle wraps text in readable tags so tests can assert on styling
// without matching escape sequences.
type MockStyle struct {
	Calls []string
}

func NewMockStyle() *MockStyle {
	return &MockStyle{Calls: make([]string, 0)}
}

func (m *MockStyle) wrap(tag, text string) string {
	m.Calls = append(m.Calls, tag)
	return "[" + tag + "]" + text + "[/" + tag + "]"
}

func (m *MockStyle) Increase(text string) string { return m.wrap("increase", text) }
func (m *MockStyle) Decrease(text string) string { return m.wrap("decrease", text) }
func (m *MockStyle) Neutral(text string) string  { return m.wrap("neutral", text) }
func (m *MockStyle) Bold(text string) string     { return m.wrap("bold", text) }
func (m *MockStyle) Italic(text string) string   { return m.wrap("italic", text) }

// Count returns how many times tag was applied.
func (m *MockStyle) Count(tag string) int {
	n := 0
	for _, c := range m.Calls {
		if c == tag {
			n++
		}
	}
	return n
}
