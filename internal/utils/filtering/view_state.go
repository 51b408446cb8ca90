// Package filtering holds the sidebar selection state and the grid row filter built on it.
package filtering

import (
	"slices"
	"strings"
)

// ViewState is the serializable sidebar state: which projects and banks are checked, which
// tree nodes are expanded and which display currency is chosen. An empty id list means no
// filter on that dimension.
type ViewState struct {
	ProjectIDs       []string `json:"projectIds" form:"projectId"`
	BankIDs          []string `json:"bankIds" form:"bankId"`
	ProjectsExpanded bool     `json:"projectsExpanded" form:"projectsExpanded"`
	BanksExpanded    bool     `json:"banksExpanded" form:"banksExpanded"`
	Currency         string   `json:"currency" form:"currency"`
}

// NewViewState returns the initial sidebar state: both sections expanded, nothing selected.
func NewViewState() ViewState {
	return ViewState{ProjectsExpanded: true, BanksExpanded: true}
}

// ToggleProject returns a copy with id added (checked) or removed (unchecked).
func (v ViewState) ToggleProject(id string, checked bool) ViewState {
	v.ProjectIDs = toggle(v.ProjectIDs, id, checked)
	return v
}

// ToggleBank returns a copy with id added (checked) or removed (unchecked).
func (v ViewState) ToggleBank(id string, checked bool) ViewState {
	v.BankIDs = toggle(v.BankIDs, id, checked)
	return v
}

// WithCurrency returns a copy with the display currency set. An empty code shows native amounts.
func (v ViewState) WithCurrency(code string) ViewState {
	v.Currency = strings.ToUpper(strings.TrimSpace(code))
	return v
}

// Normalize drops blank and duplicate ids while keeping first-seen order.
func (v ViewState) Normalize() ViewState {
	v.ProjectIDs = dedupe(v.ProjectIDs)
	v.BankIDs = dedupe(v.BankIDs)
	v.Currency = strings.ToUpper(strings.TrimSpace(v.Currency))
	return v
}

// IsFiltered reports whether any project or bank is selected.
func (v ViewState) IsFiltered() bool {
	return len(v.ProjectIDs) > 0 || len(v.BankIDs) > 0
}

// HasProject reports whether id is checked.
func (v ViewState) HasProject(id string) bool {
	return slices.Contains(v.ProjectIDs, id)
}

// HasBank reports whether id is checked.
func (v ViewState) HasBank(id string) bool {
	return slices.Contains(v.BankIDs, id)
}

// toggle never mutates ids; the result shares no backing array with it.
func toggle(ids []string, id string, checked bool) []string {
	if checked && slices.Contains(ids, id) {
		return slices.Clone(ids)
	}
	out := make([]string, 0, len(ids)+1)
	for _, existing := range ids {
		if existing != id {
			out = append(out, existing)
		}
	}
	if checked && id != "" {
		out = append(out, id)
	}
	return out
}

func dedupe(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
