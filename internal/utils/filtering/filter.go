package filtering

import "github.com/SscSPs/teminat_takip/internal/core/domain"

// FilterRows keeps rows whose bank is selected (or no bank is selected) and whose project is
// selected (or no project is selected). Order is preserved; with nothing selected the input
// slice is returned as is.
func FilterRows[T domain.Scoped](rows []T, state ViewState) []T {
	if !state.IsFiltered() {
		return rows
	}

	banks := toSet(state.BankIDs)
	projects := toSet(state.ProjectIDs)

	out := make([]T, 0, len(rows))
	for _, row := range rows {
		bankID, projectID := row.Scope()
		if len(banks) > 0 {
			if _, ok := banks[bankID]; !ok {
				continue
			}
		}
		if len(projects) > 0 {
			if _, ok := projects[projectID]; !ok {
				continue
			}
		}
		out = append(out, row)
	}
	return out
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
