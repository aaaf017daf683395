package todo

import "sort"

// Display returns the order tasks are shown in. With filterExpired off it is
// the store order. With it on, unexpired tasks come first, soonest due first,
// followed by expired tasks in store order. Tasks whose days remaining are
// invalid are neither and do not appear in the filtered view.
func Display(tasks []Task, filterExpired bool) []Task {
	if !filterExpired {
		out := make([]Task, len(tasks))
		copy(out, tasks)
		return out
	}

	var unexpired, expired []Task
	for _, t := range tasks {
		switch {
		case t.DaysRemaining.Unexpired():
			unexpired = append(unexpired, t)
		case t.DaysRemaining.Expired():
			expired = append(expired, t)
		}
	}
	sort.SliceStable(unexpired, func(i, j int) bool {
		return unexpired[i].DaysRemaining.N < unexpired[j].DaysRemaining.N
	})

	out := make([]Task, 0, len(unexpired)+len(expired))
	out = append(out, unexpired...)
	return append(out, expired...)
}
