package league

// OwnerButton is one toggle in the owner-filter widget.
type OwnerButton struct {
	Owner  string `json:"owner"`
	Color  string `json:"color"`
	Active bool   `json:"active"`
}

// OwnerFilterView is a pure render model: buttons plus the two display
// toggles. It carries no behavior; the orchestrator owns the listeners and
// a render only ever replaces the container's children.
type OwnerFilterView struct {
	Buttons         []OwnerButton `json:"buttons"`
	ShowUnowned     bool          `json:"show_unowned"`
	ShowWeekHistory bool          `json:"show_week_history"`
	HasWeekHistory  bool          `json:"has_week_history"`
}

// BuildOwnerFilterView paints the widget from the current selection. The
// week-history toggle is only offered when hidden history columns exist.
func BuildOwnerFilterView(owners []string, colors map[string]string, activeOwners []string, showUnowned, showWeekHistory, hasWeekHistory bool) OwnerFilterView {
	activeSet := make(map[string]struct{}, len(activeOwners))
	for _, owner := range activeOwners {
		activeSet[owner] = struct{}{}
	}
	view := OwnerFilterView{
		ShowUnowned:     showUnowned,
		ShowWeekHistory: showWeekHistory && hasWeekHistory,
		HasWeekHistory:  hasWeekHistory,
	}
	for _, owner := range owners {
		_, active := activeSet[owner]
		view.Buttons = append(view.Buttons, OwnerButton{
			Owner:  owner,
			Color:  colors[owner],
			Active: active,
		})
	}
	return view
}
