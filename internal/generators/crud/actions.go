package crud

// Action is one CRUD-style operation a generated controller supports.
type Action string

const (
	ActionIndex  Action = "index"
	ActionShow   Action = "show"
	ActionNew    Action = "new"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// PlanActions computes the action set from the write-actions flag. The two
// canonical values are read-only [index show] and the full
// [index show new edit delete]; order is significant and fixed.
func PlanActions(writeActions bool) []Action {
	if writeActions {
		return []Action{ActionIndex, ActionShow, ActionNew, ActionEdit, ActionDelete}
	}
	return []Action{ActionIndex, ActionShow}
}

// RecordActions filters the action set to the actions exposed as per-row
// links in the index view (show and edit), preserving action-set order.
func RecordActions(actions []Action) []Action {
	var record []Action
	for _, a := range actions {
		if a == ActionShow || a == ActionEdit {
			record = append(record, a)
		}
	}
	return record
}

func hasAction(actions []Action, want Action) bool {
	for _, a := range actions {
		if a == want {
			return true
		}
	}
	return false
}
