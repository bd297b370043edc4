package session

import "fmt"

// Action is an entry of the main menu.
type Action int

const (
	ActionAdd Action = iota
	ActionEdit
	ActionRemove
	ActionList
	ActionExit
)

var actionLabels = map[Action]string{
	ActionAdd:    "Add Student",
	ActionEdit:   "Edit Student",
	ActionRemove: "Remove Student",
	ActionList:   "List Students",
	ActionExit:   "Exit",
}

// Actions returns the menu in display order.
func Actions() []Action {
	return []Action{ActionAdd, ActionEdit, ActionRemove, ActionList, ActionExit}
}

func (a Action) String() string {
	if label, ok := actionLabels[a]; ok {
		return label
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

func parseAction(label string) (Action, error) {
	for _, a := range Actions() {
		if a.String() == label {
			return a, nil
		}
	}
	return 0, fmt.Errorf("session: unknown action %q", label)
}

func actionLabelsInOrder() []string {
	actions := Actions()
	labels := make([]string, len(actions))
	for i, a := range actions {
		labels[i] = a.String()
	}
	return labels
}
