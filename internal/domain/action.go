package domain

type ActionKind string

const (
	ActionAdd    ActionKind = "add"
	ActionToggle ActionKind = "toggle"
	ActionDelete ActionKind = "delete"
	ActionEdit   ActionKind = "edit"
)

// Action is a named request to change the list. ID targets an existing
// item for toggle/delete/edit and carries the freshly minted id for add.
type Action struct {
	Kind ActionKind
	ID   string
	Text string
}

func Add(id, text string) Action  { return Action{Kind: ActionAdd, ID: id, Text: text} }
func Toggle(id string) Action     { return Action{Kind: ActionToggle, ID: id} }
func Delete(id string) Action     { return Action{Kind: ActionDelete, ID: id} }
func Edit(id, text string) Action { return Action{Kind: ActionEdit, ID: id, Text: text} }
