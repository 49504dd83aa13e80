package selection

// Action is what a bound key asks the controller to do.
type Action int

const (
	ActionNone Action = iota
	ActionSelect
	ActionCommit
)

// Intent is a key translated through the bindings.
type Intent struct {
	Action Action
	Index  int // Card index for ActionSelect
}

// KeyEvent is a key press delivered to the controller.
// FromTextInput is set when the key was typed into a text field.
type KeyEvent struct {
	Code          string
	FromTextInput bool
}

// bindings maps key codes to intents. Digit row and keypad digits share slots.
var bindings = map[string]Intent{
	"1":        {Action: ActionSelect, Index: 0},
	"2":        {Action: ActionSelect, Index: 1},
	"3":        {Action: ActionSelect, Index: 2},
	"digit1":   {Action: ActionSelect, Index: 0},
	"digit2":   {Action: ActionSelect, Index: 1},
	"digit3":   {Action: ActionSelect, Index: 2},
	"numpad_1": {Action: ActionSelect, Index: 0},
	"numpad_2": {Action: ActionSelect, Index: 1},
	"numpad_3": {Action: ActionSelect, Index: 2},

	"enter":        {Action: ActionCommit},
	"numpad_enter": {Action: ActionCommit},
	"space":        {Action: ActionCommit},
	" ":            {Action: ActionCommit},
}

// MapKey translates a key code into an intent. Unbound codes map to ActionNone.
func MapKey(code string) Intent {
	if intent, ok := bindings[code]; ok {
		return intent
	}
	return Intent{Action: ActionNone}
}

// HandleKey applies a key press and reports whether the key was consumed, in
// which case the host should suppress its own handling of it. Keys typed into
// a text field are never consumed and never change state.
func (c *Controller) HandleKey(ev KeyEvent) bool {
	if ev.FromTextInput {
		return false
	}
	intent := MapKey(ev.Code)
	switch intent.Action {
	case ActionSelect:
		c.SelectCard(intent.Index)
		return true
	case ActionCommit:
		c.Commit()
		return true
	default:
		return false
	}
}
