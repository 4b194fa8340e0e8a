package tetris

import "fmt"

// Intent is a discrete player request.
type Intent uint8

const (
	IntentMoveLeft Intent = iota
	IntentMoveRight
	IntentSoftDrop
	IntentRotateCW
	IntentRotateCCW
	IntentHardDrop
	IntentHold
	IntentQuit
)

// Intents lists the full vocabulary.
var Intents = [...]Intent{
	IntentMoveLeft,
	IntentMoveRight,
	IntentSoftDrop,
	IntentRotateCW,
	IntentRotateCCW,
	IntentHardDrop,
	IntentHold,
	IntentQuit,
}

var intentNames = [...]string{
	IntentMoveLeft:  "move-left",
	IntentMoveRight: "move-right",
	IntentSoftDrop:  "soft-drop",
	IntentRotateCW:  "rotate-cw",
	IntentRotateCCW: "rotate-ccw",
	IntentHardDrop:  "hard-drop",
	IntentHold:      "hold",
	IntentQuit:      "quit",
}

func (i Intent) String() string {
	if int(i) < len(intentNames) {
		return intentNames[i]
	}
	return fmt.Sprintf("Intent(%d)", uint8(i))
}

// ParseIntent returns the intent named by s, as printed by Intent.String.
func ParseIntent(s string) (Intent, error) {
	for i, name := range intentNames {
		if name == s {
			return Intent(i), nil
		}
	}
	return 0, fmt.Errorf("unknown intent %q", s)
}
