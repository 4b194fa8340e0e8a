package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/plus3/tetrad/tetris"
)

// Keymap maps bubbletea key names to intents.
type Keymap map[string]tetris.Intent

// DefaultKeymap returns the home-row bindings with arrow key alternatives.
func DefaultKeymap() Keymap {
	return Keymap{
		"j":      tetris.IntentMoveLeft,
		"left":   tetris.IntentMoveLeft,
		"k":      tetris.IntentMoveRight,
		"right":  tetris.IntentMoveRight,
		"g":      tetris.IntentSoftDrop,
		"down":   tetris.IntentSoftDrop,
		"f":      tetris.IntentRotateCW,
		"up":     tetris.IntentRotateCW,
		"d":      tetris.IntentRotateCCW,
		"z":      tetris.IntentRotateCCW,
		" ":      tetris.IntentHardDrop,
		"c":      tetris.IntentHold,
		"q":      tetris.IntentQuit,
		"ctrl+c": tetris.IntentQuit,
	}
}

// Bind maps keys to intent, replacing earlier bindings of those keys.
func (k Keymap) Bind(intent tetris.Intent, keys ...string) {
	for _, key := range keys {
		k[key] = intent
	}
}

// Set applies a binding written as intent=key[,key...], for example
// "hold=x" or "move-left=a,left".
func (k Keymap) Set(binding string) error {
	name, keys, ok := strings.Cut(binding, "=")
	if !ok || keys == "" {
		return fmt.Errorf("binding %q: want intent=key[,key...]", binding)
	}
	intent, err := tetris.ParseIntent(strings.TrimSpace(name))
	if err != nil {
		return fmt.Errorf("binding %q: %w", binding, err)
	}
	for key := range strings.SplitSeq(keys, ",") {
		if key == "space" {
			key = " "
		}
		k.Bind(intent, key)
	}
	return nil
}

// Keys returns the keys bound to intent, shortest first and then in
// lexical order.
func (k Keymap) Keys(intent tetris.Intent) []string {
	var keys []string
	for key, i := range k {
		if i == intent {
			keys = append(keys, key)
		}
	}
	slices.SortFunc(keys, func(a, b string) int {
		if len(a) != len(b) {
			return len(a) - len(b)
		}
		return strings.Compare(a, b)
	})
	return keys
}
