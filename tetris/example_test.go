package tetris_test

import (
	"fmt"

	"github.com/plus3/tetrad/tetris"
)

func ExampleSession() {
	s, err := tetris.NewSession(tetris.DefaultConfig(),
		tetris.WithRandomizer(tetris.NewSequence(tetris.I, tetris.O)))
	if err != nil {
		panic(err)
	}
	fmt.Println(s.Active().Variant, s.State())

	s.HardDrop()
	fmt.Println(s.Score(), s.Active().Variant)
	// Output:
	// I falling
	// 44 O
}

func ExampleCommands() {
	s, _ := tetris.NewSession(tetris.DefaultConfig(),
		tetris.WithRandomizer(tetris.NewSequence(tetris.T)))

	cmds := tetris.NewCommands()
	cmds.Push(tetris.IntentMoveLeft, tetris.IntentRotateCW, tetris.IntentHold, tetris.IntentHold)
	fmt.Println(cmds.Flush(s))
	// Output: 3
}
