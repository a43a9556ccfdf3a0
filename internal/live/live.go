// Package live echoes keyboard input through a text transform, one rune
// at a time, until Esc or Ctrl-C.
package live

import (
	"fmt"
	"io"

	"github.com/eiannone/keyboard"
)

type Transform func(string) string

func Run(out io.Writer, transform Transform) error {
	if err := keyboard.Open(); err != nil {
		return fmt.Errorf("live: %w", err)
	}
	defer keyboard.Close()

	for {
		ch, key, err := keyboard.GetKey()
		if err != nil {
			return fmt.Errorf("live: %w", err)
		}
		switch key {
		case keyboard.KeyEsc, keyboard.KeyCtrlC, keyboard.KeyCtrlD:
			return nil
		case keyboard.KeyEnter:
			fmt.Fprintln(out)
		case keyboard.KeySpace:
			fmt.Fprint(out, " ")
		default:
			if ch != 0 {
				fmt.Fprint(out, transform(string(ch)))
			}
		}
	}
}
