package memory

import "fmt"

// Command is a keyboard action on the board.
type Command int

const (
	CommandPrevious Command = iota
	CommandNext
	CommandActivate
)

// CommandForKey maps a KeyboardEvent.key value to a command.
func CommandForKey(key string) (Command, error) {
	switch key {
	case "ArrowLeft":
		return CommandPrevious, nil
	case "ArrowRight":
		return CommandNext, nil
	case " ", "Spacebar", "Enter":
		return CommandActivate, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKey, key)
}
