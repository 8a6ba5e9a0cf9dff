package rdisplay

import "fmt"

// ScreenNotFoundError is returned when the selector does not name a screen
type ScreenNotFoundError struct {
	Index int
	// Available is the number of individual displays, excluding the
	// virtual screen at index 0
	Available int
}

func (e *ScreenNotFoundError) Error() string {
	return fmt.Sprintf("monitor %d not found, there are only %d monitor(s) available", e.Index, e.Available)
}

// Hint suggests a selector that would work, or "" when there is none
func (e *ScreenNotFoundError) Hint() string {
	if e.Available > 0 {
		return "try running with '-m 1' for the primary monitor"
	}
	return ""
}

// SelectScreen returns the screen at index
func SelectScreen(screens []Screen, index int) (Screen, error) {
	if index < 0 || index >= len(screens) {
		available := len(screens) - 1
		if available < 0 {
			available = 0
		}
		return Screen{}, &ScreenNotFoundError{Index: index, Available: available}
	}
	return screens[index], nil
}
