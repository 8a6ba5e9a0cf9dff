//go:build windows

package terminal

import (
	"io"
	"os"
	"os/exec"
)

// cls also works on consoles without virtual terminal processing
func clearScreen(w io.Writer) error {
	if f, ok := w.(*os.File); ok && f == os.Stdout {
		cmd := exec.Command("cmd", "/c", "cls")
		cmd.Stdout = os.Stdout
		return cmd.Run()
	}
	return writeClear(w)
}
