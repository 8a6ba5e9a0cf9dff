//go:build !windows

package terminal

import "io"

func clearScreen(w io.Writer) error {
	return writeClear(w)
}
