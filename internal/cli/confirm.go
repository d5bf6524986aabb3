package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// terminalConfirmer asks a y/N question on the terminal. It implements the
// same contract the web page's confirm dialogs do.
type terminalConfirmer struct {
	in  io.Reader
	out io.Writer
}

func (c terminalConfirmer) Confirm(message string) bool {
	fmt.Fprintf(c.out, "%s [y/N]: ", message)
	line, err := bufio.NewReader(c.in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
