package client

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// TerminalConfirmer задает вопрос в терминале и ждет ответа y/N.
// Вне интерактивного терминала без assumeYes все вопросы отклоняются.
type TerminalConfirmer struct {
	in        io.Reader
	out       io.Writer
	assumeYes bool
	isTTY     func() bool
}

func NewTerminalConfirmer(assumeYes bool) *TerminalConfirmer {
	return &TerminalConfirmer{
		in:        os.Stdin,
		out:       os.Stderr,
		assumeYes: assumeYes,
		isTTY:     func() bool { return term.IsTerminal(int(os.Stdin.Fd())) },
	}
}

func (c *TerminalConfirmer) Confirm(prompt string) bool {
	if c.assumeYes {
		return true
	}
	if !c.isTTY() {
		return false
	}

	fmt.Fprintf(c.out, "%s [y/N]: ", prompt)
	answer, err := bufio.NewReader(c.in).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
