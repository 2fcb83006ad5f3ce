package input

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"
)

var stdinReader *bufio.Reader

// GetInput reads a line of input from stdin. End of input reads as "quit".
func GetInput() string {
	if stdinReader == nil {
		stdinReader = bufio.NewReader(os.Stdin)
	}
	return readLine(stdinReader)
}

func readLine(r *bufio.Reader) string {
	line, err := r.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			slog.Error("cannot read stdin", "error", err)
		}
		if strings.TrimSpace(line) == "" {
			return "quit"
		}
	}
	return strings.TrimRight(line, "\r\n")
}

// readByte reads a single byte from stdin in raw mode
func readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	return buf[0], err
}

// tryReadArrowKey attempts to read an arrow key escape sequence.
// Returns the arrow direction string if successful, empty string otherwise.
func tryReadArrowKey(firstByte byte) string {
	if firstByte != 0x1b {
		return ""
	}

	b2, err := readByte()
	if err != nil {
		return ""
	}

	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 == '[' || b2 == 'O' {
		b3, err := readByte()
		if err != nil {
			return ""
		}

		switch b3 {
		case 'A':
			return "arrow_up"
		case 'B':
			return "arrow_down"
		case 'C':
			return "arrow_right"
		case 'D':
			return "arrow_left"
		}
		return ""
	}

	// A lone escape
	return "escape"
}

// GetInputWithArrows reads input with support for arrow keys, used by menus.
// Arrow keys return immediately without needing Enter; a bare Enter returns "enter".
// Falls back to line input when stdin is not a terminal.
func GetInputWithArrows() string {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		line := GetInput()
		if line == "" {
			return "enter"
		}
		return line
	}

	// Reset the buffered reader to avoid conflicts with raw mode
	stdinReader = nil

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		slog.Error("cannot set terminal to raw mode", "error", err)
		return GetInput()
	}
	defer term.Restore(fd, oldState)

	b1, err := readByte()
	if err != nil {
		return "quit"
	}

	if key := tryReadArrowKey(b1); key != "" {
		fmt.Print("\r\n")
		return key
	}

	// Ctrl+C / Ctrl+D
	if b1 == 3 || b1 == 4 {
		fmt.Print("\r\n")
		return "quit"
	}

	if b1 == '\n' || b1 == '\r' {
		fmt.Print("\r\n")
		return "enter"
	}

	var input []byte
	if b1 >= 32 && b1 < 127 {
		input = append(input, b1)
		fmt.Print(string(b1))
	}

	for {
		b, err := readByte()
		if err != nil {
			break
		}

		// Arrow keys pressed during text entry are discarded
		if b == 0x1b {
			tryReadArrowKey(b)
			continue
		}

		if b == 127 || b == 8 {
			if len(input) > 0 {
				input = input[:len(input)-1]
				fmt.Print("\b \b")
			}
			continue
		}

		if b == '\n' || b == '\r' {
			fmt.Print("\r\n")
			break
		}

		if b == 3 {
			fmt.Print("\r\n")
			return "quit"
		}

		if b >= 32 && b < 127 {
			input = append(input, b)
			fmt.Print(string(b))
		}
	}

	return string(input)
}
