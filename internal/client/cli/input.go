package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt to w and reads one line from reader,
// trimming whitespace. A partial line before EOF is still returned.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword prompts on w and reads a password from the terminal without
// echo. The caller should wipe the returned bytes when done.
func GetPassword(w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// WipeBytes zeroes a sensitive byte slice.
func WipeBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// argOrPrompt returns the first argument if present, otherwise prompts.
func argOrPrompt(reader *bufio.Reader, args []string, prompt string, w io.Writer) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return GetSimpleText(reader, prompt, w)
}

// reportID parses a report id out of args, prompting when absent.
func reportID(reader *bufio.Reader, args []string, w io.Writer) (int64, error) {
	raw, err := argOrPrompt(reader, args, "Report id", w)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		fmt.Fprintln(w, "Not a report id:", raw)
		return 0, err
	}
	return id, nil
}
