package ui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

func readLine(in *bufio.Reader) (string, error) {
	line, err := in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", ErrCancelled
	}
	return strings.TrimSpace(line), nil
}

func lineInput(in *bufio.Reader, out io.Writer, prompt string) (string, error) {
	fmt.Fprintf(out, "%s > ", prompt)
	answer, err := readLine(in)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return "", fmt.Errorf("no input provided")
	}
	return answer, nil
}

func lineSelect(in *bufio.Reader, out io.Writer, prompt string, items []string) (int, error) {
	for i, item := range items {
		fmt.Fprintf(out, "%3d) %s\n", i+1, item)
	}
	fmt.Fprintf(out, "%s [1-%d] > ", prompt, len(items))

	answer, err := readLine(in)
	if err != nil {
		return -1, err
	}

	n, err := strconv.Atoi(answer)
	if err != nil {
		return -1, fmt.Errorf("parsing selection %q: %w", answer, err)
	}
	if n < 1 || n > len(items) {
		return -1, fmt.Errorf("selection %d out of range", n)
	}
	return n - 1, nil
}
