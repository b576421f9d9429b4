package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Prompt is shown before reading the start node of the default graph.
const Prompt = "Enter the starting node (0 to 4): "

// ErrInvalidInput is returned when the start token is missing or not an integer.
var ErrInvalidInput = errors.New("invalid input")

// PromptFor returns the prompt for a graph with n nodes.
func PromptFor(n int) string {
	return fmt.Sprintf("Enter the starting node (0 to %d): ", n-1)
}

// ReadStart reads one whitespace-delimited token from r and parses it as a node index.
// Range checking is left to the traversal, which knows the graph.
func ReadStart(r io.Reader) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, fmt.Errorf("read start node: %w", err)
		}
		return 0, fmt.Errorf("%w: no start node given", ErrInvalidInput)
	}

	tok := sc.Text()
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidInput, tok)
	}
	return n, nil
}
