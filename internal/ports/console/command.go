package console

import (
	"errors"
	"strconv"
	"strings"
)

var errInvalidInput = errors.New("input is not an index, draw or exit")

type commandKind int

const (
	cmdPlay commandKind = iota
	cmdDraw
	cmdQuit
)

type command struct {
	kind  commandKind
	index int
}

func isQuit(input string) bool {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "exit", "quit":
		return true
	}
	return false
}

// parseCommand reads one turn prompt answer. Negative numbers parse as plays so
// the engine reports them as a bad index.
func parseCommand(input string) (command, error) {
	trimmed := strings.TrimSpace(input)
	switch {
	case isQuit(trimmed):
		return command{kind: cmdQuit}, nil
	case strings.EqualFold(trimmed, "draw"):
		return command{kind: cmdDraw}, nil
	}
	idx, err := strconv.Atoi(trimmed)
	if err != nil {
		return command{}, errInvalidInput
	}
	return command{kind: cmdPlay, index: idx}, nil
}
