package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

// ANSI escape code
const escapeCode = "\033"

// Text formatting
func bold(s string) string  { return escapeCode + "[1m" + s + escapeCode + "[22m" }
func faint(s string) string { return escapeCode + "[2m" + s + escapeCode + "[22m" }

// Colors
func magenta(s string) string { return escapeCode + "[35m" + s + escapeCode + "[39m" }
func cyan(s string) string    { return escapeCode + "[36m" + s + escapeCode + "[39m" }

const (
	defaultWidth               = 75
	defaultHeight              = 30
	flagSetOptionDefaultIndent = 8
)

// Layout
func getTerminalSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdin.Fd()))
	if err != nil {
		return defaultWidth, defaultHeight
	}
	return width, height
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// colorize applies the formatting function to s only if out is a terminal.
func colorize(out *os.File, format func(string) string, s string) string {
	if !isTerminal(out) {
		return s
	}
	return format(s)
}

func justifyWidth(indent, width int, text string) string {
	maxWidth := indent + width

	indentString := strings.Repeat(" ", indent)

	words := strings.Split(text, " ")
	lines := make([]string, 0, len(text)/(indent+width)+1)

	for len(words) > 0 {
		line := indentString
		for len(words) > 0 && len(line)+len(words[0])+1 <= maxWidth {
			if line != indentString {
				line += " "
			}
			line += words[0]
			words = words[1:]
		}

		// a single word longer than the line
		if line == indentString {
			line += words[0]
			words = words[1:]
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func justifyTerminalWidth(indent int, text string) string {
	// Take up at most 80% of the terminal width
	termWidth, _ := getTerminalSize()
	maxWidth := termWidth * 4 / 5
	return justifyWidth(indent, maxWidth, text)
}

func justifyOptionDescription(description string) string {
	// Take up at most 80% of the terminal width
	termWidth, _ := getTerminalSize()
	maxWidth := (termWidth - flagSetOptionDefaultIndent) * 4 / 5
	return justifyWidth(8, maxWidth, description)
}

func printDebugInfo(out *os.File, values [][2]string) {
	writeDebugInfo(out, values, isTerminal(out))
}

func writeDebugInfo(out io.Writer, values [][2]string, color bool) {
	maxLen := 0
	for _, pair := range values {
		keyLen := utf8.RuneCountInString(pair[0])
		if keyLen > maxLen {
			maxLen = keyLen
		}
	}

	for _, pair := range values {
		key, value := pair[0], pair[1]
		spacing := strings.Repeat(" ", maxLen-utf8.RuneCountInString(key)+1)
		if color {
			fmt.Fprintln(out, faint(key+":")+spacing+cyan(value))
		} else {
			fmt.Fprintln(out, key+":"+spacing+value)
		}
	}
}
