// Command example demonstrates configuring an editline.Editor with a
// completer, hinter, and highlighter, then reading lines until EOF.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joeycumines/editline"
)

var commands = []string{"help", "history", "highlight", "hint", "exit"}

func completer(word []rune, contextLen *int) []string {
	var out []string
	for _, c := range commands {
		if strings.HasPrefix(c, string(word)) {
			out = append(out, c)
		}
	}
	return out
}

func hinter(prefix []rune, contextLen *int, color *editline.Color) [][]rune {
	var out [][]rune
	for _, c := range commands {
		if strings.HasPrefix(c, string(prefix)) && c != string(prefix) {
			out = append(out, []rune(c))
		}
	}
	*color = editline.BrightBlack
	return out
}

func highlighter(line []rune, colors []editline.Color) {
	word := string(line)
	for _, c := range commands {
		if word == c {
			for i := range colors {
				colors[i] = editline.BrightGreen
			}
			return
		}
	}
}

func main() {
	ed := editline.New(
		editline.WithCompleter(completer),
		editline.WithHinter(hinter),
		editline.WithHighlighter(highlighter),
		editline.WithMaxHintRows(4),
	)

	for {
		line, ok, err := ed.Input("example> ")
		if !ok {
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
			return
		}
		if line == "exit" {
			return
		}
		fmt.Println("you said:", line)
	}
}
