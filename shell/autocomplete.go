package shell

import (
	"strings"

	"github.com/kballard/go-shellquote"
)

var commandNames = []string{
	"new", "load", "show", "cgp", "gen", "play", "aiplay",
	"autoplay", "puzzles", "help", "exit",
}

var helpTopics = []string{"autoplay", "puzzles"}

// ShellCompleter completes command names, and help topics after "help".
type ShellCompleter struct{}

// Do implements the readline.AutoCompleter interface.
func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])

	fields, err := shellquote.Split(text)
	if err != nil {
		// If we can't parse, fall back to simple space splitting
		fields = strings.Fields(text)
	}
	endsWithSpace := len(text) > 0 && text[len(text)-1] == ' '

	var prefix string
	var completions []string
	switch {
	case len(fields) == 0 || (len(fields) == 1 && !endsWithSpace):
		if len(fields) == 1 {
			prefix = fields[0]
		}
		completions = commandNames
	case fields[0] == "help" && (len(fields) == 1 || (len(fields) == 2 && !endsWithSpace)):
		if len(fields) == 2 {
			prefix = fields[1]
		}
		completions = helpTopics
	default:
		return nil, 0
	}

	var out [][]rune
	for _, c := range completions {
		if strings.HasPrefix(c, prefix) {
			// readline wants only the part still to be typed.
			out = append(out, []rune(c[len(prefix):]+" "))
		}
	}
	return out, len([]rune(prefix))
}
