// Package shell is an interactive console for playing and analyzing
// Othello positions.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/domino14/reversi/ai/player"
	"github.com/domino14/reversi/automatic"
	"github.com/domino14/reversi/cgp"
	"github.com/domino14/reversi/config"
	"github.com/domino14/reversi/game"
	"github.com/domino14/reversi/move"
	"github.com/domino14/reversi/puzzles"
)

var (
	errNoData            = errors.New("no data in this line")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
	errNoGame            = errors.New("please start a game first (new or load)")
	errExit              = errors.New("exit")
)

type shellcmd struct {
	cmd     string
	args    []string
	options map[string]string
}

type ShellController struct {
	l   *readline.Instance
	out io.Writer
	cfg *config.Config

	game     *game.Game
	aiplayer *player.AlphaBetaPlayer
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func NewShellController(cfg *config.Config) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mreversi>\033[0m ",
		HistoryFile:     cfg.GetString(config.ConfigShellHistoryFile),
		AutoComplete:    &ShellCompleter{},
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	sc := newController(cfg, l.Stderr())
	sc.l = l
	return sc
}

func newController(cfg *config.Config, out io.Writer) *ShellController {
	return &ShellController{
		out:      out,
		cfg:      cfg,
		aiplayer: player.NewAlphaBetaPlayer(nil),
	}
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.out)
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := fields[0]
	var args []string
	options := map[string]string{}
	for i := 1; i < len(fields); i++ {
		if strings.HasPrefix(fields[i], "-") && len(fields[i]) > 1 {
			if i == len(fields)-1 {
				return nil, errWrongOptionSyntax
			}
			options[fields[i][1:]] = fields[i+1]
			i++
			continue
		}
		args = append(args, fields[i])
	}
	return &shellcmd{cmd: cmd, args: args, options: options}, nil
}

// Execute runs one command line and returns what it wants to show.
func (sc *ShellController) Execute(line string) (string, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return "", err
	}
	return sc.dispatch(cmd)
}

func (sc *ShellController) dispatch(cmd *shellcmd) (string, error) {
	switch cmd.cmd {
	case "exit":
		return "", errExit
	case "help":
		var sb strings.Builder
		if len(cmd.args) == 0 {
			usage(&sb)
		} else {
			usageTopic(&sb, cmd.args[0])
		}
		return sb.String(), nil
	case "new":
		sc.game = game.NewGame()
		return sc.game.ToDisplayText(), nil
	case "load":
		return sc.load(cmd)
	case "show":
		if sc.game == nil {
			return "", errNoGame
		}
		return sc.game.ToDisplayText(), nil
	case "cgp":
		if sc.game == nil {
			return "", errNoGame
		}
		return cgp.ToCGP(sc.game), nil
	case "gen":
		return sc.gen()
	case "play":
		return sc.play(cmd)
	case "aiplay":
		return sc.aiplay()
	case "autoplay":
		return sc.autoplay(cmd)
	case "puzzles":
		return sc.puzzles(cmd)
	}
	return "", fmt.Errorf("command %q not recognized", cmd.cmd)
}

func (sc *ShellController) load(cmd *shellcmd) (string, error) {
	if len(cmd.args) == 0 {
		return "", errors.New("please provide a position in CGP form")
	}
	// An unquoted CGP arrives as two arguments: rows and side to move.
	g, err := cgp.ParseCGP(strings.Join(cmd.args, " "))
	if err != nil {
		return "", err
	}
	sc.game = g
	return g.ToDisplayText(), nil
}

func moveTableHeader() string {
	return fmt.Sprintf("%3s %6s %8s", "#", "Move", "Score")
}

func moveTableRow(idx int, m player.ScoredMove) string {
	return fmt.Sprintf("%3d %6s %8d", idx+1, m.Move, m.Score)
}

func (sc *ShellController) gen() (string, error) {
	if sc.game == nil {
		return "", errNoGame
	}
	if !sc.game.Playing() {
		return "", game.ErrGameOver
	}
	ranked := sc.aiplayer.RankMoves(sc.game)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })
	lines := []string{moveTableHeader()}
	for i, m := range ranked {
		lines = append(lines, moveTableRow(i, m))
	}
	return strings.Join(lines, "\n"), nil
}

func (sc *ShellController) play(cmd *shellcmd) (string, error) {
	if sc.game == nil {
		return "", errNoGame
	}
	if len(cmd.args) != 1 {
		return "", errors.New("please provide one coordinate, e.g. play D3")
	}
	m, err := move.FromBoardGameCoords(cmd.args[0])
	if err != nil {
		return "", err
	}
	if err := sc.game.PlayMove(m, true); err != nil {
		return "", err
	}
	return sc.game.ToDisplayText(), nil
}

func (sc *ShellController) aiplay() (string, error) {
	if sc.game == nil {
		return "", errNoGame
	}
	if !sc.game.Playing() {
		return "", game.ErrGameOver
	}
	mover := sc.game.PlayerOnTurn()
	m := sc.aiplayer.ChooseMove(sc.game)
	if err := sc.game.PlayMove(m, true); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s plays %s\n%s", mover, m, sc.game.ToDisplayText()), nil
}

func (sc *ShellController) autoplay(cmd *shellcmd) (string, error) {
	numGames := sc.cfg.GetInt(config.ConfigAutoplayGames)
	threads := sc.cfg.GetInt(config.ConfigAutoplayThreads)
	outPath := sc.cfg.GetString(config.ConfigAutoplayOutput)
	var err error
	if len(cmd.args) > 0 {
		if numGames, err = strconv.Atoi(cmd.args[0]); err != nil {
			return "", err
		}
	}
	if t, ok := cmd.options["threads"]; ok {
		if threads, err = strconv.Atoi(t); err != nil {
			return "", err
		}
	}
	if f, ok := cmd.options["file"]; ok {
		outPath = f
	}
	f, err := os.Create(outPath)
	if err != nil {
		return "", err
	}
	defer f.Close()
	log.Info().Str("file", outPath).Int("games", numGames).Msg("autoplay-starting")
	summary, err := automatic.StartCompVComp(context.Background(), sc.cfg, numGames, threads, f)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.WriteString(summary.String())
	if err := summary.Histogram(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (sc *ShellController) puzzles(cmd *shellcmd) (string, error) {
	suite := puzzles.Default()
	path := sc.cfg.GetString(config.ConfigPuzzleFile)
	if len(cmd.args) > 0 {
		path = cmd.args[0]
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return "", err
		}
		defer f.Close()
		if suite, err = puzzles.Load(f); err != nil {
			return "", err
		}
	}
	results := puzzles.Run(suite, sc.aiplayer)
	var sb strings.Builder
	for _, r := range results {
		status := "FAIL"
		if r.Passed {
			status = "ok"
		}
		fmt.Fprintf(&sb, "%-4s %-20s played %-4s best %s\n", status, r.Puzzle.Name,
			r.Played, strings.Join(r.Puzzle.Best, ","))
	}
	fmt.Fprintf(&sb, "Solved %d of %d", puzzles.Score(results), len(results))
	return sb.String(), nil
}

// Loop reads commands until exit, EOF or an interrupt on an empty line,
// then calls done.
func (sc *ShellController) Loop(done func()) {
	defer sc.l.Close()
	defer done()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		line = strings.TrimSpace(line)

		msg, err := sc.Execute(line)
		if errors.Is(err, errExit) {
			break
		}
		if errors.Is(err, errNoData) {
			continue
		}
		if err != nil {
			sc.showError(err)
			continue
		}
		sc.showMessage(msg)
	}
	log.Debug().Msgf("Exiting readline loop...")
}
