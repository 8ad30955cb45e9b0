package automatic

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/domino14/reversi/board"
)

var ErrBadLogLine = errors.New("bad log line")

type lastTurn struct {
	playerIdx int
	color     board.Color
	black     int
	white     int
}

// AnalyzeLogFile reads a turn log written by StartCompVComp and rebuilds
// the summary from the final turn of every game.
func AnalyzeLogFile(r io.Reader) (Summary, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 8

	var names [2]string
	finals := map[string]lastTurn{}
	order := []string{}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Summary{}, err
		}
		if record[0] == "playerID" {
			// this is the header line
			continue
		}
		idx, name, err := splitPlayerID(record[0])
		if err != nil {
			return Summary{}, err
		}
		names[idx] = name
		color := board.Black
		if record[3] == board.White.DisplayString() {
			color = board.White
		}
		black, err := strconv.Atoi(record[5])
		if err != nil {
			return Summary{}, fmt.Errorf("%w: %v", ErrBadLogLine, err)
		}
		white, err := strconv.Atoi(record[6])
		if err != nil {
			return Summary{}, fmt.Errorf("%w: %v", ErrBadLogLine, err)
		}
		gid := record[1]
		if _, ok := finals[gid]; !ok {
			order = append(order, gid)
		}
		finals[gid] = lastTurn{playerIdx: idx, color: color, black: black, white: white}
	}

	results := lo.Map(order, func(gid string, _ int) GameResult {
		lt := finals[gid]
		firstColor := lt.color
		if lt.playerIdx == 1 {
			firstColor = lt.color.Opponent()
		}
		spread := lt.black - lt.white
		if firstColor == board.White {
			spread = -spread
		}
		res := GameResult{GameID: gid, FirstColor: firstColor, FirstSpread: spread, Winner: -1}
		if spread > 0 {
			res.Winner = 0
		} else if spread < 0 {
			res.Winner = 1
		}
		return res
	})
	return Summarize(names, results), nil
}

// splitPlayerID splits "alphabeta-1" into index 0 and name "alphabeta".
func splitPlayerID(id string) (int, string, error) {
	i := strings.LastIndex(id, "-")
	if i < 0 {
		return 0, "", fmt.Errorf("%w: player id %q", ErrBadLogLine, id)
	}
	n, err := strconv.Atoi(id[i+1:])
	if err != nil || (n != 1 && n != 2) {
		return 0, "", fmt.Errorf("%w: player id %q", ErrBadLogLine, id)
	}
	return n - 1, id[:i], nil
}

func (s Summary) String() string {
	if s.Games == 0 {
		return "Games played: 0\n"
	}
	str := fmt.Sprintf("Games played: %d\n", s.Games)
	for i := 0; i < 2; i++ {
		str += fmt.Sprintf("%v wins: %d (%.3f%%)\n", s.Players[i], s.Wins[i],
			100.0*float64(s.Wins[i])/float64(s.Games))
	}
	str += fmt.Sprintf("Draws: %d\n", s.Draws)
	str += fmt.Sprintf("%v Mean Spread: %.6f  Stdev: %.6f\n", s.Players[0], s.MeanSpread, s.StdevSpread)
	return str
}
