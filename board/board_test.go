package board

import (
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestStandardStart(t *testing.T) {
	is := is.New(t)
	b := StandardStart()
	is.Equal(b.Count(Black), 2)
	is.Equal(b.Count(White), 2)
	is.Equal(b.Count(Empty), 60)
	is.Equal(b.Get(3, 3), White)
	is.Equal(b.Get(3, 4), Black)
	is.Equal(b.Get(4, 3), Black)
	is.Equal(b.Get(4, 4), White)
}

func TestCopyIsIndependent(t *testing.T) {
	is := is.New(t)
	b := StandardStart()
	c := b.Copy()
	c.Set(0, 0, Black)
	is.Equal(b.Get(0, 0), Empty)
	is.Equal(c.Get(0, 0), Black)
}

func TestOpponent(t *testing.T) {
	is := is.New(t)
	is.Equal(Black.Opponent(), White)
	is.Equal(White.Opponent(), Black)
	is.Equal(Empty.Opponent(), Empty)
}

func TestSetFromPlaintext(t *testing.T) {
	is := is.New(t)
	b := MakeBoard([]string{
		"X . . . . . . O",
		"........",
		"........",
		"...OX...",
		"...XO...",
		"........",
		"........",
		"O------B",
	})
	is.Equal(b.Get(0, 0), Black)
	is.Equal(b.Get(0, 7), White)
	is.Equal(b.Get(7, 0), White)
	is.Equal(b.Get(7, 7), Black)
	is.Equal(b.Count(Black), 4)
	is.Equal(b.Count(White), 4)
}

func TestSetFromPlaintextErrors(t *testing.T) {
	is := is.New(t)
	var b GameBoard
	is.True(b.SetFromPlaintext([]string{"........"}) != nil)

	rows := strings.Split(strings.Repeat("........\n", 8), "\n")[:8]
	rows[2] = "...Z...."
	err := b.SetFromPlaintext(rows)
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "row 3"))

	rows[2] = "......."
	is.True(b.SetFromPlaintext(rows) != nil)
}

func TestToDisplayText(t *testing.T) {
	is := is.New(t)
	b := StandardStart()
	txt := b.ToDisplayText()
	is.True(strings.Contains(txt, "   A B C D E F G H "))
	is.True(strings.Contains(txt, " 4|. . . O X . . . |"))
	is.True(strings.Contains(txt, " 5|. . . X O . . . |"))
}
