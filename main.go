// Command blorus is a local hot-seat driver for the rules engine: all seats
// share one terminal. The networked server lives in cmd/server.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/AiredaleDev/blorus/internal/game"
)

func main() {
	players := 4
	if len(os.Args) > 1 {
		if n, err := strconv.Atoi(os.Args[1]); err == nil && n >= 2 && n <= 4 {
			players = n
		}
	}

	g := game.NewGameState(game.DefaultColorOrder[:players])
	reader := bufio.NewReader(os.Stdin)

	for !g.IsGameOver() {
		if !g.CanMakeMove() {
			fmt.Printf("%s has no legal move, passing.\n", g.CurrentPlayer().Color.Name())
			g.Pass()
			continue
		}

		fmt.Printf("\nTurn: %s\n", g.CurrentPlayer().Color.Name())
		printBoard(g)
		fmt.Printf("Hand: %v\n", g.CurrentPlayer().Remaining.IDs())
		if g.Selected != game.NoPiece {
			fmt.Printf("Selected %d (%s):\n%s", g.Selected, g.Selected, shapeString(g.Buffer))
		}
		fmt.Println("Commands: pick <id> | rot l|r | flip h|v | put <row> <col> | pass")
		fmt.Print("> ")

		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "pick":
			if len(parts) != 2 {
				fmt.Println("Usage: pick <id>")
				continue
			}
			n, err := strconv.Atoi(parts[1])
			id := game.PieceID(n)
			if err != nil || !g.CurrentPlayer().Remaining.Has(id) {
				fmt.Println("Not in hand.")
				continue
			}
			g.SelectPiece(id)
		case "rot":
			if len(parts) == 2 && parts[1] == "l" {
				g.RotateBuffer(game.RotateLeft)
			} else {
				g.RotateBuffer(game.RotateRight)
			}
		case "flip":
			if len(parts) == 2 && parts[1] == "h" {
				g.FlipBuffer(game.FlipHorizontal)
			} else {
				g.FlipBuffer(game.FlipVertical)
			}
		case "put":
			if len(parts) != 3 {
				fmt.Println("Usage: put <row> <col>")
				continue
			}
			row, _ := strconv.Atoi(parts[1])
			col, _ := strconv.Atoi(parts[2])
			if !g.TryAdvanceTurn(row, col) {
				fmt.Println("Illegal placement, try again.")
			}
		case "pass":
			g.Pass()
		default:
			fmt.Println("Unknown command.")
		}
	}

	fmt.Println("\nGame over!")
	printBoard(g)
	for i := range g.Players {
		p := &g.Players[i]
		fmt.Printf("%s: %d squares left (%d pieces)\n", p.Color.Name(), p.SquaresLeft(), p.Remaining.Count())
	}
}

func printBoard(g *game.GameState) {
	for row := 0; row < game.PlayArea; row++ {
		for col := 0; col < game.PlayArea; col++ {
			fmt.Printf("%s ", g.Board.At(row, col))
		}
		fmt.Println()
	}
}

func shapeString(s game.Shape) string {
	var sb strings.Builder
	for r := 0; r < game.ShapeSize; r++ {
		for c := 0; c < game.ShapeSize; c++ {
			if s[r][c] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
