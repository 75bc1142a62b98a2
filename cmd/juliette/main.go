// Command juliette is a minimal line-oriented host for the engine core:
// it reads newline-delimited commands from stdin and prints results to
// stdout. It is not a UCI protocol implementation — framing, option
// negotiation, and the rest of UCI remain explicitly out of scope — just
// enough of a runnable loop to exercise new_game/position/go/quit end to
// end.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/ongamse/juliette/internal/board"
	"github.com/ongamse/juliette/internal/config"
	"github.com/ongamse/juliette/internal/engine"
	"github.com/ongamse/juliette/internal/game"
)

var configPath = flag.String("config", "juliette.toml", "path to an optional TOML config file")

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("warning: %v, using defaults", err)
		cfg = config.Default()
	}

	search := engine.NewSearcher(engine.MaterialEval)
	search.Ordering = cfg.MoveOrdering

	h := &host{
		g:       game.NewGame(),
		cfg:     cfg,
		search:  search,
		scanner: bufio.NewScanner(os.Stdin),
	}
	h.run()
}

type host struct {
	g       *game.Game
	cfg     config.Config
	search  *engine.Searcher
	scanner *bufio.Scanner
}

func (h *host) run() {
	for h.scanner.Scan() {
		line := strings.TrimSpace(h.scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd := fields[0]

		switch cmd {
		case "new_game":
			h.g = game.NewGame()
			fmt.Println("ok")
		case "position":
			h.handlePosition(fields[1:])
		case "go":
			h.handleGo(fields[1:])
		case "quit":
			return
		default:
			fmt.Printf("error: unknown command %q\n", cmd)
		}
	}
}

// handlePosition supports "position startpos" and "position fen <FEN...>",
// optionally followed by "moves <uci...>" to replay moves from that base
// position, the same two forms spec.md's host command table names.
func (h *host) handlePosition(args []string) {
	if len(args) == 0 {
		fmt.Println("error: position requires an argument")
		return
	}

	movesIdx := -1
	for i, a := range args {
		if a == "moves" {
			movesIdx = i
			break
		}
	}

	base := args
	var moveTokens []string
	if movesIdx >= 0 {
		base = args[:movesIdx]
		moveTokens = args[movesIdx+1:]
	}

	var g *game.Game
	if base[0] == "startpos" {
		g = game.NewGame()
	} else if base[0] == "fen" {
		fen := strings.Join(base[1:], " ")
		parsed, err := game.NewGameFromFEN(fen)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			return
		}
		g = parsed
	} else {
		fmt.Println("error: position requires startpos or fen")
		return
	}

	for _, tok := range moveTokens {
		m, err := board.ParseMove(tok, g.Position)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			return
		}
		g.Push(m)
	}

	h.g = g
	fmt.Println("ok")
}

// handleGo runs a fixed-depth search, optionally overriding the
// configured default with "go depth N".
func (h *host) handleGo(args []string) {
	depth := h.cfg.SearchDepth
	for i := 0; i+1 < len(args); i++ {
		if args[i] == "depth" {
			if d, err := strconv.Atoi(args[i+1]); err == nil && d > 0 {
				depth = d
			}
		}
	}

	result := h.search.Search(context.Background(), h.g, depth)
	fmt.Printf("bestmove %s score %d nodes %d\n", result.BestMove, result.Score, result.Nodes)
}
