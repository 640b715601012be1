package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"

	"sos/config"
	"sos/engine"
	"sos/experiments"
	"sos/game"
	"sos/player"
)

func main() {
	configPath := flag.String("config", "config.yml", "path to the config file")
	size := flag.Int("size", 0, "board size n for an n×n grid (minimum 3)")
	player1 := flag.String("player1", "", "player 1 type: human, random or minimax")
	player2 := flag.String("player2", "", "player 2 type: human, random or minimax")
	depth := flag.Int("depth", 0, "search depth for minimax players")
	seed := flag.Uint64("seed", 0, "seed for random players")
	experiment := flag.Bool("experiment", false, "run agent depth matchups instead of a game")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	applyFlags(cfg, *size, *player1, *player2, *depth, *seed)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	initLogger(cfg.LogLevel)

	if *experiment {
		if err := experiments.RunDepthMatchups(); err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		return
	}

	if err := runGame(cfg); err != nil {
		log.Fatal().Err(err).Msg("game failed")
	}
}

func applyFlags(cfg *config.Config, size int, player1, player2 string, depth int, seed uint64) {
	if size > 0 {
		cfg.BoardSize = size
	}
	if player1 != "" {
		cfg.Player1.Type = player1
	}
	if player2 != "" {
		cfg.Player2.Type = player2
	}
	if depth > 0 {
		cfg.Player1.Depth = depth
		cfg.Player2.Depth = depth
	}
	if seed > 0 {
		cfg.Seed = seed
	}
}

func initLogger(level string) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(parsed)
}

func runGame(cfg *config.Config) error {
	state, err := game.NewGameState(cfg.BoardSize)
	if err != nil {
		return err
	}

	p1, err := buildPlayer("Player1", game.Player1, cfg.Player1, cfg.Seed)
	if err != nil {
		return err
	}
	p2, err := buildPlayer("Player2", game.Player2, cfg.Player2, cfg.Seed+1)
	if err != nil {
		return err
	}

	eng := engine.New(state, p1, p2)
	result, err := eng.Run()
	if err != nil {
		return err
	}

	fmt.Println(eng.State().Board())
	for name, score := range result.Scores {
		fmt.Printf("%s: %d formation(s)\n", name, score)
	}
	if result.Tied {
		fmt.Println("bad game, it's a draw")
	} else {
		fmt.Printf("good game, %s won\n", result.Winner)
	}
	return nil
}

func buildPlayer(name string, id int, cfg config.Player, seed uint64) (player.Player, error) {
	switch cfg.Type {
	case config.TypeHuman:
		return player.NewHuman(name, consoleReader(name)), nil
	case config.TypeRandom:
		return player.NewRandom(name, seed), nil
	case config.TypeMinimax:
		return player.NewMinimax(name, id, cfg.Depth), nil
	default:
		return nil, fmt.Errorf("unknown player type %q", cfg.Type)
	}
}

// consoleReader prompts on stdin for a row, a column and a sign. Validation
// is left to the engine, which asks again on an invalid move.
func consoleReader(name string) player.MoveReader {
	in := bufio.NewReader(os.Stdin)
	return func(state *game.GameState) (game.Move, error) {
		fmt.Println(state.Board())
		fmt.Printf("%s to move (scores %d:%d)\n",
			name, state.Score(game.Player1), state.Score(game.Player2))

		row, err := readInt(in, fmt.Sprintf("row 0-%d: ", state.Size()-1))
		if err != nil {
			return game.Move{}, err
		}
		col, err := readInt(in, fmt.Sprintf("col 0-%d: ", state.Size()-1))
		if err != nil {
			return game.Move{}, err
		}
		sign, err := readSign(in)
		if err != nil {
			return game.Move{}, err
		}
		return game.Move{Row: row, Col: col, Sign: sign}, nil
	}
}

func readInt(in *bufio.Reader, prompt string) (int, error) {
	for {
		fmt.Print(prompt)
		line, err := in.ReadString('\n')
		if err != nil {
			return 0, fmt.Errorf("read input: %w", err)
		}
		value, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Println("not a number, try again")
			continue
		}
		return value, nil
	}
}

func readSign(in *bufio.Reader) (game.Sign, error) {
	for {
		fmt.Print("letter S or O: ")
		line, err := in.ReadString('\n')
		if err != nil {
			return game.Empty, fmt.Errorf("read input: %w", err)
		}
		sign, err := game.ParseSign(line)
		if err != nil {
			fmt.Println(err)
			continue
		}
		return sign, nil
	}
}
