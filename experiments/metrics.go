package experiments

import "time"

// AgentConfig describes one agent taking part in a matchup.
type AgentConfig struct {
	ID    int
	Type  string // random or minimax
	Depth int    // minimax players only
	Seed  uint64 // random players only
}

// GameRecord captures one finished game of a matchup.
type GameRecord struct {
	ID       int
	Agent1   int // AgentConfig.ID
	Agent2   int // AgentConfig.ID
	Winner   string
	Score1   int
	Score2   int
	Moves    int
	Duration time.Duration
}

// MoveRecord captures one move and the search effort behind it.
type MoveRecord struct {
	Game     int // GameRecord.ID
	Step     int
	Player   string
	Nodes    int
	Pruned   int
	Duration time.Duration
}
