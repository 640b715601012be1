package player

import (
	"sos/game"
	"sos/searcher"
)

// Minimax wraps the search agent at a fixed configured depth.
type Minimax struct {
	name  string
	agent *searcher.Minimax
}

func NewMinimax(name string, player int, depth int) *Minimax {
	return &Minimax{
		name:  name,
		agent: searcher.New(player, searcher.WithDepth(depth)),
	}
}

func (p *Minimax) Name() string {
	return p.name
}

func (p *Minimax) ChooseMove(state *game.GameState) (game.Move, error) {
	return p.agent.FindBestMove(state)
}

// Metrics reports the work done by the last search.
func (p *Minimax) Metrics() searcher.Metrics {
	return p.agent.Metrics()
}
