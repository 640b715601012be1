package game

// Formation is an ordered triple of coordinates whose signs read S,O,S along
// a straight line. Two formations are the same iff their triples are equal.
type Formation [3]Location

// The four line orientations a formation can have. Scanning these with
// window offsets -2..0 through a cell covers every length-3 window that
// contains the cell, each exactly once.
var orientations = [4]Location{
	{Row: 0, Col: 1},  // horizontal
	{Row: 1, Col: 0},  // vertical
	{Row: 1, Col: 1},  // diagonal down-right
	{Row: 1, Col: -1}, // diagonal down-left
}

var sosPattern = [3]Sign{S, O, S}

// Formations returns the formations on b that contain the cell at loc. A
// formation that does not pass through the last-played cell cannot be new,
// so incremental scoring only ever needs this local scan.
func Formations(b *Board, loc Location) []Formation {
	var found []Formation
	for _, dir := range orientations {
		for offset := -2; offset <= 0; offset++ {
			start := Location{Row: loc.Row + offset*dir.Row, Col: loc.Col + offset*dir.Col}
			if f, ok := formationAt(b, start, dir); ok {
				found = append(found, f)
			}
		}
	}
	return found
}

// formationAt checks the length-3 window starting at start along dir.
func formationAt(b *Board, start, dir Location) (Formation, bool) {
	var f Formation
	for i := 0; i < 3; i++ {
		cell := Location{Row: start.Row + i*dir.Row, Col: start.Col + i*dir.Col}
		if !b.InRange(cell.Row, cell.Col) {
			return Formation{}, false
		}
		if b.cells[cell.Row*b.size+cell.Col] != sosPattern[i] {
			return Formation{}, false
		}
		f[i] = cell
	}
	return f, true
}

// CountAll counts every formation on the board, each triple once. The game
// scores incrementally via Formations; this full scan is the reference count.
func CountAll(b *Board) int {
	count := 0
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			for _, dir := range orientations {
				if _, ok := formationAt(b, Location{Row: r, Col: c}, dir); ok {
					count++
				}
			}
		}
	}
	return count
}

// OpenWindows counts length-3 windows that are one placement away from
// reading S,O,S: the S·O·_, _·O·S and S·_·S shapes.
func OpenWindows(b *Board) int {
	count := 0
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			for _, dir := range orientations {
				if openWindowAt(b, Location{Row: r, Col: c}, dir) {
					count++
				}
			}
		}
	}
	return count
}

func openWindowAt(b *Board, start, dir Location) bool {
	var signs [3]Sign
	for i := 0; i < 3; i++ {
		cell := Location{Row: start.Row + i*dir.Row, Col: start.Col + i*dir.Col}
		if !b.InRange(cell.Row, cell.Col) {
			return false
		}
		signs[i] = b.cells[cell.Row*b.size+cell.Col]
	}
	missing := 0
	for i, want := range sosPattern {
		if signs[i] == want {
			continue
		}
		if signs[i] != Empty {
			return false
		}
		missing++
	}
	return missing == 1
}
