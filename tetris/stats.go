package tetris

// Stats counts what happened during a session.
type Stats struct {
	// Spawned counts pieces put into play, per variant. Pieces swapped in
	// from the hold slot are not counted again.
	Spawned [variantCount]int
	Locked  int
	// Clears counts lock events by the number of rows they cleared.
	// Index 0 is unused; clears of four or more rows are counted at 4.
	Clears       [5]int
	Holds        int
	HardDrops    int
	SoftDropRows int
	HardDropRows int
}

// Pieces returns the total number of pieces dealt from the randomizer.
func (s Stats) Pieces() int {
	total := 0
	for _, n := range s.Spawned {
		total += n
	}
	return total
}

// SpawnedOf returns how many pieces of variant v were dealt.
func (s Stats) SpawnedOf(v Variant) int {
	if !v.Valid() {
		return 0
	}
	return s.Spawned[v]
}

func (s *Stats) recordClear(lines int) {
	if lines <= 0 {
		return
	}
	s.Clears[min(lines, len(s.Clears)-1)]++
}
