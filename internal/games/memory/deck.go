package memory

import "math/rand"

// Card is one tile on the board.
type Card struct {
	Symbol   string
	Revealed bool
	Matched  bool
}

// Deal picks pairs distinct symbols from the pool, duplicates each one and
// shuffles the result. pairs is capped at the pool size.
func Deal(rng *rand.Rand, pool []string, pairs int) []Card {
	if pairs > len(pool) {
		pairs = len(pool)
	}

	picked := rng.Perm(len(pool))[:pairs]
	cards := make([]Card, 0, 2*pairs)
	for _, i := range picked {
		cards = append(cards, Card{Symbol: pool[i]}, Card{Symbol: pool[i]})
	}
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return cards
}
