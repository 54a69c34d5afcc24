package memory

import (
	"testing"

	"github.com/vovakirdan/zukko-arcade/internal/config"
	"github.com/vovakirdan/zukko-arcade/internal/core"
)

func TestDealPairs(t *testing.T) {
	pool := config.Default().Memory.Symbols

	for seed := int64(0); seed < 20; seed++ {
		cards := Deal(core.NewRand(seed), pool, 6)
		if len(cards) != 12 {
			t.Fatalf("seed %d: %d cards, want 12", seed, len(cards))
		}

		counts := make(map[string]int)
		for _, c := range cards {
			if c.Revealed || c.Matched {
				t.Errorf("seed %d: card dealt face up: %+v", seed, c)
			}
			counts[c.Symbol]++
		}
		if len(counts) != 6 {
			t.Errorf("seed %d: %d distinct symbols, want 6", seed, len(counts))
		}
		for sym, n := range counts {
			if n != 2 {
				t.Errorf("seed %d: %s appears %d times", seed, sym, n)
			}
		}
	}
}

func TestDealCapsAtPool(t *testing.T) {
	cards := Deal(core.NewRand(1), []string{"A", "B"}, 5)
	if len(cards) != 4 {
		t.Errorf("got %d cards, want 4", len(cards))
	}
}

func TestDealShuffles(t *testing.T) {
	pool := config.Default().Memory.Symbols
	a := Deal(core.NewRand(1), pool, 6)
	b := Deal(core.NewRand(2), pool, 6)

	same := true
	for i := range a {
		if a[i].Symbol != b[i].Symbol {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds dealt identical boards")
	}
}
