package buddy

import (
	"context"
	"errors"
	"math/rand"
	"sync"

	"github.com/vovakirdan/zukko-arcade/internal/config"
)

// CannedGenerator answers from the configured offline lists.
type CannedGenerator struct {
	canned config.BuddyCanned

	mu  sync.Mutex
	rng *rand.Rand
}

// NewCannedGenerator creates an offline generator.
func NewCannedGenerator(canned config.BuddyCanned, rng *rand.Rand) *CannedGenerator {
	return &CannedGenerator{canned: canned, rng: rng}
}

// Name returns "canned".
func (g *CannedGenerator) Name() string { return "canned" }

// Generate picks a random entry for the kind. Praise entries may use {{.Score}}.
func (g *CannedGenerator) Generate(ctx context.Context, req Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var list []string
	switch req.Kind {
	case KindRiddle:
		list = g.canned.Riddles
	case KindPraise:
		list = g.canned.Praise
	case KindFunFact:
		list = g.canned.FunFacts
	}
	if len(list) == 0 {
		return "", errors.New("buddy: no canned replies for " + req.Kind.String())
	}

	g.mu.Lock()
	pick := list[g.rng.Intn(len(list))]
	g.mu.Unlock()

	return fill(pick, req.Score)
}
