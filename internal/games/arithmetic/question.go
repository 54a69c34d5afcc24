package arithmetic

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/zukko-arcade/internal/config"
)

// Op is an arithmetic operator.
type Op string

const (
	OpAdd Op = "+"
	OpSub Op = "-"
)

// OptionCount is the number of answer options per question.
const OptionCount = 4

// Question is one quiz item with its shuffled options.
type Question struct {
	A, B    int
	Op      Op
	Answer  int
	Options []int
}

// Text renders the question as shown to the player.
func (q Question) Text() string {
	return fmt.Sprintf("%d %s %d = ?", q.A, q.Op, q.B)
}

// AnswerIndex returns the position of the correct answer among the options.
func (q Question) AnswerIndex() int {
	for i, v := range q.Options {
		if v == q.Answer {
			return i
		}
	}
	return -1
}

// NewQuestion builds a question from fixed operands. Subtraction puts the
// larger operand first so the answer is never negative. Distractors are
// taken from answer±offset, skipping the answer itself and negative values.
func NewQuestion(a, b int, op Op, offset int, rng *rand.Rand) Question {
	if op == OpSub && a < b {
		a, b = b, a
	}
	q := Question{A: a, B: b, Op: op}
	if op == OpSub {
		q.Answer = a - b
	} else {
		q.Op = OpAdd
		q.Answer = a + b
	}

	candidates := make([]int, 0, 2*offset)
	for o := -offset; o <= offset; o++ {
		if v := q.Answer + o; o != 0 && v >= 0 {
			candidates = append(candidates, v)
		}
	}
	for extra := offset + 1; len(candidates) < OptionCount-1; extra++ {
		candidates = append(candidates, q.Answer+extra)
	}
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	q.Options = append([]int{q.Answer}, candidates[:OptionCount-1]...)
	rng.Shuffle(len(q.Options), func(i, j int) {
		q.Options[i], q.Options[j] = q.Options[j], q.Options[i]
	})
	return q
}

// Generate draws a random question within the configured operand range.
func Generate(rng *rand.Rand, cfg config.ArithmeticConfig) Question {
	span := cfg.MaxOperand - cfg.MinOperand + 1
	a := cfg.MinOperand + rng.Intn(span)
	b := cfg.MinOperand + rng.Intn(span)

	op := OpAdd
	if len(cfg.Operators) > 0 {
		op = Op(cfg.Operators[rng.Intn(len(cfg.Operators))])
	}
	return NewQuestion(a, b, op, cfg.DistractorOffset, rng)
}
