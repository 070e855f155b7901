// Package gamecode produces the short shareable identifiers players type in to
// load a game.
package gamecode

import (
	"context"
	"fmt"
	"math/rand/v2"
)

// Alphabet is consonants only, so a generated code never spells an accidental
// word.
const Alphabet = "BCDFGHJKLMNPQRSTVWXYZ"

// Length of every game code.
const Length = 4

// MaxAttempts bounds collision retries. With 21^4 possible codes a collision
// is a ~1/194481 event per draw, so the bound is unreachable in practice.
const MaxAttempts = 32

// CodeChecker is the slice of the store the generator needs: an existence
// probe for candidate codes.
type CodeChecker interface {
	CodeExists(ctx context.Context, code string) (bool, error)
}

// Generator draws candidate codes uniformly at random and pre-checks them
// against the store. The pre-check is an optimization only: the database's
// unique constraint on game_code is what actually guarantees uniqueness under
// concurrent creation, and callers must treat an insert-time conflict as a
// signal to regenerate.
type Generator struct {
	checker CodeChecker
	intN    func(n int) int
}

func New(checker CodeChecker) *Generator {
	return &Generator{checker: checker, intN: rand.IntN}
}

// Random returns one candidate code without checking the store.
func (g *Generator) Random() string {
	buf := make([]byte, Length)
	for i := range buf {
		buf[i] = Alphabet[g.intN(len(Alphabet))]
	}
	return string(buf)
}

// Generate returns a code that did not exist in the store at check time.
func (g *Generator) Generate(ctx context.Context) (string, error) {
	for attempt := 0; attempt < MaxAttempts; attempt++ {
		code := g.Random()
		exists, err := g.checker.CodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", fmt.Errorf("no unique game code after %d attempts", MaxAttempts)
}
