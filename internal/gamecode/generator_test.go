package gamecode_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"connections/backend/internal/gamecode"
)

// fakeChecker reports the first n probed codes as taken.
type fakeChecker struct {
	taken  int
	probes []string
}

func (f *fakeChecker) CodeExists(_ context.Context, code string) (bool, error) {
	f.probes = append(f.probes, code)
	return len(f.probes) <= f.taken, nil
}

func TestRandom_AlphabetAndLength(t *testing.T) {
	gen := gamecode.New(&fakeChecker{})

	for i := 0; i < 1000; i++ {
		code := gen.Random()
		require.Len(t, code, gamecode.Length)
		for _, r := range code {
			assert.Contains(t, gamecode.Alphabet, string(r))
		}
	}
}

func TestAlphabet_HasNoVowels(t *testing.T) {
	for _, vowel := range "AEIOU" {
		assert.False(t, strings.ContainsRune(gamecode.Alphabet, vowel))
	}
	assert.Len(t, gamecode.Alphabet, 21)
}

func TestGenerate_FirstCandidateFree(t *testing.T) {
	checker := &fakeChecker{}
	gen := gamecode.New(checker)

	code, err := gen.Generate(context.Background())
	require.NoError(t, err)
	assert.Len(t, code, gamecode.Length)
	assert.Len(t, checker.probes, 1)
}

func TestGenerate_RetriesOnCollision(t *testing.T) {
	checker := &fakeChecker{taken: 3}
	gen := gamecode.New(checker)

	code, err := gen.Generate(context.Background())
	require.NoError(t, err)
	assert.Len(t, code, gamecode.Length)
	assert.Len(t, checker.probes, 4, "three collisions then a free code")
	assert.Equal(t, code, checker.probes[len(checker.probes)-1])
}

func TestGenerate_ExhaustsAttempts(t *testing.T) {
	checker := &fakeChecker{taken: gamecode.MaxAttempts + 1}
	gen := gamecode.New(checker)

	_, err := gen.Generate(context.Background())
	require.Error(t, err)
	assert.Len(t, checker.probes, gamecode.MaxAttempts)
}
