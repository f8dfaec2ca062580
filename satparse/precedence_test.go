package satparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldCombineLeft(t *testing.T) {
	cases := []struct {
		name        string
		left, right TokenKind
		want        bool
	}{
		{"tighter left stops the fold", TokenNegation, TokenConjunction, true},
		{"looser left keeps folding", TokenConjunction, TokenNegation, false},
		{"equal priority left-associative folds", TokenConjunction, TokenConjunction, true},
		{"equal priority right-associative keeps folding", TokenImplication, TokenImplication, false},
		{"sentinel never stops for any real operator", sentinelLeftOperator, TokenBiconditional, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, shouldCombineLeft(tc.left, tc.right))
		})
	}
}

func TestPriorityOrdering(t *testing.T) {
	assert.Less(t, priority(TokenNegation), priority(TokenConjunction))
	assert.Less(t, priority(TokenConjunction), priority(TokenExclusiveDisjunction))
	assert.Less(t, priority(TokenExclusiveDisjunction), priority(TokenDisjunction))
	assert.Less(t, priority(TokenDisjunction), priority(TokenImplication))
	assert.Less(t, priority(TokenImplication), priority(TokenBiconditional))
}
