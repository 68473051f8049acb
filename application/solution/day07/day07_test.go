package day07

import (
	"testing"

	"github.com/helixml/aoc2023/domain/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRules_Strength(t *testing.T) {
	jacks := Rules{}
	jokers := Rules{Jokers: true}

	tests := []struct {
		a, b       byte
		jacks      int
		withJokers int
	}{
		{'A', 'A', 0, 0},
		{'5', '5', 0, 0},
		{'A', 'K', 1, 1},
		{'Q', 'K', -1, -1},
		{'Q', '9', 1, 1},
		{'7', 'K', -1, -1},
		{'7', '2', 1, 1},
		{'3', '5', -1, -1},
		{'J', 'A', -1, -1},
		{'J', 'T', 1, -1},
		{'J', '9', 1, -1},
		{'J', '2', 1, -1},
	}
	for _, tt := range tests {
		t.Run(string([]byte{tt.a, tt.b}), func(t *testing.T) {
			assert.Equal(t, tt.jacks, sign(jacks.Strength(tt.a)-jacks.Strength(tt.b)))
			assert.Equal(t, tt.withJokers, sign(jokers.Strength(tt.a)-jokers.Strength(tt.b)))
		})
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

func TestRules_Type(t *testing.T) {
	tests := []struct {
		cards      string
		jacks      HandType
		withJokers HandType
	}{
		{"AAAAA", FiveOfAKind, FiveOfAKind},
		{"AA8AA", FourOfAKind, FourOfAKind},
		{"23332", FullHouse, FullHouse},
		{"TTT98", ThreeOfAKind, ThreeOfAKind},
		{"23432", TwoPair, TwoPair},
		{"A23A4", OnePair, OnePair},
		{"23456", HighCard, HighCard},
		{"QJJQ2", TwoPair, FourOfAKind},
		{"J3456", HighCard, OnePair},
		{"A23AJ", OnePair, ThreeOfAKind},
		{"TTT9J", ThreeOfAKind, FourOfAKind},
		{"AAJAA", FourOfAKind, FiveOfAKind},
		{"JJJJJ", FiveOfAKind, FiveOfAKind},
	}
	for _, tt := range tests {
		t.Run(tt.cards, func(t *testing.T) {
			assert.Equal(t, tt.jacks, Rules{}.Type(tt.cards))
			assert.Equal(t, tt.withJokers, Rules{Jokers: true}.Type(tt.cards))
		})
	}
}

func TestRules_Compare(t *testing.T) {
	tests := []struct {
		a, b  string
		rules Rules
		want  int
	}{
		{"AAAAA", "AAAAA", Rules{}, 0},
		{"AAAAA", "AA8AA", Rules{}, 1},
		{"23456", "AA8AA", Rules{}, -1},
		{"33332", "2AAAA", Rules{}, 1},
		{"77888", "77788", Rules{}, 1},
		{"AAAAA", "AAAAA", Rules{Jokers: true}, 0},
		{"33332", "2AAAA", Rules{Jokers: true}, 1},
		{"77888", "77788", Rules{Jokers: true}, 1},
		{"JKKK2", "QQQQ2", Rules{Jokers: true}, -1},
	}
	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rules.Compare(tt.a, tt.b))
		})
	}
}

func TestHandType_String(t *testing.T) {
	assert.Equal(t, "full house", FullHouse.String())
}

func TestPart1(t *testing.T) {
	got, err := Part1(sampleInput)
	require.NoError(t, err)
	assert.Equal(t, 6440, got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(sampleInput)
	require.NoError(t, err)
	assert.Equal(t, 5905, got)
}

func TestParse_Malformed(t *testing.T) {
	for _, in := range []string{
		"32T3K",
		"32T3 765",
		"32T3X 765",
		"32T3K abc",
	} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, puzzle.ErrMalformedInput, in)
	}
}
