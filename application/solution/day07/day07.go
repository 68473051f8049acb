// Package day07 solves "Camel Cards".
package day07

import (
	"cmp"
	"slices"
	"strings"

	"github.com/helixml/aoc2023/domain/puzzle"
	"github.com/helixml/aoc2023/internal/parse"
)

// Puzzle returns the registered puzzle for day 7.
func Puzzle() puzzle.Puzzle {
	return puzzle.New(7, "Camel Cards", Part1, Part2,
		puzzle.NewSample(puzzle.PartOne, "example", sampleInput, 6440),
		puzzle.NewSample(puzzle.PartTwo, "example", sampleInput, 5905),
	)
}

// HandType ranks a hand's shape, weakest first.
type HandType int

// Hand types.
const (
	HighCard HandType = iota + 1
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

var handTypeNames = map[HandType]string{
	HighCard:     "high card",
	OnePair:      "one pair",
	TwoPair:      "two pair",
	ThreeOfAKind: "three of a kind",
	FullHouse:    "full house",
	FourOfAKind:  "four of a kind",
	FiveOfAKind:  "five of a kind",
}

func (t HandType) String() string { return handTypeNames[t] }

const cardOrder = "23456789TJQKA"

// Rules selects how 'J' is treated.
type Rules struct {
	Jokers bool
}

// Strength returns the card's rank; higher is stronger.
func (r Rules) Strength(card byte) int {
	if r.Jokers && card == 'J' {
		return 0
	}
	return strings.IndexByte(cardOrder, card) + 1
}

// Type classifies a hand. With jokers, every J joins the largest group.
func (r Rules) Type(cards string) HandType {
	counts := make(map[byte]int, len(cards))
	jokers := 0
	for i := 0; i < len(cards); i++ {
		if r.Jokers && cards[i] == 'J' {
			jokers++
			continue
		}
		counts[cards[i]]++
	}
	groups := make([]int, 0, len(counts))
	for _, n := range counts {
		groups = append(groups, n)
	}
	slices.SortFunc(groups, func(a, b int) int { return cmp.Compare(b, a) })
	if len(groups) == 0 {
		groups = append(groups, 0)
	}
	groups[0] += jokers

	switch {
	case groups[0] == 5:
		return FiveOfAKind
	case groups[0] == 4:
		return FourOfAKind
	case groups[0] == 3 && groups[1] == 2:
		return FullHouse
	case groups[0] == 3:
		return ThreeOfAKind
	case groups[0] == 2 && groups[1] == 2:
		return TwoPair
	case groups[0] == 2:
		return OnePair
	default:
		return HighCard
	}
}

// Compare orders hands weakest first: by type, then card by card.
func (r Rules) Compare(a, b string) int {
	if c := cmp.Compare(r.Type(a), r.Type(b)); c != 0 {
		return c
	}
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := cmp.Compare(r.Strength(a[i]), r.Strength(b[i])); c != 0 {
			return c
		}
	}
	return 0
}

// Hand is one line of input.
type Hand struct {
	Cards string
	Bid   int
}

// Parse reads "CARDS BID" lines.
func Parse(input string) ([]Hand, error) {
	var hands []Hand
	for _, line := range parse.Lines(input) {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, parse.Errorf("want cards and bid: %q", line)
		}
		cards := fields[0]
		if len(cards) != 5 {
			return nil, parse.Errorf("hand %q must have five cards", cards)
		}
		for i := 0; i < len(cards); i++ {
			if strings.IndexByte(cardOrder, cards[i]) < 0 {
				return nil, parse.Errorf("unknown card %q in %q", cards[i], cards)
			}
		}
		bid, err := parse.Int(fields[1])
		if err != nil {
			return nil, err
		}
		hands = append(hands, Hand{Cards: cards, Bid: bid})
	}
	return hands, nil
}

// Winnings ranks the hands and sums bid times rank.
func Winnings(hands []Hand, rules Rules) int {
	sorted := slices.Clone(hands)
	slices.SortStableFunc(sorted, func(a, b Hand) int { return rules.Compare(a.Cards, b.Cards) })
	total := 0
	for i, h := range sorted {
		total += (i + 1) * h.Bid
	}
	return total
}

// Part1 returns the total winnings with J as jack.
func Part1(input string) (int, error) {
	hands, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return Winnings(hands, Rules{}), nil
}

// Part2 returns the total winnings with J as joker.
func Part2(input string) (int, error) {
	hands, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return Winnings(hands, Rules{Jokers: true}), nil
}

const sampleInput = `32T3K 765
T55J5 684
KK677 28
KTJJT 220
QQQJA 483
`
