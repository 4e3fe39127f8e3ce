package strategy

import (
	"fmt"

	"github.com/lox/pokercoach/internal/classify"
	"github.com/lox/pokercoach/internal/position"
)

// triple is a raw fold/call/raise weighting. Rows need not sum to 100;
// the resolver normalizes.
type triple [3]int

// Preflop raise-first-in charts, keyed by position tier then hand
// category.
var rfiTable = map[position.Tier]map[classify.HandCategory]triple{
	position.Early: {
		classify.Premium:     {0, 0, 100},
		classify.Strong:      {0, 0, 100},
		classify.Medium:      {20, 0, 80},
		classify.Speculative: {70, 0, 30},
		classify.Weak:        {100, 0, 0},
	},
	position.Middle: {
		classify.Premium:     {0, 0, 100},
		classify.Strong:      {0, 0, 100},
		classify.Medium:      {0, 0, 100},
		classify.Speculative: {40, 0, 60},
		classify.Weak:        {90, 0, 10},
	},
	position.Late: {
		classify.Premium:     {0, 0, 100},
		classify.Strong:      {0, 0, 100},
		classify.Medium:      {0, 0, 100},
		classify.Speculative: {10, 0, 90},
		classify.Weak:        {60, 0, 40},
	},
	position.Blinds: {
		classify.Premium:     {0, 0, 100},
		classify.Strong:      {0, 0, 100},
		classify.Medium:      {0, 0, 100},
		classify.Speculative: {30, 0, 70},
		classify.Weak:        {70, 0, 30},
	},
}

// Facing a single raise: call or 3-bet.
var vsRaiseTable = map[position.Tier]map[classify.HandCategory]triple{
	position.Early: {
		classify.Premium:     {0, 20, 80},
		classify.Strong:      {10, 70, 20},
		classify.Medium:      {40, 50, 10},
		classify.Speculative: {80, 15, 5},
		classify.Weak:        {100, 0, 0},
	},
	position.Middle: {
		classify.Premium:     {0, 15, 85},
		classify.Strong:      {5, 65, 30},
		classify.Medium:      {30, 55, 15},
		classify.Speculative: {70, 20, 10},
		classify.Weak:        {95, 5, 0},
	},
	position.Late: {
		classify.Premium:     {0, 10, 90},
		classify.Strong:      {0, 50, 50},
		classify.Medium:      {15, 60, 25},
		classify.Speculative: {50, 35, 15},
		classify.Weak:        {85, 10, 5},
	},
	position.Blinds: {
		classify.Premium:     {0, 10, 90},
		classify.Strong:      {0, 60, 40},
		classify.Medium:      {20, 65, 15},
		classify.Speculative: {55, 35, 10},
		classify.Weak:        {90, 8, 2},
	},
}

// Isolating limpers.
var vsLimpTable = map[position.Tier]map[classify.HandCategory]triple{
	position.Early: {
		classify.Premium:     {0, 0, 100},
		classify.Strong:      {0, 0, 100},
		classify.Medium:      {10, 20, 70},
		classify.Speculative: {30, 40, 30},
		classify.Weak:        {80, 15, 5},
	},
	position.Middle: {
		classify.Premium:     {0, 0, 100},
		classify.Strong:      {0, 0, 100},
		classify.Medium:      {0, 10, 90},
		classify.Speculative: {15, 35, 50},
		classify.Weak:        {60, 25, 15},
	},
	position.Late: {
		classify.Premium:     {0, 0, 100},
		classify.Strong:      {0, 0, 100},
		classify.Medium:      {0, 5, 95},
		classify.Speculative: {5, 25, 70},
		classify.Weak:        {40, 30, 30},
	},
	position.Blinds: {
		classify.Premium:     {0, 0, 100},
		classify.Strong:      {0, 0, 100},
		classify.Medium:      {0, 20, 80},
		classify.Speculative: {10, 40, 50},
		classify.Weak:        {50, 35, 15},
	},
}

// Facing a 3-bet, position-independent: call or 4-bet.
var vs3BetTable = map[classify.HandCategory]triple{
	classify.Premium:     {0, 20, 80},
	classify.Strong:      {20, 60, 20},
	classify.Medium:      {50, 40, 10},
	classify.Speculative: {80, 15, 5},
	classify.Weak:        {100, 0, 0},
}

// Continuation betting, keyed by board texture then hand category.
var cbetTable = map[classify.BoardTexture]map[classify.HandCategory]triple{
	classify.Dry: {
		classify.Premium:     {0, 0, 100},
		classify.Strong:      {0, 10, 90},
		classify.Medium:      {10, 20, 70},
		classify.Speculative: {30, 20, 50},
		classify.Weak:        {40, 30, 30},
	},
	classify.Wet: {
		classify.Premium:     {0, 5, 95},
		classify.Strong:      {0, 25, 75},
		classify.Medium:      {15, 35, 50},
		classify.Speculative: {40, 35, 25},
		classify.Weak:        {60, 30, 10},
	},
	classify.Paired: {
		classify.Premium:     {0, 10, 90},
		classify.Strong:      {0, 20, 80},
		classify.Medium:      {5, 30, 65},
		classify.Speculative: {25, 35, 40},
		classify.Weak:        {45, 35, 20},
	},
	classify.Monotone: {
		classify.Premium:     {0, 15, 85},
		classify.Strong:      {5, 35, 60},
		classify.Medium:      {20, 40, 40},
		classify.Speculative: {50, 35, 15},
		classify.Weak:        {70, 25, 5},
	},
}

// Defending against a continuation bet.
var facingCBetTable = map[classify.BoardTexture]map[classify.HandCategory]triple{
	classify.Dry: {
		classify.Premium:     {0, 40, 60},
		classify.Strong:      {10, 70, 20},
		classify.Medium:      {35, 55, 10},
		classify.Speculative: {60, 35, 5},
		classify.Weak:        {90, 8, 2},
	},
	classify.Wet: {
		classify.Premium:     {0, 35, 65},
		classify.Strong:      {5, 65, 30},
		classify.Medium:      {25, 60, 15},
		classify.Speculative: {50, 40, 10},
		classify.Weak:        {85, 12, 3},
	},
	classify.Paired: {
		classify.Premium:     {0, 45, 55},
		classify.Strong:      {10, 70, 20},
		classify.Medium:      {40, 50, 10},
		classify.Speculative: {65, 30, 5},
		classify.Weak:        {92, 6, 2},
	},
	classify.Monotone: {
		classify.Premium:     {0, 30, 70},
		classify.Strong:      {0, 55, 45},
		classify.Medium:      {20, 60, 20},
		classify.Speculative: {45, 45, 10},
		classify.Weak:        {80, 15, 5},
	},
}

// Unhandled combinations are a construction-time error, not a runtime
// zero value: the tables are checked for completeness when the package
// loads.
func init() {
	tiers := []position.Tier{position.Early, position.Middle, position.Late, position.Blinds}
	textures := []classify.BoardTexture{classify.Dry, classify.Wet, classify.Paired, classify.Monotone}

	for name, table := range map[string]map[position.Tier]map[classify.HandCategory]triple{
		"rfi": rfiTable, "vs_raise": vsRaiseTable, "vs_limp": vsLimpTable,
	} {
		for _, tier := range tiers {
			row, ok := table[tier]
			if !ok {
				panic(fmt.Sprintf("strategy: %s table missing tier %s", name, tier))
			}
			mustCoverCategories(name, row)
		}
	}

	mustCoverCategories("vs_3bet", vs3BetTable)

	for name, table := range map[string]map[classify.BoardTexture]map[classify.HandCategory]triple{
		"cbet": cbetTable, "facing_cbet": facingCBetTable,
	} {
		for _, tex := range textures {
			row, ok := table[tex]
			if !ok {
				panic(fmt.Sprintf("strategy: %s table missing texture %s", name, tex))
			}
			mustCoverCategories(name, row)
		}
	}
}

func mustCoverCategories(name string, row map[classify.HandCategory]triple) {
	for _, cat := range classify.Categories {
		if _, ok := row[cat]; !ok {
			panic(fmt.Sprintf("strategy: %s table missing category %s", name, cat))
		}
	}
}
