package yatzy

import "fmt"

// Category is the key of a scoring slot on the sheet.
type Category string

const (
	Ones   Category = "ones"
	Twos   Category = "twos"
	Threes Category = "threes"
	Fours  Category = "fours"
	Fives  Category = "fives"
	Sixes  Category = "sixes"

	// Bonus is derived from the upper section and can never be selected.
	Bonus Category = "bonus"

	OnePair       Category = "onePair"
	TwoPairs      Category = "twoPairs"
	ThreeOfAKind  Category = "threeOfAKind"
	FourOfAKind   Category = "fourOfAKind"
	SmallStraight Category = "smallStraight"
	LargeStraight Category = "largeStraight"
	FullHouse     Category = "fullHouse"
	Chance        Category = "chance"
	Yatzy         Category = "yatzy"
)

// Section groups categories on the sheet.
type Section string

const (
	SectionUpper Section = "upper"
	SectionLower Section = "lower"
)

// CategoryInfo describes one row of the score sheet.
type CategoryInfo struct {
	Key     Category
	Label   string
	Section Section
	Derived bool // true only for Bonus
}

// Upper section thresholds.
const (
	UpperBonusThreshold = 63
	UpperBonusPoints    = 50
)

var categoryTable = []CategoryInfo{
	{Key: Ones, Label: "Ones", Section: SectionUpper},
	{Key: Twos, Label: "Twos", Section: SectionUpper},
	{Key: Threes, Label: "Threes", Section: SectionUpper},
	{Key: Fours, Label: "Fours", Section: SectionUpper},
	{Key: Fives, Label: "Fives", Section: SectionUpper},
	{Key: Sixes, Label: "Sixes", Section: SectionUpper},
	{Key: Bonus, Label: "Bonus (+50)", Section: SectionUpper, Derived: true},
	{Key: OnePair, Label: "One Pair", Section: SectionLower},
	{Key: TwoPairs, Label: "Two Pairs", Section: SectionLower},
	{Key: ThreeOfAKind, Label: "3 of a Kind", Section: SectionLower},
	{Key: FourOfAKind, Label: "4 of a Kind", Section: SectionLower},
	{Key: SmallStraight, Label: "Sm. Straight", Section: SectionLower},
	{Key: LargeStraight, Label: "Lg. Straight", Section: SectionLower},
	{Key: FullHouse, Label: "Full House", Section: SectionLower},
	{Key: Chance, Label: "Chance", Section: SectionLower},
	{Key: Yatzy, Label: "YATZY", Section: SectionLower},
}

// upperFaces maps the upper categories to the face they count.
var upperFaces = [...]Category{Ones, Twos, Threes, Fours, Fives, Sixes}

// Categories returns every row of the sheet in display order, Bonus included.
func Categories() []CategoryInfo {
	out := make([]CategoryInfo, len(categoryTable))
	copy(out, categoryTable)
	return out
}

// Selectable returns the categories a player can commit, in display order.
func Selectable() []Category {
	out := make([]Category, 0, len(categoryTable)-1)
	for _, c := range categoryTable {
		if !c.Derived {
			out = append(out, c.Key)
		}
	}
	return out
}

// UpperCategories returns ones through sixes.
func UpperCategories() []Category {
	out := make([]Category, len(upperFaces))
	copy(out, upperFaces[:])
	return out
}

// Info returns the descriptor for c.
func (c Category) Info() (CategoryInfo, bool) {
	for _, info := range categoryTable {
		if info.Key == c {
			return info, true
		}
	}
	return CategoryInfo{}, false
}

// Label returns the display label, or the raw key for unknown categories.
func (c Category) Label() string {
	if info, ok := c.Info(); ok {
		return info.Label
	}
	return string(c)
}

// IsUpper reports whether c is one of ones..sixes.
func (c Category) IsUpper() bool {
	for _, u := range upperFaces {
		if u == c {
			return true
		}
	}
	return false
}

// IsSelectable reports whether c can be committed by a player.
func (c Category) IsSelectable() bool {
	info, ok := c.Info()
	return ok && !info.Derived
}

// ParseCategory validates a selectable category key.
func ParseCategory(key string) (Category, error) {
	c := Category(key)
	if !c.IsSelectable() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, key)
	}
	return c, nil
}
