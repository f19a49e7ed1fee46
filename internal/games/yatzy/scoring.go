package yatzy

import "sort"

// Scores maps categories to points.
type Scores map[Category]int

// Clone returns an independent copy of s.
func (s Scores) Clone() Scores {
	if s == nil {
		return nil
	}
	out := make(Scores, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Fixed lower-section values.
const (
	SmallStraightPoints = 15
	LargeStraightPoints = 20
	YatzyPoints         = 50
)

// faceCounts returns counts indexed by face; index 0 is unused.
// Faces outside [1, 6] are not counted.
func faceCounts(faces [DiceCount]int) [MaxFace + 1]int {
	var counts [MaxFace + 1]int
	for _, f := range faces {
		if f >= MinFace && f <= MaxFace {
			counts[f]++
		}
	}
	return counts
}

// ComputeScores evaluates every selectable category for the given faces.
// It is pure: identical input always yields an identical result.
// Faces are expected to be in [1, 6].
func ComputeScores(faces [DiceCount]int) Scores {
	counts := faceCounts(faces)
	result := make(Scores, len(categoryTable)-1)

	for i, c := range upperFaces {
		face := i + 1
		result[c] = counts[face] * face
	}

	result[OnePair] = onePair(counts)
	result[TwoPairs] = twoPairs(counts)
	result[ThreeOfAKind] = ofAKind(counts, 3)
	result[FourOfAKind] = ofAKind(counts, 4)
	result[SmallStraight] = straight(counts, 1, SmallStraightPoints)
	result[LargeStraight] = straight(counts, 2, LargeStraightPoints)
	result[FullHouse] = fullHouse(counts)
	result[Chance] = chance(faces)
	result[Yatzy] = yatzy(counts)

	return result
}

// pairValues returns face*2 for every face with at least two dice,
// highest first. Three and four of a kind count as pairs too.
func pairValues(counts [MaxFace + 1]int) []int {
	var pairs []int
	for face := MinFace; face <= MaxFace; face++ {
		if counts[face] >= 2 {
			pairs = append(pairs, face*2)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(pairs)))
	return pairs
}

func onePair(counts [MaxFace + 1]int) int {
	pairs := pairValues(counts)
	if len(pairs) == 0 {
		return 0
	}
	return pairs[0]
}

func twoPairs(counts [MaxFace + 1]int) int {
	pairs := pairValues(counts)
	if len(pairs) < 2 {
		return 0
	}
	return pairs[0] + pairs[1]
}

// ofAKind scans faces 1..6 and scores the first with at least n dice.
func ofAKind(counts [MaxFace + 1]int, n int) int {
	for face := MinFace; face <= MaxFace; face++ {
		if counts[face] >= n {
			return face * n
		}
	}
	return 0
}

// straight scores points when every face from start to start+4 is present.
func straight(counts [MaxFace + 1]int, start, points int) int {
	for face := start; face < start+DiceCount; face++ {
		if counts[face] == 0 {
			return 0
		}
	}
	return points
}

func fullHouse(counts [MaxFace + 1]int) int {
	three, pair := 0, 0
	for face := MinFace; face <= MaxFace; face++ {
		switch counts[face] {
		case 3:
			three = face
		case 2:
			pair = face
		}
	}
	if three == 0 || pair == 0 {
		return 0
	}
	return three*3 + pair*2
}

func chance(faces [DiceCount]int) int {
	sum := 0
	for _, f := range faces {
		sum += f
	}
	return sum
}

func yatzy(counts [MaxFace + 1]int) int {
	for face := MinFace; face <= MaxFace; face++ {
		if counts[face] == DiceCount {
			return YatzyPoints
		}
	}
	return 0
}
