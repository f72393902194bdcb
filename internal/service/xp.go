package service

// XPPerLevel is how many completions of a habit earn one level for each linked skill
const XPPerLevel = 5

// IsBoundaryXP reports whether reaching xp by a completion levels up the linked skills
func IsBoundaryXP(xp int) bool {
	return xp > 0 && xp%XPPerLevel == 0
}
