package entity

// SkillCap returns the level a skill is currently climbing towards.
// Caps go 10, 30, 100 and then every next hundred.
func SkillCap(level int) int {
	switch {
	case level < 10:
		return 10
	case level < 30:
		return 30
	case level < 100:
		return 100
	}
	return 100 + ((level-100)/100+1)*100
}

func previousCap(tierCap int) int {
	switch tierCap {
	case 10:
		return 0
	case 30:
		return 10
	case 100:
		return 30
	}
	return tierCap - 100
}

// SkillProgress is the percent of the current tier already covered by level
func SkillProgress(level int) float64 {
	tierCap := SkillCap(level)
	prev := previousCap(tierCap)
	return float64(level-prev) / float64(tierCap-prev) * 100
}

// WithTier fills the derived tier fields of the skill
func (s *Skill) WithTier() *Skill {
	s.Cap = SkillCap(s.Level)
	s.Progress = SkillProgress(s.Level)
	return s
}
