package domain

type Player struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	BirthYear *int   `json:"birth_year"`
	MBTI      string `json:"mbti"`
	Location  string `json:"location"`
}

// NormalizeBirthYear expands a two digit birth year the way the old
// importer did: values above 20 are 1900s, the rest 2000s. Four digit
// values pass through untouched.
func NormalizeBirthYear(year int) int {
	if year >= 1000 {
		return year
	}
	if year > 20 {
		return 1900 + year
	}
	return 2000 + year
}
