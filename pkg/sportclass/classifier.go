// Package sportclass infers a sport tag from the free-text fields of a
// bet. It is a deterministic pipeline of gazetteer lookups and keyword
// heuristics over immutable data; identical input text and date always
// produce the identical tag, and nothing here performs I/O.
package sportclass

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Posted-total thresholds for dual-sport college text. Football totals
// sit in the 30s-70s, basketball in the 120s-170s; the band between is
// a deliberate dead zone where the total decides nothing.
const (
	footballTotalCeiling = 80
	basketballTotalFloor = 110
)

var postedTotalPattern = regexp.MustCompile(`(?:OVER|UNDER|O/U|TOTAL)\s*([0-9]+(?:\.[0-9]+)?)`)

// Infer classifies the sport of a bet from its matchup and pick text,
// with the event date breaking college-season ties. A zero eventDate
// skips the seasonality check. Unmatched text resolves to SportOther;
// Infer never fails.
func Infer(matchup, pick string, eventDate time.Time) string {
	text := strings.ToUpper(matchup + " " + pick)

	if tag, ok := matchProFullName(text); ok {
		return tag
	}
	if tag, ok := matchNicknameOverride(text); ok {
		return tag
	}
	if tag, ok := matchProNickname(text); ok {
		return tag
	}
	if tag, ok := matchCollege(text, eventDate); ok {
		return tag
	}
	if tag, ok := matchKeywordSport(text); ok {
		return tag
	}
	return SportOther
}

// InferDated is Infer with the event date as a YYYY-MM-DD string, the
// format bets carry. Unparseable dates skip the seasonality check.
func InferDated(matchup, pick, date string) string {
	eventDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		eventDate = time.Time{}
	}
	return Infer(matchup, pick, eventDate)
}

func matchProFullName(text string) (string, bool) {
	for _, league := range proLeagues {
		for _, team := range league.teams {
			if containsWord(text, team) {
				return league.tag, true
			}
		}
	}
	return "", false
}

func matchNicknameOverride(text string) (string, bool) {
	for _, override := range nicknameOverrides {
		if !containsWord(text, override.nickname) {
			continue
		}
		for _, cue := range override.cues {
			if containsWord(text, cue) {
				return override.cueTag, true
			}
		}
		return override.fallback, true
	}
	return "", false
}

func matchProNickname(text string) (string, bool) {
	for _, league := range proLeagues {
		for _, nickname := range league.nicknames {
			if containsWord(text, nickname) {
				return league.tag, true
			}
		}
	}
	return "", false
}

func matchCollege(text string, eventDate time.Time) (string, bool) {
	football := anySchool(text, collegeFootballSchools)
	basketball := anySchool(text, collegeBasketballSchools)

	switch {
	case !football && !basketball:
		return "", false
	case football && !basketball:
		return SportNCAAF, true
	case basketball && !football:
		return SportNCAAB, true
	}

	// Dual-sport school. Try explicit cues, then the posted total, then
	// the time of year.
	if containsAny(text, collegeBasketballCues) {
		return SportNCAAB, true
	}
	if containsAny(text, collegeFootballCues) {
		return SportNCAAF, true
	}

	if total, ok := parsePostedTotal(text); ok {
		if total <= footballTotalCeiling {
			return SportNCAAF, true
		}
		if total >= basketballTotalFloor {
			return SportNCAAB, true
		}
	}

	if !eventDate.IsZero() {
		switch eventDate.Month() {
		case time.August, time.September, time.October:
			return SportNCAAF, true
		case time.January, time.February, time.March, time.April:
			return SportNCAAB, true
		}
		// November and December host both sports and decide nothing.
	}

	return SportNCAAB, true
}

func matchKeywordSport(text string) (string, bool) {
	for _, sport := range keywordSports {
		if containsAny(text, sport.cues) {
			return sport.tag, true
		}
	}
	return "", false
}

func anySchool(text string, schools []string) bool {
	for _, school := range schools {
		if containsWord(text, school) {
			return true
		}
	}
	return false
}

func containsAny(text string, cues []string) bool {
	for _, cue := range cues {
		if containsWord(text, cue) {
			return true
		}
	}
	return false
}

// parsePostedTotal extracts the first Over/Under number in the text
func parsePostedTotal(text string) (float64, bool) {
	match := postedTotalPattern.FindStringSubmatch(text)
	if match == nil {
		return 0, false
	}
	total, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, false
	}
	return total, true
}

// containsWord reports whether phrase occurs in text bounded by
// non-alphanumeric characters, so HAWKS does not fire inside
// BLACKHAWKS or SEAHAWKS. Both arguments are already uppercased.
func containsWord(text, phrase string) bool {
	for start := 0; ; {
		i := strings.Index(text[start:], phrase)
		if i < 0 {
			return false
		}
		i += start
		before := i == 0 || !isWordChar(text[i-1])
		after := i+len(phrase) >= len(text) || !isWordChar(text[i+len(phrase)])
		if before && after {
			return true
		}
		start = i + 1
	}
}

func isWordChar(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
