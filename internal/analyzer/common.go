package analyzer

import "strings"

// commonPasswords is the static weak-password reference set. Matching is
// case-insensitive; entries are stored lowercase.
var commonPasswords = map[string]struct{}{}

func init() {
	for _, p := range []string{
		"password", "123456", "12345678", "qwerty", "abc123", "monkey",
		"1234567890", "letmein", "trustno1", "dragon", "baseball", "111111",
		"iloveyou", "master", "sunshine", "ashley", "bailey", "passw0rd",
		"shadow", "123123", "654321", "superman", "qazwsx", "michael",
		"football", "password1", "admin", "welcome", "login", "test",
		"charlie", "jordan", "freedom", "family", "robert", "thomas",
		"hockey", "ranger", "daniel", "pantera", "tigger", "doctor",
		"gateway", "guestgue", "internet", "service", "eternal",
		"smiles", "local", "biteme", "2000", "chelsea", "access",
		"yankees", "987654321", "dallas", "austin", "thunder", "taylor",
	} {
		commonPasswords[p] = struct{}{}
	}
}

// minPrefixLen is the shortest set entry considered for prefix matching.
const minPrefixLen = 4

// CommonMatch describes how a password matched the weak-password set.
type CommonMatch struct {
	IsCommon bool

	// Match is the set entry that matched, for derived and prefix matches.
	Match string

	// Feedback is the human-readable explanation of the match.
	Feedback string
}

// CheckCommon tests the password against the weak-password set. Three
// checks run in order, first match wins: exact membership, membership
// after stripping a trailing run of digits/specials, and prefix match
// against any entry of length >= 4. Prefix matching iterates the whole
// set; when several entries are prefixes, any one of them may be reported.
func CheckCommon(password string) CommonMatch {
	lower := strings.ToLower(password)

	if _, ok := commonPasswords[lower]; ok {
		return CommonMatch{
			IsCommon: true,
			Match:    lower,
			Feedback: "This is a common password - easily cracked",
		}
	}

	base := stripTrailingDigitsSpecials(lower)
	if base != lower {
		if _, ok := commonPasswords[base]; ok {
			return CommonMatch{
				IsCommon: true,
				Match:    base,
				Feedback: "Based on common password " + quote(base) + " - still weak",
			}
		}
	}

	for entry := range commonPasswords {
		if len(entry) >= minPrefixLen && strings.HasPrefix(lower, entry) {
			return CommonMatch{
				IsCommon: true,
				Match:    entry,
				Feedback: "Starts with common password " + quote(entry) + " - predictable",
			}
		}
	}

	return CommonMatch{Feedback: "Not found in common passwords database"}
}

// stripTrailingDigitsSpecials removes the trailing run of digits and
// special characters, catching variants like "password123!".
func stripTrailingDigitsSpecials(s string) string {
	end := len(s)
	for end > 0 {
		c := s[end-1]
		if (c >= '0' && c <= '9') || strings.IndexByte(SpecialChars, c) >= 0 {
			end--
			continue
		}
		break
	}
	return s[:end]
}

func quote(s string) string {
	return "'" + s + "'"
}
