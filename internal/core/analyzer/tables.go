package analyzer

import "regexp"

// commonPasswords holds known-weak literals, all lower case. Membership is
// a case-insensitive exact match against the candidate.
var commonPasswords = map[string]struct{}{
	"password": {}, "123456": {}, "12345678": {}, "qwerty": {}, "abc123": {},
	"monkey": {}, "1234567": {}, "letmein": {}, "trustno1": {}, "dragon": {},
	"baseball": {}, "iloveyou": {}, "master": {}, "sunshine": {}, "ashley": {},
	"bailey": {}, "passw0rd": {}, "shadow": {}, "123123": {}, "654321": {},
	"superman": {}, "qazwsx": {}, "michael": {}, "football": {}, "password1": {},
	"admin": {}, "welcome": {}, "login": {}, "princess": {}, "solo": {},
	"starwars": {}, "password123": {}, "qwerty123": {}, "hello": {}, "freedom": {},
}

// keyboardPatterns are adjacency runs matched as case-insensitive substrings.
var keyboardPatterns = []string{
	"qwerty", "asdfgh", "zxcvbn", "1qaz2wsx", "qwertyuiop",
	"asdfghjkl", "zxcvbnm", "123qwe", "qweasd",
}

// ascendingDigits matches runs of three consecutive ascending digits. The
// 890 alternative is intentional: the run wraps on the keyboard row.
var ascendingDigits = regexp.MustCompile(`012|123|234|345|456|567|678|789|890`)

// hasAscendingLetterRun reports three or more consecutive ascending letters
// in an already lower-cased string.
func hasAscendingLetterRun(lower string) bool {
	run := 1
	prev := rune(0)
	for _, r := range lower {
		if r >= 'b' && r <= 'z' && r == prev+1 {
			run++
			if run >= 3 {
				return true
			}
		} else {
			run = 1
		}
		prev = r
	}
	return false
}

// hasRepeatRun reports any character repeated three or more times in a row.
// Go's regexp has no backreferences, so this replaces `(.)\1{2,}`.
func hasRepeatRun(password string) bool {
	run := 1
	prev := rune(-1)
	for _, r := range password {
		if r == prev {
			run++
			if run >= 3 {
				return true
			}
		} else {
			run = 1
		}
		prev = r
	}
	return false
}
