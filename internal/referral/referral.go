package referral

import (
	"strconv"
	"strings"
	"time"
)

// Code builds a referral code from a display name: the first
// whitespace-delimited token, lowercased, followed by the calendar year after
// now. Codes are generated once at registration and stored; they are never
// recomputed, even if the name later changes.
func Code(name string, now time.Time) string {
	base := strings.ToLower(strings.TrimSpace(name))
	if fields := strings.Fields(base); len(fields) > 0 {
		base = fields[0]
	} else {
		base = ""
	}
	return base + strconv.Itoa(now.Year()+1)
}

// Fallback is the code reported for a user with no stored profile.
func Fallback(now time.Time) string {
	return Code("default", now)
}
