package livetiming

import "strings"

var sessionCodes = map[string]string{
	"practice 1": "FP1",
	"practice 2": "FP2",
	"practice 3": "FP3",
	"fp1":        "FP1",
	"fp2":        "FP2",
	"fp3":        "FP3",
	"qualifying": "Q",
	"q":          "Q",
	"sprint":     "S",
	"s":          "S",
	"race":       "R",
	"r":          "R",
}

var sessionNames = map[string]string{
	"FP1": "Practice 1",
	"FP2": "Practice 2",
	"FP3": "Practice 3",
	"Q":   "Qualifying",
	"S":   "Sprint",
	"R":   "Race",
}

// SessionCode maps a human session name (or an API code) to the API
// code, e.g. "Practice 1" -> FP1, "Qualifying" -> Q.
func SessionCode(session string) (string, bool) {
	code, ok := sessionCodes[strings.ToLower(strings.TrimSpace(session))]
	return code, ok
}

// SessionName is the inverse of SessionCode for display purposes.
func SessionName(code string) string {
	if name, ok := sessionNames[code]; ok {
		return name
	}
	return code
}

// SessionNames lists the selectable session types in weekend order.
func SessionNames() []string {
	return []string{"Practice 1", "Practice 2", "Practice 3", "Qualifying", "Sprint", "Race"}
}
