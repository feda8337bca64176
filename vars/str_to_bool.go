package vars

import "strings"

// StrToBool parses the loose boolean spellings accepted on the
// command line. Anything unrecognized is false.
func StrToBool(str string) bool {
	switch strings.ToLower(str) {
	case "true", "t", "yes", "y":
		return true
	}
	return false
}
