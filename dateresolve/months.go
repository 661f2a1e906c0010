package dateresolve

import "github.com/nrbnet/qfilter/field"

// monthNames maps case-folded English and German month names, both
// abbreviated and full, to their calendar number. German "ä"/"ae" spelling
// variants of März are both included.
var monthNames = map[string]int{
	"jan": 1, "january": 1, "januar": 1,
	"feb": 2, "february": 2, "februar": 2,
	"mar": 3, "march": 3, "mrz": 3, "maerz": 3, "märz": 3,
	"apr": 4, "april": 4,
	"may": 5, "mai": 5,
	"jun": 6, "june": 6, "juni": 6,
	"jul": 7, "july": 7, "juli": 7,
	"aug": 8, "august": 8,
	"sep": 9, "september": 9,
	"oct": 10, "october": 10, "okt": 10, "oktober": 10,
	"nov": 11, "november": 11,
	"dec": 12, "december": 12, "dez": 12, "dezember": 12,
}

func lookupMonth(token string) (int, bool) {
	m, ok := monthNames[field.FoldLower(token)]
	return m, ok
}
