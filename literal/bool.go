package literal

// boolText is the closed spelling table. Only these exact case
// variants are boolean literals; anything else is a plain string.
var boolText = map[string]bool{
	"yes": true, "Yes": true, "YES": true,
	"no": false, "No": false, "NO": false,
	"true": true, "True": true, "TRUE": true,
	"false": false, "False": false, "FALSE": false,
	"on": true, "On": true, "ON": true,
	"off": false, "Off": false, "OFF": false,
}

func ParseBool(s string) (bool, bool) {
	v, ok := boolText[s]
	return v, ok
}

// IsBool reports whether s is one of the accepted boolean spellings.
func IsBool(s string) bool {
	_, ok := boolText[s]
	return ok
}
