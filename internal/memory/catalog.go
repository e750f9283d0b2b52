package memory

// Symbol identifies which tiles belong together. Exactly two tiles share a
// symbol in any dealt round.
type Symbol string

// Catalogue is the fixed, ordered symbol pool. A deal of n tiles always uses
// the first n/2 entries.
var Catalogue = []Symbol{
	"youtube",
	"snapchat",
	"twitter",
	"slack",
	"linkedin",
	"facebook",
	"reddit",
	"instagram",
}

// MaxTileCount is the largest board the catalogue can fill.
var MaxTileCount = len(Catalogue) * 2

var labels = map[Symbol]string{
	"youtube":   "YouTube",
	"snapchat":  "Snapchat",
	"twitter":   "Twitter",
	"slack":     "Slack",
	"linkedin":  "LinkedIn",
	"facebook":  "Facebook",
	"reddit":    "Reddit",
	"instagram": "Instagram",
}

// Label returns the display text for a symbol.
func (s Symbol) Label() string {
	if l, ok := labels[s]; ok {
		return l
	}
	return string(s)
}
