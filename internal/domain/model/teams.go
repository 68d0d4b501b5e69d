package model

import "strings"

// canonicalTeams maps lowercased current franchise names to their
// official casing.
var canonicalTeams = map[string]string{
	"chennai super kings":         "Chennai Super Kings",
	"delhi capitals":              "Delhi Capitals",
	"gujarat titans":              "Gujarat Titans",
	"kolkata knight riders":       "Kolkata Knight Riders",
	"lucknow super giants":        "Lucknow Super Giants",
	"mumbai indians":              "Mumbai Indians",
	"punjab kings":                "Punjab Kings",
	"rajasthan royals":            "Rajasthan Royals",
	"rising pune supergiants":     "Rising Pune Supergiants",
	"royal challengers bangalore": "Royal Challengers Bangalore",
	"sunrisers hyderabad":         "Sunrisers Hyderabad",
}

// teamAliases maps lowercased historical or misspelled names to the
// franchise each one became. The dataset spans renames (Daredevils ->
// Capitals, Kings XI -> Punjab Kings) and a few typo variants.
var teamAliases = map[string]string{
	"delhi daredevils":            "Delhi Capitals",
	"deccan chargers":             "Sunrisers Hyderabad",
	"kings xi punjab":             "Punjab Kings",
	"royal challengers bengaluru": "Royal Challengers Bangalore",
	"rising pune supergiant":      "Rising Pune Supergiants",
	"rising pune supergaints":     "Rising Pune Supergiants",
	"pune warriors":               "Rising Pune Supergiants",
	"gujarat lions":               "Gujarat Titans",
}

// CanonicalTeam normalizes a raw team name from the dataset: trims,
// resolves renamed franchises through the alias table, and returns the
// official casing. Unknown names pass through title-cased so that
// aggregates still group them consistently.
func CanonicalTeam(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return ""
	}
	if alias, ok := teamAliases[key]; ok {
		return alias
	}
	if canonical, ok := canonicalTeams[key]; ok {
		return canonical
	}
	return titleCase(key)
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
