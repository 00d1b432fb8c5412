package team

// Aliases maps source spellings to canonical team names, per consumer.
type Aliases struct {
	Match     map[string]string
	TopScorer map[string]string
}

// DefaultAliases returns fresh copies of the built-in alias tables. Match
// facts start with none; top scorer attributions carry known renamings and
// misspellings.
func DefaultAliases() Aliases {
	return Aliases{
		Match: map[string]string{},
		TopScorer: map[string]string{
			"Espérance de Tunis":       "Esperance Tunis",
			"Étoile du Sahel":          "Etoile du Sahel",
			"JS Métouia":               "JS Metlaoui",
			"OC Kerkennah":             "Océano Club Kerkennah",
			"Olympique des Transports": "SC Moknine",
			"Olympique du Kef":         "Jendouba Sport",
			"Sfax Railways Sports":     "SFAX RAIL",
			"Sfax Rail":                "SFAX RAIL",
			"Club de Hammam-Lif":       "CS Hammam-Lif",
			"Club Bizertin":            "CA Bizertin",
			"Olympique Béja":           "Olympique Beja",
			"Avenir de Marsa":          "Avenir Sportif de La Marsa",
			"Jeunesse Kairouanaise":    "JS Kairouan",
			"US Tunis":                 "US Tataouine",
			"Tunisia Haykel Guemamdia": "AS Gabès",
			"Tunisia Taieb Ben Zitoun": "AS Gabès",
		},
	}
}

// Merge overlays override entries on top of base and returns a new map.
func Merge(base, override map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}
