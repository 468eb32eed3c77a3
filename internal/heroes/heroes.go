// Package heroes holds the static hero → role classification table.
package heroes

import "rivalscomp/internal/model"

// Table is an immutable hero-name → role lookup. Construct it once at
// startup and pass it to the aggregator; it is never mutated afterwards.
type Table struct {
	roles map[string]model.Role
}

// Role classifies a hero name. Aliases and case variants resolve to the same
// role; anything not in the table is RoleUnknown.
func (t *Table) Role(hero string) model.Role {
	return t.roles[hero]
}

// Contains reports whether the hero name is in the table.
func (t *Table) Contains(hero string) bool {
	_, ok := t.roles[hero]
	return ok
}

// Standard returns the Season 5 roster classification, including the known
// alternate display names tracker.gg has used for the same hero.
func Standard() *Table {
	return &Table{roles: map[string]model.Role{
		// Vanguards
		"Angela":          model.RoleVanguard,
		"Bruce Banner":    model.RoleVanguard,
		"Hulk":            model.RoleVanguard, // alias
		"Captain America": model.RoleVanguard,
		"Doctor Strange":  model.RoleVanguard,
		"Groot":           model.RoleVanguard,
		"Magneto":         model.RoleVanguard,
		"Peni Parker":     model.RoleVanguard,
		"Thor":            model.RoleVanguard,
		"Venom":           model.RoleVanguard,
		"The Thing":       model.RoleVanguard,
		"Thing":           model.RoleVanguard, // alias

		// Duelists
		"Black Panther":    model.RoleDuelist,
		"Black Widow":      model.RoleDuelist,
		"Blade":            model.RoleDuelist,
		"Daredevil":        model.RoleDuelist,
		"Hawkeye":          model.RoleDuelist,
		"Hela":             model.RoleDuelist,
		"Human Torch":      model.RoleDuelist,
		"Iron Fist":        model.RoleDuelist,
		"Iron Man":         model.RoleDuelist,
		"Magik":            model.RoleDuelist,
		"Mister Fantastic": model.RoleDuelist,
		"Mr. Fantastic":    model.RoleDuelist, // alias
		"Moon Knight":      model.RoleDuelist,
		"Namor":            model.RoleDuelist,
		"Phoenix":          model.RoleDuelist,
		"Psylocke":         model.RoleDuelist,
		"Scarlet Witch":    model.RoleDuelist,
		"Spider-Man":       model.RoleDuelist,
		"Spiderman":        model.RoleDuelist, // alias
		"Squirrel Girl":    model.RoleDuelist,
		"Star-Lord":        model.RoleDuelist,
		"Storm":            model.RoleDuelist,
		"The Punisher":     model.RoleDuelist,
		"Punisher":         model.RoleDuelist, // alias
		"Winter Soldier":   model.RoleDuelist,
		"Wolverine":        model.RoleDuelist,
		"Emma Frost":       model.RoleDuelist,
		"Rogue":            model.RoleDuelist,

		// Strategists
		"Adam Warlock":        model.RoleStrategist,
		"Cloak & Dagger":      model.RoleStrategist,
		"Cloak and Dagger":    model.RoleStrategist, // alias
		"Invisible Woman":     model.RoleStrategist,
		"Jeff the Land Shark": model.RoleStrategist,
		"Jeff The Land Shark": model.RoleStrategist, // case variant
		"Jeff":                model.RoleStrategist, // alias
		"Loki":                model.RoleStrategist,
		"Luna Snow":           model.RoleStrategist,
		"Mantis":              model.RoleStrategist,
		"Rocket Raccoon":      model.RoleStrategist,
		"Rocket":              model.RoleStrategist, // alias
		"Gambit":              model.RoleStrategist,
		"Ultron":              model.RoleStrategist,
	}}
}
