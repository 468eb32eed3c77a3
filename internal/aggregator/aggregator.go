// Package aggregator folds raw match records into per-player profiles.
package aggregator

import (
	"fmt"

	"rivalscomp/internal/heroes"
	"rivalscomp/internal/model"
)

// BuildProfile aggregates one player's match records into a PlayerProfile.
// Each hero gets a stats entry on first sight, classified through the
// injected role table; heroes the table does not know stay in the profile
// with RoleUnknown so they still count toward overall totals.
func BuildProfile(name string, records []model.MatchRecord, table *heroes.Table) (*model.PlayerProfile, error) {
	if table == nil {
		return nil, fmt.Errorf("nil role table")
	}

	profile := model.NewPlayerProfile(name)
	for _, rec := range records {
		hero := rec.Hero
		if hero == "" {
			hero = "Unknown"
			rec.Hero = hero
		}
		profile.AddMatch(rec, table.Role(hero))
	}
	return profile, nil
}
