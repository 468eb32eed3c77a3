package model

import "sort"

// Role classifies a hero into one of the three Marvel Rivals categories.
type Role int

const (
	RoleUnknown    Role = 0
	RoleVanguard   Role = 1
	RoleDuelist    Role = 2
	RoleStrategist Role = 3
)

func (r Role) String() string {
	switch r {
	case RoleVanguard:
		return "Vanguard"
	case RoleDuelist:
		return "Duelist"
	case RoleStrategist:
		return "Strategist"
	default:
		return "Unknown"
	}
}

// ParseRole maps a role label back to its Role value. Anything unrecognized
// is RoleUnknown.
func ParseRole(s string) Role {
	switch s {
	case "Vanguard":
		return RoleVanguard
	case "Duelist":
		return RoleDuelist
	case "Strategist":
		return RoleStrategist
	default:
		return RoleUnknown
	}
}

// KnownRoles lists the three playable roles in display order.
var KnownRoles = []Role{RoleVanguard, RoleDuelist, RoleStrategist}

// ---- Raw records emitted by the tracker export parser ----

// MatchRecord is one player's overview segment from a single match.
type MatchRecord struct {
	Hero          string
	Kills         int
	Deaths        int
	Assists       int
	DamageDealt   float64
	HealingDone   float64
	DamageBlocked float64
	TimePlayedMs  int64
	Won           bool
	IsMVP         bool
	IsSVP         bool
}

// ---- Aggregated metrics ----

// HeroStats is the per (player, hero) aggregate across all imported matches.
// All rates and the performance score are derived on read, never stored.
type HeroStats struct {
	Hero string
	Role Role

	GamesPlayed int
	Wins        int
	Losses      int

	TotalKills   int
	TotalDeaths  int
	TotalAssists int

	TotalDamage  float64
	TotalHealing float64
	TotalBlocked float64

	TotalTimePlayedMs int64

	MVPCount int
	SVPCount int
}

func (s *HeroStats) WinRate() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.GamesPlayed)
}

// KDA floors the death count at 1 so deathless samples stay finite.
func (s *HeroStats) KDA() float64 {
	deaths := s.TotalDeaths
	if deaths < 1 {
		deaths = 1
	}
	return float64(s.TotalKills+s.TotalAssists) / float64(deaths)
}

func (s *HeroStats) minutes() float64 {
	return float64(s.TotalTimePlayedMs) / 60000
}

func (s *HeroStats) DamagePerMin() float64 {
	if m := s.minutes(); m > 0 {
		return s.TotalDamage / m
	}
	return 0
}

func (s *HeroStats) HealingPerMin() float64 {
	if m := s.minutes(); m > 0 {
		return s.TotalHealing / m
	}
	return 0
}

func (s *HeroStats) BlockedPerMin() float64 {
	if m := s.minutes(); m > 0 {
		return s.TotalBlocked / m
	}
	return 0
}

// PerformanceScore is the composite desirability metric used for ranking:
// win rate (0–40), KDA capped at 5 (0–30), a role-specific output rate
// (0–30), plus an MVP/SVP bonus that can push the total past 100.
// Vanguards are valued for damage blocked, Strategists for healing, and
// everyone else for damage output.
func (s *HeroStats) PerformanceScore() float64 {
	score := s.WinRate() * 40

	kda := s.KDA()
	if kda > 5 {
		kda = 5
	}
	score += kda / 5 * 30

	switch s.Role {
	case RoleVanguard:
		score += cappedRatio(s.BlockedPerMin(), 3000) * 30
	case RoleStrategist:
		score += cappedRatio(s.HealingPerMin(), 2000) * 30
	default:
		score += cappedRatio(s.DamagePerMin(), 1500) * 30
	}

	games := s.GamesPlayed
	if games < 1 {
		games = 1
	}
	score += float64(s.MVPCount+s.SVPCount) / float64(games) * 5

	return score
}

func cappedRatio(v, limit float64) float64 {
	r := v / limit
	if r > 1 {
		return 1
	}
	return r
}

// PlayerProfile owns everything aggregated for one player. Built once by the
// aggregator, read-only afterwards.
type PlayerProfile struct {
	Name       string
	Heroes     map[string]*HeroStats
	TotalGames int
	TotalWins  int

	// Hero names in first-seen order; gives the ranked queries a stable
	// tie-break.
	heroOrder []string
}

func NewPlayerProfile(name string) *PlayerProfile {
	return &PlayerProfile{
		Name:   name,
		Heroes: make(map[string]*HeroStats),
	}
}

// AddMatch folds one match record into the profile. The hero's stats entry
// is created on first sight with the given role classification.
func (p *PlayerProfile) AddMatch(rec MatchRecord, role Role) {
	hs, ok := p.Heroes[rec.Hero]
	if !ok {
		hs = &HeroStats{Hero: rec.Hero, Role: role}
		p.Heroes[rec.Hero] = hs
		p.heroOrder = append(p.heroOrder, rec.Hero)
	}

	hs.GamesPlayed++
	if rec.Won {
		hs.Wins++
	} else {
		hs.Losses++
	}
	hs.TotalKills += rec.Kills
	hs.TotalDeaths += rec.Deaths
	hs.TotalAssists += rec.Assists
	hs.TotalDamage += rec.DamageDealt
	hs.TotalHealing += rec.HealingDone
	hs.TotalBlocked += rec.DamageBlocked
	hs.TotalTimePlayedMs += rec.TimePlayedMs
	if rec.IsMVP {
		hs.MVPCount++
	}
	if rec.IsSVP {
		hs.SVPCount++
	}

	p.TotalGames++
	if rec.Won {
		p.TotalWins++
	}
}

func (p *PlayerProfile) OverallWinRate() float64 {
	if p.TotalGames == 0 {
		return 0
	}
	return float64(p.TotalWins) / float64(p.TotalGames)
}

// RankedHero pairs a hero name with its stats in ranked query results.
type RankedHero struct {
	Hero  string
	Stats *HeroStats
}

// BestHeroesForRole returns the player's heroes of the given role with at
// least minGames played, sorted descending by performance score. Unknown-role
// heroes never appear in role-scoped results.
func (p *PlayerProfile) BestHeroesForRole(role Role, minGames int) []RankedHero {
	var out []RankedHero
	for _, name := range p.heroOrder {
		hs := p.Heroes[name]
		if hs.Role == role && hs.GamesPlayed >= minGames {
			out = append(out, RankedHero{Hero: name, Stats: hs})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Stats.PerformanceScore() > out[j].Stats.PerformanceScore()
	})
	return out
}

// TopHeroes returns the player's top n heroes across all roles (Unknown
// included) with at least minGames played, descending by performance score.
func (p *PlayerProfile) TopHeroes(n, minGames int) []RankedHero {
	var out []RankedHero
	for _, name := range p.heroOrder {
		hs := p.Heroes[name]
		if hs.GamesPlayed >= minGames {
			out = append(out, RankedHero{Hero: name, Stats: hs})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Stats.PerformanceScore() > out[j].Stats.PerformanceScore()
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// ---- Composition search output ----

// Assignment is one player's slot in a candidate composition.
type Assignment struct {
	Player string
	Hero   string
	Role   Role
}

// Candidate is one complete squad assignment: five players, five distinct
// heroes, and the summed performance score of the picks.
type Candidate struct {
	Score       float64
	Assignments []Assignment
}
