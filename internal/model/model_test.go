package model

import (
	"math"
	"testing"
)

// statsWith returns a one-game HeroStats with the given role and raw output
// numbers, so score terms can be computed by hand.
func statsWith(role Role, wins, losses, kills, deaths, assists int, perMinStat float64) *HeroStats {
	s := &HeroStats{
		Hero:              "X",
		Role:              role,
		GamesPlayed:       wins + losses,
		Wins:              wins,
		Losses:            losses,
		TotalKills:        kills,
		TotalDeaths:       deaths,
		TotalAssists:      assists,
		TotalTimePlayedMs: 60000, // one minute, so per-minute == total
	}
	switch role {
	case RoleVanguard:
		s.TotalBlocked = perMinStat
	case RoleStrategist:
		s.TotalHealing = perMinStat
	default:
		s.TotalDamage = perMinStat
	}
	return s
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// ---- Zero-sample behavior ----

func TestZeroGames_AllRatesZero(t *testing.T) {
	s := &HeroStats{Hero: "X", Role: RoleDuelist}

	if s.WinRate() != 0 {
		t.Errorf("WinRate: want 0, got %f", s.WinRate())
	}
	if s.KDA() != 0 {
		t.Errorf("KDA: want 0 (deaths floored at 1), got %f", s.KDA())
	}
	if s.DamagePerMin() != 0 || s.HealingPerMin() != 0 || s.BlockedPerMin() != 0 {
		t.Error("per-minute rates must be 0 with no time played")
	}
	if s.PerformanceScore() != 0 {
		t.Errorf("PerformanceScore: want 0, got %f", s.PerformanceScore())
	}
}

func TestKDA_DeathsFlooredAtOne(t *testing.T) {
	s := &HeroStats{TotalKills: 7, TotalAssists: 3, TotalDeaths: 0}
	if s.KDA() != 10 {
		t.Errorf("deathless KDA: want 10, got %f", s.KDA())
	}
}

// ---- Score composition ----

// TestPerformanceScore_Exact: win rate 0.5 → 20, KDA 2.5 → 15, Duelist at
// 750 dmg/min (half of the 1500 cap) → 15, one MVP over two games → 2.5.
func TestPerformanceScore_Exact(t *testing.T) {
	s := statsWith(RoleDuelist, 1, 1, 4, 2, 1, 0)
	s.TotalTimePlayedMs = 120000 // two games, two minutes
	s.TotalDamage = 1500         // 750/min
	s.MVPCount = 1

	got := math.Round(s.PerformanceScore()*100) / 100
	if got != 52.50 {
		t.Errorf("PerformanceScore: want 52.50, got %.2f", got)
	}
}

func TestPerformanceScore_KDACappedAtFive(t *testing.T) {
	base := statsWith(RoleDuelist, 1, 0, 25, 5, 0, 0) // KDA exactly 5
	more := statsWith(RoleDuelist, 1, 0, 50, 5, 0, 0) // KDA 10, capped

	if !almostEqual(base.PerformanceScore(), more.PerformanceScore()) {
		t.Errorf("KDA above the cap must not raise the score: %f vs %f",
			base.PerformanceScore(), more.PerformanceScore())
	}
}

func TestPerformanceScore_RoleTermSelection(t *testing.T) {
	// Identical raw numbers; only the role decides which stat scores.
	v := statsWith(RoleVanguard, 1, 0, 0, 1, 0, 3000)   // blocked at cap → +30
	st := statsWith(RoleStrategist, 1, 0, 0, 1, 0, 2000) // healing at cap → +30
	d := statsWith(RoleDuelist, 1, 0, 0, 1, 0, 1500)     // damage at cap → +30
	u := statsWith(RoleUnknown, 1, 0, 0, 1, 0, 1500)     // Unknown scores like a Duelist

	for name, s := range map[string]*HeroStats{"vanguard": v, "strategist": st, "duelist": d, "unknown": u} {
		if !almostEqual(s.PerformanceScore(), 70) {
			t.Errorf("%s at role cap: want 70, got %f", name, s.PerformanceScore())
		}
	}

	// A Vanguard's damage output contributes nothing.
	offRole := statsWith(RoleVanguard, 1, 0, 0, 1, 0, 0)
	offRole.TotalDamage = 5000
	if !almostEqual(offRole.PerformanceScore(), 40) {
		t.Errorf("vanguard damage must not score: want 40, got %f", offRole.PerformanceScore())
	}
}

// TestPerformanceScore_Monotonic: each term is non-decreasing up to its cap,
// other terms held fixed.
func TestPerformanceScore_Monotonic(t *testing.T) {
	for wr := 0; wr <= 10; wr++ {
		lo := statsWith(RoleDuelist, wr, 10-wr, 0, 1, 0, 0)
		hi := statsWith(RoleDuelist, wr+1, 10-wr, 0, 1, 0, 0)
		if hi.PerformanceScore() < lo.PerformanceScore() {
			t.Fatalf("score decreased with win rate at wins=%d", wr)
		}
	}
	for kills := 0; kills < 25; kills++ {
		lo := statsWith(RoleDuelist, 1, 0, kills, 5, 0, 0)
		hi := statsWith(RoleDuelist, 1, 0, kills+1, 5, 0, 0)
		if hi.PerformanceScore() < lo.PerformanceScore() {
			t.Fatalf("score decreased with KDA at kills=%d", kills)
		}
	}
	for dmg := 0.0; dmg < 1500; dmg += 100 {
		lo := statsWith(RoleDuelist, 1, 0, 0, 1, 0, dmg)
		hi := statsWith(RoleDuelist, 1, 0, 0, 1, 0, dmg+100)
		if hi.PerformanceScore() < lo.PerformanceScore() {
			t.Fatalf("score decreased with damage at %f", dmg)
		}
	}
}

// ---- Profile aggregation and queries ----

func record(hero string, won bool) MatchRecord {
	return MatchRecord{
		Hero:         hero,
		Kills:        5,
		Deaths:       2,
		Assists:      3,
		DamageDealt:  4000,
		TimePlayedMs: 300000,
		Won:          won,
	}
}

func TestAddMatch_Invariants(t *testing.T) {
	p := NewPlayerProfile("cap")
	p.AddMatch(record("Hela", true), RoleDuelist)
	p.AddMatch(record("Hela", false), RoleDuelist)
	p.AddMatch(record("Thor", true), RoleVanguard)

	hela := p.Heroes["Hela"]
	if hela.GamesPlayed != hela.Wins+hela.Losses {
		t.Errorf("games != wins+losses: %d vs %d+%d", hela.GamesPlayed, hela.Wins, hela.Losses)
	}
	if hela.GamesPlayed != 2 || hela.Wins != 1 {
		t.Errorf("Hela: want 2 games 1 win, got %d games %d wins", hela.GamesPlayed, hela.Wins)
	}
	if p.TotalGames != 3 || p.TotalWins != 2 {
		t.Errorf("profile totals: want 3/2, got %d/%d", p.TotalGames, p.TotalWins)
	}
	if !almostEqual(p.OverallWinRate(), 2.0/3.0) {
		t.Errorf("OverallWinRate: want 0.667, got %f", p.OverallWinRate())
	}
}

func TestBestHeroesForRole_FiltersRoleAndMinGames(t *testing.T) {
	p := NewPlayerProfile("cap")
	for i := 0; i < 3; i++ {
		p.AddMatch(record("Hela", true), RoleDuelist)
	}
	p.AddMatch(record("Storm", true), RoleDuelist)     // below min games
	p.AddMatch(record("Thor", true), RoleVanguard)     // wrong role
	p.AddMatch(record("Mystery", true), RoleUnknown)   // unknown role

	got := p.BestHeroesForRole(RoleDuelist, 2)
	if len(got) != 1 || got[0].Hero != "Hela" {
		t.Fatalf("want [Hela], got %+v", got)
	}
}

func TestBestHeroesForRole_SortedDescending(t *testing.T) {
	p := NewPlayerProfile("cap")
	// Storm: 1 win 1 loss; Hela: 2 wins. Hela must rank first.
	p.AddMatch(record("Storm", true), RoleDuelist)
	p.AddMatch(record("Storm", false), RoleDuelist)
	p.AddMatch(record("Hela", true), RoleDuelist)
	p.AddMatch(record("Hela", true), RoleDuelist)

	got := p.BestHeroesForRole(RoleDuelist, 2)
	if len(got) != 2 {
		t.Fatalf("want 2 heroes, got %d", len(got))
	}
	if got[0].Hero != "Hela" || got[1].Hero != "Storm" {
		t.Errorf("want [Hela Storm], got [%s %s]", got[0].Hero, got[1].Hero)
	}
}

func TestTopHeroes_CrossRoleAndLimit(t *testing.T) {
	p := NewPlayerProfile("cap")
	p.AddMatch(record("Hela", true), RoleDuelist)
	p.AddMatch(record("Thor", true), RoleVanguard)
	p.AddMatch(record("Loki", true), RoleStrategist)
	p.AddMatch(record("Mystery", true), RoleUnknown)

	got := p.TopHeroes(2, 1)
	if len(got) != 2 {
		t.Fatalf("want 2 heroes, got %d", len(got))
	}

	// Unknown-role heroes do participate in the global query.
	all := p.TopHeroes(10, 1)
	if len(all) != 4 {
		t.Errorf("want all 4 heroes, got %d", len(all))
	}
}

func TestTopHeroes_EmptyIsNotAnError(t *testing.T) {
	p := NewPlayerProfile("cap")
	if got := p.TopHeroes(5, 1); len(got) != 0 {
		t.Errorf("want empty result, got %+v", got)
	}
}
