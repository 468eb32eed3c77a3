package cmd

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"rivalscomp/internal/lineup"
	"rivalscomp/internal/model"
	"rivalscomp/internal/report"
	"rivalscomp/internal/storage"
)

var (
	exportOut      string
	exportMinGames int
	exportTopN     int
)

// dashboardFile is the top-level JSON schema consumed by the rivals
// dashboard frontend. Role keys are lowercase role names throughout.
type dashboardFile struct {
	SquadSummary dashboardSquadSummary             `json:"squadSummary"`
	Players      []dashboardPlayer                 `json:"players"`
	Compositions []dashboardComposition            `json:"compositions"`
	HeroStats    []dashboardHero                   `json:"heroStats"`
	RoleCoverage map[string]dashboardCoverage      `json:"roleCoverage"`
	Leaderboard  map[string][]dashboardLeaderEntry `json:"leaderboard"`
}

type dashboardSquadSummary struct {
	TotalGames  int     `json:"totalGames"`
	TotalWins   int     `json:"totalWins"`
	WinRate     float64 `json:"winRate"`
	TotalMVPs   int     `json:"totalMvps"`
	TotalSVPs   int     `json:"totalSvps"`
	PlayerCount int     `json:"playerCount"`
}

type dashboardTopHero struct {
	Name             string  `json:"name"`
	Role             string  `json:"role"`
	GamesPlayed      int     `json:"gamesPlayed"`
	WinRate          float64 `json:"winRate"`
	KDA              float64 `json:"kda"`
	PerformanceScore float64 `json:"performanceScore"`
	AvgDamage        float64 `json:"avgDamage"`
	AvgHealing       float64 `json:"avgHealing"`
	AvgBlocked       float64 `json:"avgBlocked"`
	MVPCount         int     `json:"mvpCount"`
	SVPCount         int     `json:"svpCount"`
}

type dashboardHeroLine struct {
	Name             string  `json:"name"`
	GamesPlayed      int     `json:"gamesPlayed"`
	WinRate          float64 `json:"winRate"`
	KDA              float64 `json:"kda"`
	PerformanceScore float64 `json:"performanceScore"`
}

type dashboardPlayer struct {
	Name          string                         `json:"name"`
	TotalGames    int                            `json:"totalGames"`
	TotalWins     int                            `json:"totalWins"`
	WinRate       float64                        `json:"winRate"`
	PrimaryRole   string                         `json:"primaryRole,omitempty"`
	SecondaryRole string                         `json:"secondaryRole,omitempty"`
	RoleScores    map[string]float64             `json:"roleScores"`
	TopHeroes     []dashboardTopHero             `json:"topHeroes"`
	HeroBreakdown map[string][]dashboardHeroLine `json:"heroBreakdown"`
}

type dashboardAssignment struct {
	Player string `json:"player"`
	Hero   string `json:"hero"`
	Role   string `json:"role"`
}

type dashboardComposition struct {
	Score       float64               `json:"score"`
	Assignments []dashboardAssignment `json:"assignments"`
}

type dashboardHeroPlayer struct {
	Name             string  `json:"name"`
	GamesPlayed      int     `json:"gamesPlayed"`
	WinRate          float64 `json:"winRate"`
	PerformanceScore float64 `json:"performanceScore"`
}

type dashboardHero struct {
	Name       string                `json:"name"`
	Role       string                `json:"role"`
	TotalGames int                   `json:"totalGames"`
	TotalWins  int                   `json:"totalWins"`
	WinRate    float64               `json:"winRate"`
	Players    []dashboardHeroPlayer `json:"players"`
}

type dashboardCoverage struct {
	Count   int      `json:"count"`
	Players []string `json:"players"`
}

type dashboardLeaderEntry struct {
	Name    string  `json:"name"`
	Value   float64 `json:"value"`
	Games   int     `json:"games,omitempty"`
	Kills   int     `json:"kills,omitempty"`
	Deaths  int     `json:"deaths,omitempty"`
	Assists int     `json:"assists,omitempty"`
	Total   float64 `json:"total,omitempty"`
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export squad stats as dashboard JSON",
	Long: `Build the pre-computed stats.json consumed by the rivals dashboard:
squad summary, per-player profiles, recommended compositions, per-hero
aggregates, role coverage, and leaderboards.

Example:
  rivalscomp export --out rivals-dashboard/public/data/stats.json`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file path (default: stdout)")
	exportCmd.Flags().IntVar(&exportMinGames, "min-games", 2, "minimum games on a hero to consider it")
	exportCmd.Flags().IntVar(&exportTopN, "top", lineup.DefaultTopN, "number of compositions to include")
}

func runExport(_ *cobra.Command, _ []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	profiles, err := loadProfiles(db)
	if err != nil {
		return err
	}
	if len(profiles) == 0 {
		return fmt.Errorf("no players imported: run 'rivalscomp import <export.json>' first")
	}

	out := dashboardFile{
		SquadSummary: buildSquadSummary(profiles),
		Players:      buildDashboardPlayers(profiles),
		Compositions: buildDashboardCompositions(profiles),
		HeroStats:    buildDashboardHeroes(profiles),
		RoleCoverage: buildRoleCoverage(profiles),
		Leaderboard:  buildLeaderboard(profiles),
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal dashboard data: %w", err)
	}

	if exportOut == "" {
		fmt.Fprintln(os.Stdout, string(data))
		return nil
	}
	if err := os.WriteFile(exportOut, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", exportOut, err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s (%.1f KB)\n", exportOut, float64(len(data))/1024)
	return nil
}

func buildSquadSummary(profiles []*model.PlayerProfile) dashboardSquadSummary {
	s := dashboardSquadSummary{PlayerCount: len(profiles)}
	for _, p := range profiles {
		s.TotalGames += p.TotalGames
		s.TotalWins += p.TotalWins
		for _, hs := range p.Heroes {
			s.TotalMVPs += hs.MVPCount
			s.TotalSVPs += hs.SVPCount
		}
	}
	if s.TotalGames > 0 {
		s.WinRate = round1(float64(s.TotalWins) / float64(s.TotalGames) * 100)
	}
	return s
}

func buildDashboardPlayers(profiles []*model.PlayerProfile) []dashboardPlayer {
	out := make([]dashboardPlayer, 0, len(profiles))
	for _, p := range profiles {
		dp := dashboardPlayer{
			Name:          p.Name,
			TotalGames:    p.TotalGames,
			TotalWins:     p.TotalWins,
			WinRate:       round1(p.OverallWinRate() * 100),
			RoleScores:    make(map[string]float64, len(model.KnownRoles)),
			HeroBreakdown: make(map[string][]dashboardHeroLine, len(model.KnownRoles)),
		}

		type scored struct {
			role  model.Role
			score float64
		}
		var scores []scored
		for _, role := range model.KnownRoles {
			s := report.RoleScore(p, role, exportMinGames)
			dp.RoleScores[roleKey(role)] = round1(s)
			if s > 0 {
				scores = append(scores, scored{role, s})
			}
		}
		sort.SliceStable(scores, func(i, j int) bool { return scores[i].score > scores[j].score })
		if len(scores) > 0 {
			dp.PrimaryRole = roleKey(scores[0].role)
		}
		if len(scores) > 1 {
			dp.SecondaryRole = roleKey(scores[1].role)
		}

		for _, rh := range p.TopHeroes(5, exportMinGames) {
			dp.TopHeroes = append(dp.TopHeroes, dashboardTopHero{
				Name:             rh.Hero,
				Role:             roleKey(rh.Stats.Role),
				GamesPlayed:      rh.Stats.GamesPlayed,
				WinRate:          round1(rh.Stats.WinRate() * 100),
				KDA:              round2(rh.Stats.KDA()),
				PerformanceScore: round1(rh.Stats.PerformanceScore()),
				AvgDamage:        math.Round(rh.Stats.DamagePerMin()),
				AvgHealing:       math.Round(rh.Stats.HealingPerMin()),
				AvgBlocked:       math.Round(rh.Stats.BlockedPerMin()),
				MVPCount:         rh.Stats.MVPCount,
				SVPCount:         rh.Stats.SVPCount,
			})
		}

		for _, role := range model.KnownRoles {
			key := roleKey(role)
			dp.HeroBreakdown[key] = []dashboardHeroLine{}
			for _, rh := range p.BestHeroesForRole(role, 1) {
				dp.HeroBreakdown[key] = append(dp.HeroBreakdown[key], dashboardHeroLine{
					Name:             rh.Hero,
					GamesPlayed:      rh.Stats.GamesPlayed,
					WinRate:          round1(rh.Stats.WinRate() * 100),
					KDA:              round2(rh.Stats.KDA()),
					PerformanceScore: round1(rh.Stats.PerformanceScore()),
				})
			}
		}

		out = append(out, dp)
	}
	return out
}

func buildDashboardCompositions(profiles []*model.PlayerProfile) []dashboardComposition {
	candidates := lineup.Search(profiles, exportMinGames, exportTopN)

	out := make([]dashboardComposition, 0, len(candidates))
	for _, c := range candidates {
		comp := dashboardComposition{Score: round1(c.Score)}
		for _, role := range model.KnownRoles {
			for _, a := range c.Assignments {
				if a.Role == role {
					comp.Assignments = append(comp.Assignments, dashboardAssignment{
						Player: a.Player,
						Hero:   a.Hero,
						Role:   roleKey(role),
					})
				}
			}
		}
		out = append(out, comp)
	}
	return out
}

func buildDashboardHeroes(profiles []*model.PlayerProfile) []dashboardHero {
	byName := make(map[string]*dashboardHero)
	for _, p := range profiles {
		for _, rh := range p.TopHeroes(len(p.Heroes), 1) {
			h := byName[rh.Hero]
			if h == nil {
				h = &dashboardHero{Name: rh.Hero, Role: roleKey(rh.Stats.Role)}
				byName[rh.Hero] = h
			}
			h.TotalGames += rh.Stats.GamesPlayed
			h.TotalWins += rh.Stats.Wins
			h.Players = append(h.Players, dashboardHeroPlayer{
				Name:             p.Name,
				GamesPlayed:      rh.Stats.GamesPlayed,
				WinRate:          round1(rh.Stats.WinRate() * 100),
				PerformanceScore: round1(rh.Stats.PerformanceScore()),
			})
		}
	}

	out := make([]dashboardHero, 0, len(byName))
	for _, h := range byName {
		if h.TotalGames > 0 {
			h.WinRate = round1(float64(h.TotalWins) / float64(h.TotalGames) * 100)
		}
		sort.SliceStable(h.Players, func(i, j int) bool {
			return h.Players[i].PerformanceScore > h.Players[j].PerformanceScore
		})
		out = append(out, *h)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalGames != out[j].TotalGames {
			return out[i].TotalGames > out[j].TotalGames
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func buildRoleCoverage(profiles []*model.PlayerProfile) map[string]dashboardCoverage {
	out := make(map[string]dashboardCoverage, len(model.KnownRoles))
	for _, role := range model.KnownRoles {
		cov := dashboardCoverage{Players: []string{}}
		for _, p := range profiles {
			if len(p.BestHeroesForRole(role, 3)) > 0 {
				cov.Count++
				cov.Players = append(cov.Players, p.Name)
			}
		}
		out[roleKey(role)] = cov
	}
	return out
}

func buildLeaderboard(profiles []*model.PlayerProfile) map[string][]dashboardLeaderEntry {
	boards := map[string][]dashboardLeaderEntry{
		"winRate": {}, "kda": {}, "damage": {}, "healing": {}, "blocked": {},
	}

	for _, p := range profiles {
		if p.TotalGames == 0 {
			continue
		}
		var kills, deaths, assists int
		var timeMs int64
		var damage, healing, blocked float64
		for _, hs := range p.Heroes {
			kills += hs.TotalKills
			deaths += hs.TotalDeaths
			assists += hs.TotalAssists
			timeMs += hs.TotalTimePlayedMs
			damage += hs.TotalDamage
			healing += hs.TotalHealing
			blocked += hs.TotalBlocked
		}
		minutes := float64(timeMs) / 60000
		if minutes <= 0 {
			minutes = 1
		}
		d := deaths
		if d < 1 {
			d = 1
		}

		boards["winRate"] = append(boards["winRate"], dashboardLeaderEntry{
			Name: p.Name, Value: round1(p.OverallWinRate() * 100), Games: p.TotalGames,
		})
		boards["kda"] = append(boards["kda"], dashboardLeaderEntry{
			Name: p.Name, Value: round2(float64(kills+assists) / float64(d)),
			Kills: kills, Deaths: deaths, Assists: assists,
		})
		boards["damage"] = append(boards["damage"], dashboardLeaderEntry{
			Name: p.Name, Value: math.Round(damage / minutes), Total: math.Round(damage),
		})
		boards["healing"] = append(boards["healing"], dashboardLeaderEntry{
			Name: p.Name, Value: math.Round(healing / minutes), Total: math.Round(healing),
		})
		boards["blocked"] = append(boards["blocked"], dashboardLeaderEntry{
			Name: p.Name, Value: math.Round(blocked / minutes), Total: math.Round(blocked),
		})
	}

	for key := range boards {
		entries := boards[key]
		sort.SliceStable(entries, func(i, j int) bool { return entries[i].Value > entries[j].Value })
		boards[key] = entries
	}
	return boards
}

func roleKey(r model.Role) string {
	return strings.ToLower(r.String())
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
