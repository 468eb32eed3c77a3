// Package report renders profiles, role recommendations, and composition
// candidates as terminal tables.
package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"rivalscomp/internal/model"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
}

// PrintPlayerReport prints one player's hero breakdown grouped by role.
// Only heroes with at least minGames played appear; the top three per role
// are shown.
func PrintPlayerReport(w io.Writer, p *model.PlayerProfile, minGames int) {
	fmt.Fprintf(w, "\n=== %s ===\n", p.Name)
	fmt.Fprintf(w, "Total Games: %d  |  Win Rate: %.1f%%\n\n", p.TotalGames, p.OverallWinRate()*100)

	table := newTable(w)
	table.Header("ROLE", "HERO", "GAMES", "WIN%", "KDA", "OUT/MIN", "MVP", "SVP", "SCORE")

	rows := 0
	for _, role := range model.KnownRoles {
		ranked := p.BestHeroesForRole(role, minGames)
		if len(ranked) > 3 {
			ranked = ranked[:3]
		}
		for _, rh := range ranked {
			table.Append(
				role.String(),
				rh.Hero,
				strconv.Itoa(rh.Stats.GamesPlayed),
				fmt.Sprintf("%.1f%%", rh.Stats.WinRate()*100),
				fmt.Sprintf("%.1f", rh.Stats.KDA()),
				fmt.Sprintf("%.0f", roleOutputPerMin(rh.Stats)),
				strconv.Itoa(rh.Stats.MVPCount),
				strconv.Itoa(rh.Stats.SVPCount),
				fmt.Sprintf("%.1f", rh.Stats.PerformanceScore()),
			)
			rows++
		}
	}
	if rows == 0 {
		fmt.Fprintf(w, "No heroes with %d+ games.\n", minGames)
		return
	}
	table.Render()
}

// roleOutputPerMin picks the per-minute stat that drives the hero's
// role-specific score term.
func roleOutputPerMin(s *model.HeroStats) float64 {
	switch s.Role {
	case model.RoleVanguard:
		return s.BlockedPerMin()
	case model.RoleStrategist:
		return s.HealingPerMin()
	default:
		return s.DamagePerMin()
	}
}

// RoleScore is the average performance score of a player's top two heroes
// in a role; zero when the player has no qualifying heroes there.
func RoleScore(p *model.PlayerProfile, role model.Role, minGames int) float64 {
	ranked := p.BestHeroesForRole(role, minGames)
	if len(ranked) == 0 {
		return 0
	}
	if len(ranked) > 2 {
		ranked = ranked[:2]
	}
	sum := 0.0
	for _, rh := range ranked {
		sum += rh.Stats.PerformanceScore()
	}
	return sum / float64(len(ranked))
}

// PrintRoleRecommendations prints each player's strongest and second role
// plus their single best hero overall.
func PrintRoleRecommendations(w io.Writer, profiles []*model.PlayerProfile, minGames int) {
	fmt.Fprintf(w, "\n=== Role Recommendations ===\n\n")

	table := newTable(w)
	table.Header("PLAYER", "PRIMARY", "SCORE", "SECONDARY", "SCORE", "BEST HERO")

	for _, p := range profiles {
		type scored struct {
			role  model.Role
			score float64
		}
		var scores []scored
		for _, role := range model.KnownRoles {
			if s := RoleScore(p, role, minGames); s > 0 {
				scores = append(scores, scored{role, s})
			}
		}
		sort.SliceStable(scores, func(i, j int) bool { return scores[i].score > scores[j].score })

		primary, primaryScore := "—", "—"
		secondary, secondaryScore := "—", "—"
		if len(scores) > 0 {
			primary = scores[0].role.String()
			primaryScore = fmt.Sprintf("%.1f", scores[0].score)
		}
		if len(scores) > 1 {
			secondary = scores[1].role.String()
			secondaryScore = fmt.Sprintf("%.1f", scores[1].score)
		}

		best := "—"
		if top := p.TopHeroes(1, minGames); len(top) > 0 {
			best = fmt.Sprintf("%s (%s)", top[0].Hero, top[0].Stats.Role)
		}

		table.Append(p.Name, primary, primaryScore, secondary, secondaryScore, best)
	}
	table.Render()
}

// PrintCompositions prints the ranked composition candidates, assignments
// grouped by role within each candidate.
func PrintCompositions(w io.Writer, candidates []model.Candidate) {
	fmt.Fprintf(w, "\n=== Recommended Compositions ===\n")
	if len(candidates) == 0 {
		fmt.Fprintln(w, "\nNo viable composition found. Import more matches or lower --min-games.")
		return
	}

	for i, c := range candidates {
		fmt.Fprintf(w, "\n--- #%d  (Score: %.1f) ---\n", i+1, c.Score)
		for _, role := range model.KnownRoles {
			var picks []string
			for _, a := range c.Assignments {
				if a.Role == role {
					picks = append(picks, fmt.Sprintf("%s -> %s", a.Player, a.Hero))
				}
			}
			if len(picks) > 0 {
				fmt.Fprintf(w, "  %-10s %s\n", role.String()+"s:", strings.Join(picks, ", "))
			}
		}
	}
	fmt.Fprintln(w)
}

// PrintSquadSummary prints combined squad statistics and role coverage.
// Coverage counts players with at least coverageMinGames games on some hero
// of the role.
func PrintSquadSummary(w io.Writer, profiles []*model.PlayerProfile, coverageMinGames int) {
	totalGames, totalWins := 0, 0
	totalMVPs, totalSVPs := 0, 0
	for _, p := range profiles {
		totalGames += p.TotalGames
		totalWins += p.TotalWins
		for _, hs := range p.Heroes {
			totalMVPs += hs.MVPCount
			totalSVPs += hs.SVPCount
		}
	}

	fmt.Fprintf(w, "\n=== Squad Summary ===\n\n")
	fmt.Fprintf(w, "  Players        : %d\n", len(profiles))
	fmt.Fprintf(w, "  Combined games : %d\n", totalGames)
	if totalGames > 0 {
		fmt.Fprintf(w, "  Combined WR    : %.1f%%\n", float64(totalWins)/float64(totalGames)*100)
	} else {
		fmt.Fprintf(w, "  Combined WR    : —\n")
	}
	fmt.Fprintf(w, "  MVPs / SVPs    : %d / %d\n", totalMVPs, totalSVPs)

	fmt.Fprintf(w, "\n--- Role Coverage (%d+ games) ---\n\n", coverageMinGames)
	table := newTable(w)
	table.Header("ROLE", "PLAYERS", "COVERAGE", "WHO")

	for _, role := range model.KnownRoles {
		var names []string
		for _, p := range profiles {
			if len(p.BestHeroesForRole(role, coverageMinGames)) > 0 {
				names = append(names, p.Name)
			}
		}
		coverage := 0.0
		if len(profiles) > 0 {
			coverage = float64(len(names)) / float64(len(profiles)) * 100
		}
		who := "—"
		if len(names) > 0 {
			who = strings.Join(names, ", ")
		}
		table.Append(
			role.String(),
			fmt.Sprintf("%d/%d", len(names), len(profiles)),
			fmt.Sprintf("%.0f%%", coverage),
			who,
		)
	}
	table.Render()
}
