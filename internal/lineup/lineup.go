// Package lineup searches role-distribution templates and role-to-player
// permutations for the highest-scoring full-squad hero assignments.
package lineup

import (
	"sort"

	"golang.org/x/sync/errgroup"

	"rivalscomp/internal/model"
)

// SquadSize is the number of controllable slots; the sixth teammate is a
// random player outside the squad's control.
const SquadSize = 5

// DefaultTopN is how many ranked candidates Search returns by default.
const DefaultTopN = 5

// Option is one pickable hero for a player in a given role.
type Option struct {
	Hero  string
	Score float64
}

// OptionSet maps each playable role to one player's candidate heroes,
// ordered best first.
type OptionSet map[model.Role][]Option

// Template is a target player count per role, summing to SquadSize. Each
// template is one hypothesis about which role the random sixth teammate
// will cover.
type Template map[model.Role]int

// Templates are the searched role distributions. The 2 Vanguard / 1 Duelist
// / 2 Strategist split appears twice, so its candidates are double-weighted
// in the pooled results.
var Templates = []Template{
	{model.RoleVanguard: 2, model.RoleDuelist: 2, model.RoleStrategist: 1}, // random fills healer
	{model.RoleVanguard: 1, model.RoleDuelist: 2, model.RoleStrategist: 2}, // random fills tank
	{model.RoleVanguard: 2, model.RoleDuelist: 1, model.RoleStrategist: 2}, // random fills DPS
	{model.RoleVanguard: 1, model.RoleDuelist: 3, model.RoleStrategist: 1}, // aggressive comp
	{model.RoleVanguard: 2, model.RoleDuelist: 1, model.RoleStrategist: 2}, // defensive comp
}

// BuildOptions builds one player's per-role candidate heroes: the top three
// qualifying heroes per role, unioned with any known-role hero from the
// player's global top five. The union keeps a player's single best hero in
// play even when it narrowly misses the per-role top-three cut.
func BuildOptions(p *model.PlayerProfile, minGames int) OptionSet {
	options := make(OptionSet, len(model.KnownRoles))
	for _, role := range model.KnownRoles {
		ranked := p.BestHeroesForRole(role, minGames)
		if len(ranked) > 3 {
			ranked = ranked[:3]
		}
		opts := make([]Option, 0, len(ranked))
		for _, rh := range ranked {
			opts = append(opts, Option{Hero: rh.Hero, Score: rh.Stats.PerformanceScore()})
		}
		options[role] = opts
	}

	for _, rh := range p.TopHeroes(5, minGames) {
		role := rh.Stats.Role
		if role == model.RoleUnknown {
			continue
		}
		if containsHero(options[role], rh.Hero) {
			continue
		}
		options[role] = append(options[role], Option{Hero: rh.Hero, Score: rh.Stats.PerformanceScore()})
	}
	return options
}

func containsHero(opts []Option, hero string) bool {
	for _, o := range opts {
		if o.Hero == hero {
			return true
		}
	}
	return false
}

// Search runs every template against the given squad and returns the pooled
// candidates, best first, truncated to topN. Player order is positional: the
// i-th ordering label always targets the i-th profile. An empty result means
// no viable assignment exists; it is not an error. Squads that are not
// exactly SquadSize players produce no candidates.
func Search(profiles []*model.PlayerProfile, minGames, topN int) []model.Candidate {
	if len(profiles) != SquadSize {
		return nil
	}

	options := make([]OptionSet, len(profiles))
	for i, p := range profiles {
		options[i] = BuildOptions(p, minGames)
	}

	// Templates share no state, so each one searches on its own goroutine
	// and writes to its own slot; the slots are concatenated afterwards.
	results := make([][]model.Candidate, len(Templates))
	g := new(errgroup.Group)
	for i, tmpl := range Templates {
		g.Go(func() error {
			results[i] = searchTemplate(profiles, options, tmpl)
			return nil
		})
	}
	_ = g.Wait()

	var pool []model.Candidate
	for _, r := range results {
		pool = append(pool, r...)
	}
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].Score > pool[j].Score
	})
	if len(pool) > topN {
		pool = pool[:topN]
	}
	return pool
}

// searchTemplate enumerates every distinct role ordering for the template
// and greedily fills it: each player takes their first-listed hero for the
// assigned role that no earlier player in the same ordering already took.
// First-fit, no backtracking — an ordering where any player cannot pick is
// discarded whole.
func searchTemplate(profiles []*model.PlayerProfile, options []OptionSet, tmpl Template) []model.Candidate {
	var out []model.Candidate

	for _, ordering := range DistinctOrderings(tmpl) {
		used := make(map[string]bool, SquadSize)
		assignments := make([]model.Assignment, 0, SquadSize)
		total := 0.0
		valid := true

		for i, p := range profiles {
			role := ordering[i]
			picked := false
			for _, opt := range options[i][role] {
				if used[opt.Hero] {
					continue
				}
				assignments = append(assignments, model.Assignment{
					Player: p.Name,
					Hero:   opt.Hero,
					Role:   role,
				})
				used[opt.Hero] = true
				total += opt.Score
				picked = true
				break
			}
			if !picked {
				valid = false
				break
			}
		}

		if valid {
			out = append(out, model.Candidate{Score: total, Assignments: assignments})
		}
	}
	return out
}

// DistinctOrderings expands the template's role counts into every distinct
// ordering of the resulting label multiset. Duplicate roles collapse
// equivalent permutations, so a {2,2,1} template yields 5!/(2!·2!·1!) = 30
// orderings rather than 120.
func DistinctOrderings(tmpl Template) [][]model.Role {
	total := 0
	counts := make(map[model.Role]int, len(tmpl))
	for role, n := range tmpl {
		counts[role] = n
		total += n
	}

	var out [][]model.Role
	seq := make([]model.Role, total)

	var fill func(pos int)
	fill = func(pos int) {
		if pos == total {
			ordering := make([]model.Role, total)
			copy(ordering, seq)
			out = append(out, ordering)
			return
		}
		for _, role := range model.KnownRoles {
			if counts[role] == 0 {
				continue
			}
			counts[role]--
			seq[pos] = role
			fill(pos + 1)
			counts[role]++
		}
	}
	fill(0)
	return out
}
