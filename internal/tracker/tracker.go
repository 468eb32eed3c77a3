// Package tracker parses tracker.gg Marvel Rivals match-history exports.
package tracker

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"rivalscomp/internal/model"
)

// Export is the parsed result of one tracker.gg export file: the resolved
// player handle and that player's overview records, one per match.
type Export struct {
	Player  string
	Records []model.MatchRecord
}

// statValue is tracker.gg's {"value": n} wrapper around every stat field.
type statValue struct {
	Value float64 `json:"value"`
}

type segmentStats struct {
	Kills           statValue `json:"kills"`
	Deaths          statValue `json:"deaths"`
	Assists         statValue `json:"assists"`
	TotalHeroDamage statValue `json:"totalHeroDamage"`
	TotalHeroHeal   statValue `json:"totalHeroHeal"`
	TotalDamageTaken statValue `json:"totalDamageTaken"`
	TimePlayed      statValue `json:"timePlayed"`
}

type segment struct {
	Type     string `json:"type"`
	Metadata struct {
		PlatformInfo struct {
			PlatformUserHandle string `json:"platformUserHandle"`
		} `json:"platformInfo"`
		Heroes []struct {
			Name string `json:"name"`
		} `json:"heroes"`
		Result string `json:"result"`
		IsMVP  bool   `json:"isMvp"`
		IsSVP  bool   `json:"isSvp"`
	} `json:"metadata"`
	Stats segmentStats `json:"stats"`
}

type exportFile struct {
	Data struct {
		Matches []struct {
			Segments []segment `json:"segments"`
		} `json:"matches"`
	} `json:"data"`
}

// ParseFile parses the export at path. nameHint is used as the player handle
// when the export itself does not carry one (see Parse).
func ParseFile(path, nameHint string) (*Export, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open export: %w", err)
	}
	defer f.Close()
	return Parse(f, nameHint)
}

// Parse decodes a tracker.gg export. The player handle is taken from the
// first overview segment of the first match; exports can contain segments
// for other lobby members, so records are filtered to the resolved handle
// (case-insensitive). A segment with no hero metadata is kept under the
// hero name "Unknown".
func Parse(r io.Reader, nameHint string) (*Export, error) {
	var file exportFile
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decode export: %w", err)
	}

	handle, resolved := "", false
	for _, match := range file.Data.Matches {
		for _, seg := range match.Segments {
			if seg.Type == "overview" && seg.Metadata.PlatformInfo.PlatformUserHandle != "" {
				handle = seg.Metadata.PlatformInfo.PlatformUserHandle
				resolved = true
				break
			}
		}
		if resolved {
			break
		}
	}
	if !resolved {
		handle = nameHint
	}

	out := &Export{Player: handle}
	for _, match := range file.Data.Matches {
		for _, seg := range match.Segments {
			if seg.Type != "overview" {
				continue
			}
			// Exports carry segments for other lobby members; when a handle
			// was resolved, keep only the exporting player's rows.
			if resolved && !strings.EqualFold(seg.Metadata.PlatformInfo.PlatformUserHandle, handle) {
				continue
			}
			out.Records = append(out.Records, recordFromSegment(seg))
		}
	}
	return out, nil
}

func recordFromSegment(seg segment) model.MatchRecord {
	hero := "Unknown"
	if len(seg.Metadata.Heroes) > 0 && seg.Metadata.Heroes[0].Name != "" {
		hero = seg.Metadata.Heroes[0].Name
	}
	return model.MatchRecord{
		Hero:          hero,
		Kills:         int(seg.Stats.Kills.Value),
		Deaths:        int(seg.Stats.Deaths.Value),
		Assists:       int(seg.Stats.Assists.Value),
		DamageDealt:   seg.Stats.TotalHeroDamage.Value,
		HealingDone:   seg.Stats.TotalHeroHeal.Value,
		DamageBlocked: seg.Stats.TotalDamageTaken.Value,
		TimePlayedMs:  int64(seg.Stats.TimePlayed.Value),
		Won:           strings.EqualFold(seg.Metadata.Result, "win"),
		IsMVP:         seg.Metadata.IsMVP,
		IsSVP:         seg.Metadata.IsSVP,
	}
}
