package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sandeepkv93/briefd/internal/energy"
	"github.com/sandeepkv93/briefd/internal/model"
)

// The YAML file uses its own document types so clock times can be
// written as "HH:MM" strings; they are converted onto Preferences
// during Load.

type fileDoc struct {
	DataDir          string                `yaml:"data_dir"`
	EnergyPatterns   []filePattern         `yaml:"energy_patterns"`
	WorkLocations    map[string]string     `yaml:"work_locations"`
	DefaultLocation  string                `yaml:"default_location"`
	ProtectedBlocks  []fileProtectedBlock  `yaml:"protected_blocks"`
	Goals            *fileGoals            `yaml:"goals"`
	Overrides        map[string]fileRule   `yaml:"overrides"`
	Window           *fileWindow           `yaml:"window"`
	Colors           map[string]string     `yaml:"colors"`
	Brief            *fileBrief            `yaml:"brief"`
	MinScheduleScore *float64              `yaml:"min_schedule_score"`
}

type filePattern struct {
	Name  string `yaml:"name"`
	Start string `yaml:"start"`
	End   string `yaml:"end"`
	Level string `yaml:"level"`
}

type fileProtectedBlock struct {
	Category         string `yaml:"category"`
	Title            string `yaml:"title"`
	Level            string `yaml:"level"`
	Floating         bool   `yaml:"floating"`
	Start            string `yaml:"start"`
	End              string `yaml:"end"`
	PreferredStart   string `yaml:"preferred_start"`
	AlternativeStart string `yaml:"alternative_start"`
	DurationMinutes  int    `yaml:"duration_minutes"`
}

type fileGoals struct {
	NorthStar         string   `yaml:"north_star"`
	NorthStarKeywords []string `yaml:"north_star_keywords"`
	Secondary         []string `yaml:"secondary"`
}

type fileRule struct {
	Quadrants []string `yaml:"quadrants"`
	MinScore  float64  `yaml:"min_score"`
}

type fileWindow struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

type fileBrief struct {
	Recipient       string `yaml:"recipient"`
	SubjectTemplate string `yaml:"subject"`
	SendTime        string `yaml:"send_time"`
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Load reads a preferences file and merges it over the defaults.
// Sections absent from the file keep their default values.
func Load(path string) (Preferences, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Preferences{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	var doc fileDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Preferences{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	prefs := Default()
	if doc.DataDir != "" {
		prefs.DataDir = doc.DataDir
	}
	if len(doc.EnergyPatterns) > 0 {
		patterns := make([]energy.Pattern, 0, len(doc.EnergyPatterns))
		for _, fp := range doc.EnergyPatterns {
			start, perr := model.ParseTimeOfDay(fp.Start)
			if perr != nil {
				return Preferences{}, fmt.Errorf("config: energy pattern %q: %w", fp.Name, perr)
			}
			end, perr := model.ParseTimeOfDay(fp.End)
			if perr != nil {
				return Preferences{}, fmt.Errorf("config: energy pattern %q: %w", fp.Name, perr)
			}
			patterns = append(patterns, energy.Pattern{
				Name:  fp.Name,
				Start: start,
				End:   end,
				Level: energy.Level(strings.ToLower(fp.Level)),
			})
		}
		prefs.EnergyPatterns = patterns
	}
	if len(doc.WorkLocations) > 0 {
		locations := make(map[time.Weekday]string, len(doc.WorkLocations))
		for name, loc := range doc.WorkLocations {
			day, ok := weekdayNames[strings.ToLower(name)]
			if !ok {
				return Preferences{}, fmt.Errorf("%w: unknown weekday %q", ErrInvalidPreferences, name)
			}
			locations[day] = loc
		}
		prefs.WorkLocations = locations
	}
	if doc.DefaultLocation != "" {
		prefs.DefaultLocation = doc.DefaultLocation
	}
	if len(doc.ProtectedBlocks) > 0 {
		blocks := make([]ProtectedBlock, 0, len(doc.ProtectedBlocks))
		for _, fb := range doc.ProtectedBlocks {
			block, berr := convertProtectedBlock(fb)
			if berr != nil {
				return Preferences{}, berr
			}
			blocks = append(blocks, block)
		}
		prefs.ProtectedBlocks = blocks
	}
	if doc.Goals != nil {
		prefs.Goals = Goals{
			NorthStar:         doc.Goals.NorthStar,
			NorthStarKeywords: doc.Goals.NorthStarKeywords,
			Secondary:         doc.Goals.Secondary,
		}
	}
	if len(doc.Overrides) > 0 {
		rules := make(map[model.ProtectionLevel]OverrideRule, len(doc.Overrides))
		for name, fr := range doc.Overrides {
			quadrants := make([]model.Quadrant, 0, len(fr.Quadrants))
			for _, q := range fr.Quadrants {
				quadrants = append(quadrants, model.Quadrant(q))
			}
			rules[model.ProtectionLevel(name)] = OverrideRule{Quadrants: quadrants, MinScore: fr.MinScore}
		}
		prefs.Overrides = rules
	}
	if doc.Window != nil {
		start, perr := model.ParseTimeOfDay(doc.Window.Start)
		if perr != nil {
			return Preferences{}, fmt.Errorf("config: window: %w", perr)
		}
		end, perr := model.ParseTimeOfDay(doc.Window.End)
		if perr != nil {
			return Preferences{}, fmt.Errorf("config: window: %w", perr)
		}
		prefs.Window = Window{Start: start, End: end}
	}
	if len(doc.Colors) > 0 {
		prefs.Colors = doc.Colors
	}
	if doc.Brief != nil {
		if doc.Brief.Recipient != "" {
			prefs.Brief.Recipient = doc.Brief.Recipient
		}
		if doc.Brief.SubjectTemplate != "" {
			prefs.Brief.SubjectTemplate = doc.Brief.SubjectTemplate
		}
		if doc.Brief.SendTime != "" {
			sendAt, perr := model.ParseTimeOfDay(doc.Brief.SendTime)
			if perr != nil {
				return Preferences{}, fmt.Errorf("config: brief send_time: %w", perr)
			}
			prefs.Brief.SendTime = sendAt
		}
	}
	if doc.MinScheduleScore != nil {
		prefs.MinScheduleScore = *doc.MinScheduleScore
	}

	prefs = FromEnv(prefs)
	if err := prefs.Validate(); err != nil {
		return Preferences{}, err
	}
	return prefs, nil
}

func convertProtectedBlock(fb fileProtectedBlock) (ProtectedBlock, error) {
	block := ProtectedBlock{
		Category:        fb.Category,
		Title:           fb.Title,
		Level:           model.ProtectionLevel(strings.ToLower(fb.Level)),
		Floating:        fb.Floating,
		DurationMinutes: fb.DurationMinutes,
	}
	if block.Title == "" {
		block.Title = "[PROTECTED] " + titleize(fb.Category)
	}
	var err error
	if fb.Floating {
		if block.PreferredStart, err = model.ParseTimeOfDay(fb.PreferredStart); err != nil {
			return ProtectedBlock{}, fmt.Errorf("config: protected block %q: %w", fb.Category, err)
		}
		if block.AlternativeStart, err = model.ParseTimeOfDay(fb.AlternativeStart); err != nil {
			return ProtectedBlock{}, fmt.Errorf("config: protected block %q: %w", fb.Category, err)
		}
		return block, nil
	}
	if block.Start, err = model.ParseTimeOfDay(fb.Start); err != nil {
		return ProtectedBlock{}, fmt.Errorf("config: protected block %q: %w", fb.Category, err)
	}
	if block.End, err = model.ParseTimeOfDay(fb.End); err != nil {
		return ProtectedBlock{}, fmt.Errorf("config: protected block %q: %w", fb.Category, err)
	}
	return block, nil
}

func titleize(category string) string {
	words := strings.Split(strings.ReplaceAll(category, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// FromEnv applies BRIEFD_* environment overrides on top of base.
func FromEnv(base Preferences) Preferences {
	prefs := base
	if v := strings.TrimSpace(os.Getenv("BRIEFD_DATA_DIR")); v != "" {
		prefs.DataDir = v
	}
	if v := strings.TrimSpace(os.Getenv("BRIEFD_BRIEF_RECIPIENT")); v != "" {
		prefs.Brief.Recipient = v
	}
	if v := strings.TrimSpace(os.Getenv("BRIEFD_MIN_SCHEDULE_SCORE")); v != "" {
		if score, err := strconv.ParseFloat(v, 64); err == nil && score > 0 {
			prefs.MinScheduleScore = score
		}
	}
	return prefs
}
