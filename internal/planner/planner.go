// Package planner generates the week outline and the per-day item
// structure. Both generators return lightweight skeletons only: item
// content is produced on demand by the focus engine.
package planner

import (
	"log/slog"
	"strings"

	"github.com/vendysmarket/PUMiNewApp/internal/llm"
)

// Outline is a plan skeleton: day titles and intros, no content.
type Outline struct {
	Title         string `json:"title"`
	Days          []Day  `json:"days"`
	Domain        string `json:"domain"`
	Level         string `json:"level"`
	MinutesPerDay int    `json:"minutes_per_day"`
	FocusType     string `json:"focus_type"`
}

// Day is one day's structure within a plan.
type Day struct {
	Index int       `json:"dayIndex"`
	Title string    `json:"title"`
	Intro string    `json:"intro"`
	Items []DayItem `json:"items"`
}

// DayItem is a content-less slot: what to generate, not the content itself.
type DayItem struct {
	ID               string `json:"id"`
	Type             string `json:"type"`
	Label            string `json:"label"`
	Topic            string `json:"topic"`
	PracticeType     string `json:"practice_type,omitempty"`
	EstimatedMinutes int    `json:"estimated_minutes"`
}

// Generator produces outlines and day structures via the LLM provider.
type Generator struct {
	provider llm.Provider
	log      *slog.Logger
}

func NewGenerator(provider llm.Provider, log *slog.Logger) *Generator {
	if log == nil {
		log = slog.Default()
	}
	return &Generator{provider: provider, log: log}
}

func isHungarian(lang string) bool {
	return lang == "" || strings.HasPrefix(strings.ToLower(lang), "hu")
}
