package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vendysmarket/PUMiNewApp/internal/focus"
	"github.com/vendysmarket/PUMiNewApp/internal/planner"
	"github.com/vendysmarket/PUMiNewApp/internal/store"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Create and inspect learning plans",
}

var planNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Generate a new plan outline from a goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		goal, _ := cmd.Flags().GetString("goal")
		if strings.TrimSpace(goal) == "" {
			return fmt.Errorf("--goal is required")
		}
		lang, _ := cmd.Flags().GetString("lang")
		domain, _ := cmd.Flags().GetString("domain")
		level, _ := cmd.Flags().GetString("level")
		minutes, _ := cmd.Flags().GetInt("minutes")
		days, _ := cmd.Flags().GetInt("days")
		focusType, _ := cmd.Flags().GetString("focus-type")

		settings := settingsFromFlags(cmd)

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		log := newLogger(cmd)
		ctx := cmd.Context()
		provider, err := newProvider(ctx, s, log)
		if err != nil {
			return err
		}

		gen := planner.NewGenerator(provider, log)
		outline, err := gen.GenerateOutline(ctx, planner.OutlineRequest{
			UserGoal:      goal,
			Lang:          lang,
			FocusType:     focusType,
			Domain:        domain,
			Level:         level,
			MinutesPerDay: minutes,
			DurationDays:  days,
		})
		if err != nil {
			return err
		}

		plan := &store.Plan{
			Title:         outline.Title,
			UserGoal:      goal,
			Lang:          lang,
			FocusType:     outline.FocusType,
			Domain:        outline.Domain,
			Level:         outline.Level,
			MinutesPerDay: outline.MinutesPerDay,
			DurationDays:  len(outline.Days),
			Settings:      settings,
		}
		if err := s.Plans().Create(ctx, plan, outline); err != nil {
			return err
		}

		fmt.Printf("Created plan %s\n\n", plan.ID)
		printOutline(plan, outline.Days)
		return nil
	},
}

var planListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		plans, err := s.Plans().List(cmd.Context())
		if err != nil {
			return err
		}
		if len(plans) == 0 {
			fmt.Println("No plans yet. Create one with: pumi plan new --goal \"...\"")
			return nil
		}

		fmt.Printf("%-38s %-28s %-16s %-6s %s\n", "ID", "TITLE", "DOMAIN", "DAYS", "CREATED")
		fmt.Println(strings.Repeat("─", 104))
		for _, p := range plans {
			fmt.Printf("%-38s %-28s %-16s %-6d %s\n",
				p.ID, truncate(p.Title, 26), p.Domain, p.DurationDays,
				p.CreatedAt.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

var planShowCmd = &cobra.Command{
	Use:   "show <plan-id>",
	Short: "Show a plan's outline and day structure",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		plan, err := s.Plans().Get(ctx, args[0])
		if err != nil {
			return err
		}
		days, err := s.Plans().Days(ctx, plan.ID)
		if err != nil {
			return err
		}
		printOutline(plan, days)
		return nil
	},
}

var planDeleteCmd = &cobra.Command{
	Use:   "delete <plan-id>",
	Short: "Delete a plan and all its items",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.Plans().Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted plan %s\n", args[0])
		return nil
	},
}

func init() {
	f := planNewCmd.Flags()
	f.String("goal", "", "What to learn, in the user's own words (required)")
	f.String("lang", "hu", "UI language: hu or en")
	f.String("domain", "general", "Domain: language_learning, project, fitness, programming, general")
	f.String("level", "beginner", "Level: beginner, intermediate, advanced")
	f.Int("minutes", 45, "Minutes per day")
	f.Int("days", 7, "Plan length in days")
	f.String("focus-type", "", "Focus type label for the plan")
	f.String("target-lang", "", "Target language when learning a language (e.g. korean)")
	f.String("track", "", "Themed track: career_language, financial_basics, foundations_language")
	f.String("tone", "", "Tone: casual, neutral, strict")
	f.String("difficulty", "", "Difficulty: easy, normal, hard")
	f.String("depth", "", "Content depth: short, medium, substantial")

	planCmd.AddCommand(planNewCmd)
	planCmd.AddCommand(planListCmd)
	planCmd.AddCommand(planShowCmd)
	planCmd.AddCommand(planDeleteCmd)
}

func settingsFromFlags(cmd *cobra.Command) *focus.Settings {
	tone, _ := cmd.Flags().GetString("tone")
	difficulty, _ := cmd.Flags().GetString("difficulty")
	depth, _ := cmd.Flags().GetString("depth")
	track, _ := cmd.Flags().GetString("track")
	targetLang, _ := cmd.Flags().GetString("target-lang")
	if tone == "" && difficulty == "" && depth == "" && track == "" && targetLang == "" {
		return nil
	}
	return &focus.Settings{
		Tone:           tone,
		Difficulty:     difficulty,
		ContentDepth:   depth,
		Track:          track,
		TargetLanguage: targetLang,
	}
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	path, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(path)
}

func printOutline(plan *store.Plan, days []planner.Day) {
	fmt.Printf("%s\n", plan.Title)
	fmt.Printf("Goal: %s  (%s, %s, %d min/day)\n",
		plan.UserGoal, plan.Domain, plan.Level, plan.MinutesPerDay)
	fmt.Println(strings.Repeat("─", 72))
	for _, d := range days {
		fmt.Printf("Day %d: %s\n", d.Index, d.Title)
		if d.Intro != "" {
			fmt.Printf("  %s\n", d.Intro)
		}
		for _, it := range d.Items {
			pt := ""
			if it.PracticeType != "" {
				pt = "/" + it.PracticeType
			}
			fmt.Printf("  [%s] %-10s %s (%d min)\n", it.ID, it.Type+pt, it.Label, it.EstimatedMinutes)
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
