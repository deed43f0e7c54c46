package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vendysmarket/PUMiNewApp/internal/planner"
)

var dayCmd = &cobra.Command{
	Use:   "day",
	Short: "Generate and inspect a plan's day structure",
}

var dayGenerateCmd = &cobra.Command{
	Use:   "generate <plan-id> <day>",
	Short: "Generate the item slots for one day of a plan",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dayIndex, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("day must be a number: %q", args[1])
		}

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

		log := newLogger(cmd)
		provider, err := newProvider(ctx, s, log)
		if err != nil {
			return err
		}

		outline := &planner.Outline{
			Title:         plan.Title,
			Days:          days,
			Domain:        plan.Domain,
			Level:         plan.Level,
			MinutesPerDay: plan.MinutesPerDay,
			FocusType:     plan.FocusType,
		}
		gen := planner.NewGenerator(provider, log)
		day, err := gen.GenerateDay(ctx, outline, dayIndex, plan.Lang, plan.Settings)
		if err != nil {
			return err
		}
		if err := s.Plans().SaveDayStructure(ctx, plan.ID, day); err != nil {
			return err
		}

		fmt.Printf("Day %d: %s\n", day.Index, day.Title)
		if day.Intro != "" {
			fmt.Printf("%s\n", day.Intro)
		}
		fmt.Println(strings.Repeat("─", 72))
		for _, it := range day.Items {
			pt := ""
			if it.PracticeType != "" {
				pt = "/" + it.PracticeType
			}
			fmt.Printf("[%s] %-12s %s (%d min)\n", it.ID, it.Type+pt, it.Label, it.EstimatedMinutes)
		}
		return nil
	},
}

var dayShowCmd = &cobra.Command{
	Use:   "show <plan-id> <day>",
	Short: "Show a day's items and their generation status",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dayIndex, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("day must be a number: %q", args[1])
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		items, err := s.Items().ListByDay(ctx, args[0], dayIndex)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Printf("No items for day %d. Generate the structure first: pumi day generate %s %d\n",
				dayIndex, args[0], dayIndex)
			return nil
		}

		fmt.Printf("%-14s %-12s %-10s %-28s %s\n", "SLOT", "TYPE", "STATUS", "LABEL", "KIND")
		fmt.Println(strings.Repeat("─", 80))
		for _, it := range items {
			typ := it.ItemType
			if it.PracticeType != "" {
				typ += "/" + it.PracticeType
			}
			status := it.Status
			if it.Fallback {
				status += "*"
			}
			fmt.Printf("%-14s %-12s %-10s %-28s %s\n",
				it.SlotID, typ, status, truncate(it.Label, 26), it.Kind)
		}
		return nil
	},
}

func init() {
	dayCmd.AddCommand(dayGenerateCmd)
	dayCmd.AddCommand(dayShowCmd)
}
