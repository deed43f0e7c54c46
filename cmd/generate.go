package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vendysmarket/PUMiNewApp/internal/focus"
	"github.com/vendysmarket/PUMiNewApp/internal/store"
)

var generateCmd = &cobra.Command{
	Use:   "generate <plan-id> [slot-id]",
	Short: "Generate content for a day's items",
	Long: `Generate the actual content for item slots created by "pumi day generate".
With a slot ID only that item is generated; with --day every pending item
of the day is generated in order.`,
	Args: cobra.RangeArgs(1, 2),
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

		log := newLogger(cmd)
		provider, err := newProvider(ctx, s, log)
		if err != nil {
			return err
		}
		engine := focus.NewEngine(provider, focus.DefaultGenerationConfig(), log)

		if len(args) == 2 {
			rec, err := s.Items().GetBySlot(ctx, plan.ID, args[1])
			if err != nil {
				return err
			}
			return generateOne(ctx, cmd, s, engine, plan, rec)
		}

		dayFlag, _ := cmd.Flags().GetString("day")
		if dayFlag == "" {
			return fmt.Errorf("pass a slot ID or --day")
		}
		dayIndex, err := strconv.Atoi(dayFlag)
		if err != nil {
			return fmt.Errorf("day must be a number: %q", dayFlag)
		}

		items, err := s.Items().ListByDay(ctx, plan.ID, dayIndex)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return fmt.Errorf("no items for day %d; run: pumi day generate %s %d", dayIndex, plan.ID, dayIndex)
		}
		for _, rec := range items {
			if rec.Status == "ready" {
				continue
			}
			if err := generateOne(ctx, cmd, s, engine, plan, rec); err != nil {
				return err
			}
		}
		return nil
	},
}

var generateShowCmd = &cobra.Command{
	Use:   "show <plan-id> <slot-id>",
	Short: "Print a generated item's content as JSON",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		rec, err := s.Items().GetBySlot(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		if rec.Content == nil {
			return fmt.Errorf("item %s has no content yet (status %s)", args[1], rec.Status)
		}
		b, err := json.MarshalIndent(rec.Content, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	},
}

func init() {
	generateCmd.Flags().String("day", "", "Generate every pending item of this day")
	generateCmd.AddCommand(generateShowCmd)
}

func generateOne(ctx context.Context, cmd *cobra.Command, s *store.Store, engine *focus.Engine, plan *store.Plan, rec *store.ItemRecord) error {
	dayTitle := ""
	if days, err := s.Plans().Days(ctx, plan.ID); err == nil {
		for _, d := range days {
			if d.Index == rec.DayIndex {
				dayTitle = d.Title
				break
			}
		}
	}

	req := focus.ItemRequest{
		Topic:        rec.Topic,
		Label:        rec.Label,
		ItemType:     rec.ItemType,
		PracticeType: rec.PracticeType,
		Domain:       plan.Domain,
		Level:        plan.Level,
		Lang:         plan.Lang,
		DayTitle:     dayTitle,
		Minutes:      rec.EstimatedMinutes,
		UserGoal:     plan.UserGoal,
		Settings:     plan.Settings,
	}

	itemStore := s.Items().(focus.ItemStore)
	lessonCtx, lessonRes, err := engine.ResolvePrecedingLesson(ctx, itemStore, plan.ID, rec.DayIndex, rec.OrderIndex, req)
	if err != nil {
		return err
	}
	if lessonRes != nil {
		// The day had no lesson to chain on, so one was generated; store
		// it just before the practice item.
		title, _ := lessonRes.Item["title"].(string)
		lesson := &store.ItemRecord{
			ID:               uuid.NewString(),
			PlanID:           plan.ID,
			DayIndex:         rec.DayIndex,
			OrderIndex:       rec.OrderIndex - 1,
			SlotID:           rec.SlotID + "-lesson",
			ItemType:         "lesson",
			Kind:             string(lessonRes.Kind),
			Label:            title,
			Topic:            rec.Topic,
			EstimatedMinutes: 10,
			Status:           "ready",
			Fallback:         lessonRes.Fallback,
			Content:          lessonRes.Item,
		}
		if err := s.Items().Insert(ctx, lesson); err != nil {
			return err
		}
		fmt.Printf("Generated supporting lesson for %s\n", rec.SlotID)
	}
	req.PrecedingLesson = lessonCtx

	res, err := engine.GenerateItem(ctx, req)
	if err != nil {
		return err
	}
	if err := s.Items().SaveContent(ctx, rec.ID, res.Kind, res.Item, res.Fallback); err != nil {
		return err
	}

	marker := ""
	if res.Fallback {
		marker = " (fallback)"
	}
	fmt.Printf("Generated %s: %s [%s]%s\n", rec.SlotID, rec.Label, res.Kind, marker)
	return nil
}
