package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vendysmarket/PUMiNewApp/internal/focus"
)

var validateCmd = &cobra.Command{
	Use:   "validate <item.json>",
	Short: "Validate a focus item JSON file",
	Long: `Run the item validator on a JSON file. Useful for checking
hand-edited or externally produced items before importing them.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		var item focus.Item
		if err := json.Unmarshal(b, &item); err != nil {
			return fmt.Errorf("parse %s: %w", args[0], err)
		}

		ok, reason := focus.Validate(item)
		if !ok {
			fmt.Printf("INVALID (%s): %s\n", item.Kind(), reason)
			os.Exit(1)
		}
		fmt.Printf("OK (%s)\n", item.Kind())
		return nil
	},
}
