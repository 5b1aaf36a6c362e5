package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all records, collaborators and plan edits",
	Long: `Delete every stored snapshot: uploaded records, the collaborator
registry and plan edits. The plan reverts to the built-in seed.

Asks for confirmation unless --force is given.`,
	RunE: runReset,
}

var resetForce bool

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolVarP(&resetForce, "force", "f", false, "Skip the confirmation prompt")
}

func runReset(cmd *cobra.Command, args []string) error {
	if !resetForce {
		fmt.Print("This deletes all uploaded data. Continue? [y/N] ")
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			fmt.Println("Aborted")
			return nil
		}
	}

	ctx := context.Background()

	appCtx, err := NewAppContext(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = appCtx.Close() }()

	if err := appCtx.Service.ClearAll(ctx); err != nil {
		return err
	}
	fmt.Println("All data cleared")
	return nil
}
