package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var collaboratorCmd = &cobra.Command{
	Use:   "collaborator",
	Short: "Manage the collaborator registry",
}

var collaboratorListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered collaborators",
	RunE:  runCollaboratorList,
}

var collaboratorAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Register a collaborator",
	Args:  cobra.ExactArgs(1),
	RunE:  runCollaboratorAdd,
}

var collaboratorRemoveCmd = &cobra.Command{
	Use:   "remove [name]",
	Short: "Remove a collaborator from the registry",
	Long: `Remove a collaborator from the registry.

Records already uploaded by the collaborator are kept.`,
	Args: cobra.ExactArgs(1),
	RunE: runCollaboratorRemove,
}

var collaboratorArea string

func init() {
	rootCmd.AddCommand(collaboratorCmd)
	collaboratorCmd.AddCommand(collaboratorListCmd)
	collaboratorCmd.AddCommand(collaboratorAddCmd)
	collaboratorCmd.AddCommand(collaboratorRemoveCmd)
	collaboratorAddCmd.Flags().StringVarP(&collaboratorArea, "area", "a", "", "Work area of the collaborator")
}

func runCollaboratorList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	appCtx, err := NewAppContext(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = appCtx.Close() }()

	collaborators, err := appCtx.Service.Collaborators(ctx)
	if err != nil {
		return err
	}

	if len(collaborators) == 0 {
		fmt.Println("No collaborators registered")
		return nil
	}
	for _, c := range collaborators {
		if c.Area != "" {
			fmt.Printf("%s (%s)\n", c.Name, c.Area)
			continue
		}
		fmt.Println(c.Name)
	}
	return nil
}

func runCollaboratorAdd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	appCtx, err := NewAppContext(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = appCtx.Close() }()

	if err := appCtx.Service.Register(ctx, args[0], collaboratorArea); err != nil {
		return err
	}
	fmt.Printf("Registered %s\n", args[0])
	return nil
}

func runCollaboratorRemove(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	appCtx, err := NewAppContext(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = appCtx.Close() }()

	if err := appCtx.Service.Remove(ctx, args[0]); err != nil {
		return err
	}
	fmt.Printf("Removed %s\n", args[0])
	return nil
}
