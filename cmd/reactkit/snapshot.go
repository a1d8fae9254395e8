package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/reactkit/pkg/snapshot"
)

func snapshotCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Manage stored snapshots",
		Long: `List, show, import and delete the snapshots kept by the store
configured under "snapshot" in reactkit.json.`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List stored snapshots",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				store, closeStore, err := a.openStore()
				if err != nil {
					return err
				}
				defer closeStore()

				names, err := store.List(cmd.Context())
				if err != nil {
					return err
				}
				if len(names) == 0 {
					a.info("No snapshots")
					return nil
				}
				for _, name := range names {
					fmt.Fprintln(a.out, name)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "show <name>",
			Short: "Print a stored snapshot as JSON",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				store, closeStore, err := a.openStore()
				if err != nil {
					return err
				}
				defer closeStore()

				root, err := a.restoreState(cmd.Context(), store, args[0])
				if err != nil {
					return err
				}
				data, err := snapshot.JSON.Marshal(root.Snapshot())
				if err != nil {
					return err
				}
				fmt.Fprintln(a.out, string(data))
				return nil
			},
		},
		&cobra.Command{
			Use:   "import <name> <state-file>",
			Short: "Store a JSON or YAML state file as a snapshot",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				root, err := a.loadState(args[1])
				if err != nil {
					return err
				}
				store, closeStore, err := a.openStore()
				if err != nil {
					return err
				}
				defer closeStore()
				codec, err := a.codec()
				if err != nil {
					return err
				}
				if err := snapshot.Save(cmd.Context(), root, store, args[0], codec); err != nil {
					return err
				}
				a.success("Saved snapshot %s", args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "delete <name>",
			Short: "Delete a stored snapshot",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				store, closeStore, err := a.openStore()
				if err != nil {
					return err
				}
				defer closeStore()
				if err := store.Delete(cmd.Context(), args[0]); err != nil {
					return err
				}
				a.success("Deleted snapshot %s", args[0])
				return nil
			},
		},
	)
	return cmd
}
