package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nhle/shopping-list/internal/model"
)

var storesCmd = &cobra.Command{
	Use:   "stores",
	Short: "List stores with item and card counts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv()
		if err != nil {
			return err
		}
		defer env.Close()

		activeID := env.State.ActiveStoreID()
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "\tSTORE\tLIST\tBASKET\tARCHIVE\tCARDS")
		for _, st := range env.State.Stores() {
			marker := ""
			if st.ID == activeID {
				marker = "*"
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\n", marker, st.Name,
				st.Count(model.PartitionList),
				st.Count(model.PartitionBasket),
				st.Count(model.PartitionArchive),
				len(st.Cards))
		}
		return w.Flush()
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the saved lists to stdout as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv()
		if err != nil {
			return err
		}
		defer env.Close()

		data, err := model.EncodeSnapshot(env.State.Snapshot())
		if err != nil {
			return fmt.Errorf("encoding snapshot: %w", err)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	},
}

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Replace the saved lists with a JSON export",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}
		snap, err := model.DecodeSnapshot(data)
		if err != nil {
			return fmt.Errorf("decoding %s: %w", args[0], err)
		}

		env, err := openEnv()
		if err != nil {
			return err
		}
		defer env.Close()

		env.State.Replace(snap)
		env.Logger.Info("snapshot imported",
			zap.String("file", args[0]),
			zap.Int("stores", len(snap.Stores)),
		)
		fmt.Fprintf(cmd.OutOrStdout(), "imported %d stores\n", len(snap.Stores))
		return nil
	},
}

var resetFlags = struct {
	Yes bool
}{}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the saved lists under the configured key",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetFlags.Yes {
			return fmt.Errorf("reset deletes every store, item and card; pass --yes to confirm")
		}

		env, err := openEnv()
		if err != nil {
			return err
		}
		defer env.Close()

		if err := env.Persister.Clear(); err != nil {
			return err
		}
		env.Logger.Info("snapshot cleared", zap.String("key", env.Persister.Key))
		fmt.Fprintf(cmd.OutOrStdout(), "removed saved lists under %q\n", env.Persister.Key)
		return nil
	},
}

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the snapshot keys saved in the database",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv()
		if err != nil {
			return err
		}
		defer env.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
		defer cancel()
		entries, err := env.Blobs.List(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if env.Schema > 0 {
			fmt.Fprintf(out, "schema v%d\n", env.Schema)
		}
		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "\tKEY\tBYTES\tUPDATED")
		for _, e := range entries {
			marker := ""
			if e.Key == env.Persister.Key {
				marker = "*"
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", marker, e.Key, e.Size, e.UpdatedAt.Local().Format(time.DateTime))
		}
		return w.Flush()
	},
}

var configFlags = struct {
	Force bool
}{}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := model.ExpandHome(flags.ConfigFile)
		if _, err := os.Stat(path); err == nil && !configFlags.Force {
			return fmt.Errorf("%s already exists; pass --force to overwrite", path)
		}

		cfg := model.DefaultAppConfig()
		if flags.DBPath != "" {
			cfg.Data.Path = model.ExpandHome(flags.DBPath)
		}
		if flags.LogLevel != "" {
			cfg.Log.Level = flags.LogLevel
		}
		if err := model.SaveConfig(path, cfg); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVarP(&resetFlags.Yes, "yes", "y", false, "confirm deletion")
	configInitCmd.Flags().BoolVar(&configFlags.Force, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
}
