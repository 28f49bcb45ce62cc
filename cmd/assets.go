package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/cardfan/internal/assets"
	"github.com/arcanaland/cardfan/internal/config"
)

// assetsCmd represents the assets command group
var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Manage the card image directory",
}

// assetsInitCmd represents the assets init command
var assetsInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the card image directory and config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		defer e.logger.Sync()

		if err := assets.Init(e.cfg.AssetDir); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Asset directory initialized at:", e.cfg.AssetDir)
		fmt.Fprintln(out, "Copy one image per card into it, named 1.png through 52.png.")
		fmt.Fprintln(out, "Config file:", config.GetConfigFilePath())
		return nil
	},
}

// assetsPathCmd represents the assets path command
var assetsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the card image directory in use",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), e.cfg.AssetDir)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(assetsCmd)
	assetsCmd.AddCommand(assetsInitCmd)
	assetsCmd.AddCommand(assetsPathCmd)

	addAssetsFlag(assetsInitCmd)
	addAssetsFlag(assetsPathCmd)
}
