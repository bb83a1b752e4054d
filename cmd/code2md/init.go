package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"code2md/internal/config"
)

func newInitCmd(app *cliApp) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long: `Write the built-in defaults to ` + config.DefaultFileName + ` in the working
directory. Edit the file to customize extension sets, ignore patterns, output
directories, and section toggles.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		path := config.DefaultFileName
		if app.opts.configPath != "" {
			path = app.opts.configPath
		}
		if !force {
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if !errors.Is(err, os.ErrNotExist) {
				return err
			}
		}
		if err := config.Default().Save(path); err != nil {
			return err
		}
		fmt.Fprintf(app.stdout, "Wrote %s\n", path)
		return nil
	}
	return cmd
}
