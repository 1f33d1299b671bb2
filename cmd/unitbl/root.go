package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dkoosis/unitbl/internal/version"
)

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "unitbl",
		Short: "Render text tables with ASCII or Unicode box borders",
		Long: `unitbl draws tables for character terminals.

Input is a YAML or JSON table document, or CSV. Settings are read from
flags, then the environment, then .unitbl.yaml, then built-in defaults.

Environment Variables:
  UNITBL_STYLE           border style, or "auto"
  UNITBL_PADDING_POLICY  keep-padding or cut-padding
  UNITBL_LOG_LEVEL       error, warn, info or debug
  UNITBL_NO_COLOR        disable colour (NO_COLOR is honoured too)`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			fl := cmd.Flags()
			a.flags.NoColorSet = fl.Changed("no-color")
			a.flags.InteriorVerticalSet = fl.Changed("vertical")
			a.flags.InteriorHorizontalSet = fl.Changed("horizontal")
			a.flags.HeaderLineSet = fl.Changed("header-line")
			a.flags.MaxOutputSet = fl.Changed("max-output")
			return a.setup()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.ConfigFile, "config", "", "config file (default .unitbl.yaml)")
	pf.StringVarP(&a.flags.Style, "style", "s", "", "border style name, or auto")
	pf.StringVar(&a.flags.PaddingPolicy, "padding", "", "padding policy: keep-padding or cut-padding")
	pf.StringVar(&a.flags.LogLevel, "log-level", "", "diagnostic level: error, warn, info, debug")
	pf.BoolVar(&a.flags.NoColor, "no-color", false, "disable colour")
	pf.BoolVar(&a.flags.InteriorVertical, "vertical", false, "draw vertical separators between columns")
	pf.BoolVar(&a.flags.InteriorHorizontal, "horizontal", false, "draw horizontal separators between rows")
	pf.BoolVar(&a.flags.HeaderLine, "header-line", true, "draw the rule under the first row")
	pf.IntVar(&a.flags.MaxOutput, "max-output", 0, "maximum output size in bytes, 0 for no limit")

	root.AddCommand(
		a.renderCmd(),
		a.stylesCmd(),
		a.demoCmd(),
		a.browseCmd(),
		a.versionCmd(),
	)
	return root
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "unitbl version %s\nCommit: %s\nBuilt: %s\n",
				version.Version, version.CommitHash, version.BuildDate)
			return err
		},
	}
}
