package cmd

import (
	"github.com/spf13/cobra"
	"github.com/yaoapp/agenda/config"
	"github.com/yaoapp/agenda/share"
	"github.com/yaoapp/kun/maps"
	"github.com/yaoapp/kun/utils"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: L("Show configure"),
	Long:  L("Show configure"),
	Run: func(cmd *cobra.Command, args []string) {
		Boot()
		layout, err := config.LoadLayout(config.Conf.Path(config.Conf.Layout))
		fatal(err)

		if config.Conf.Background != "" {
			layout.Background = config.Conf.Path(config.Conf.Background)
		}

		res := maps.Map{
			"version": share.VERSION,
			"config":  config.Conf,
			"layout":  layout,
		}
		utils.Dump(res)
	},
}
