package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/yaoapp/agenda/agenda"
	"github.com/yaoapp/agenda/config"
	"github.com/yaoapp/agenda/source"
	"github.com/yaoapp/agenda/week"
)

var initFirst string
var initForce bool

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: L("Create a sample source file"),
	Long:  L("Create a sample source file"),
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		Boot()

		path := "events.csv"
		if len(args) > 0 {
			path = args[0]
		}

		first, err := scaffold(config.Conf.Path(path), initFirst, initForce, time.Now())
		fatal(err)

		fmt.Println(color.GreenString(L("✨DONE✨")))
		fmt.Println(color.WhiteString(config.Conf.Path(path)))
		fmt.Println(color.WhiteString(L("NEXT:")))
		fmt.Printf("  %s generate --source %s --first %s --last %s\n",
			os.Args[0], path, first.Format("01/02/2006"), first.AddDate(0, 0, 13).Format("01/02/2006"))
	},
}

func init() {
	initCmd.Flags().StringVar(&initFirst, "first", "", L("First day of the sample (mm/dd/yyyy)"))
	initCmd.Flags().BoolVar(&initForce, "force", false, L("Overwrite the file if it exists"))
}

// scaffold write the sample source, returns the Monday of the first sample week
func scaffold(path string, first string, force bool, now time.Time) (time.Time, error) {
	if _, err := source.Detect(path); err != nil {
		return time.Time{}, agenda.UsageWrap(err, L("Unsupported source file, expect .csv, .xlsx"))
	}

	day := week.Truncate(now)
	if first != "" {
		var err error
		day, err = week.Parse(first)
		if err != nil {
			return time.Time{}, agenda.UsageWrap(err, "--first")
		}
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return time.Time{}, fmt.Errorf(L("File already exists: %s"), path)
		}
	}

	monday := week.MondayOf(day)
	if err := source.WriteSample(path, monday); err != nil {
		return time.Time{}, err
	}
	return monday, nil
}
