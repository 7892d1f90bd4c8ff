package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/yaoapp/agenda/agenda"
	"github.com/yaoapp/agenda/config"
	"github.com/yaoapp/agenda/share"
)

var envFile string

var lang = os.Getenv("AGENDA_LANG")
var langs = map[string]string{
	"Weekly agenda generator":                     "周计划生成器",
	"Environment file":                            "指定环境变量文件",
	"Help for agenda":                             "显示命令帮助文档",
	"Show configure":                              "显示配置信息",
	"Show version":                                "显示当前版本号",
	"Print all version information":               "显示全部版本信息",
	"Generate the agenda":                         "生成周计划",
	"Create a sample source file":                 "创建示例数据文件",
	"Source file (.csv or .xlsx)":                 "数据文件 (.csv 或 .xlsx)",
	"Deprecated, use --source":                    "已废弃, 请使用 --source",
	"First day (mm/dd/yyyy)":                      "开始日期 (mm/dd/yyyy)",
	"Last day (mm/dd/yyyy)":                       "结束日期 (mm/dd/yyyy)",
	"Output file (default agenda_out.pdf)":        "输出文件 (默认 agenda_out.pdf)",
	"Print the agenda":                            "打印周计划",
	"Background PDF":                              "背景 PDF 文件",
	"Layout file":                                 "版式文件",
	"Malformed rows abort the run":                "数据错误时终止",
	"Regenerate when the source file changes":     "数据文件变化时重新生成",
	"Fatal: %s":                                   "失败: %s",
	"Warning: %s":                                 "警告: %s",
	"%d rows skipped":                             "跳过 %d 行",
	"File already exists: %s":                     "文件已存在: %s",
	"✨DONE✨":                                      "✨完成✨",
	"NEXT:":                                       "下一步:",
	"Output":                                      "输出文件",
	"Weeks":                                       "周数",
	"Pages":                                       "页数",
	"Too many arguments":                          "参数过多",
	"One or more arguments are not correct":       "参数错误",
	"Missing required flag: %s":                   "缺少参数: %s",
	"The --csv flag is deprecated, use --source":  "--csv 已废弃, 请使用 --source",
	"Regenerate: %s":                              "重新生成: %s",
	"First day of the sample (mm/dd/yyyy)":        "示例开始日期 (mm/dd/yyyy)",
	"Overwrite the file if it exists":             "覆盖已存在的文件",
	"Unsupported source file, expect .csv, .xlsx": "不支持的数据文件, 请使用 .csv, .xlsx",
}

// L language switch
func L(words string) string {
	if lang == "" {
		return words
	}

	if trans, has := langs[words]; has {
		return trans
	}
	return words
}

var rootCmd = &cobra.Command{
	Use:   share.BUILDNAME,
	Short: L("Weekly agenda generator"),
	Long:  L("Weekly agenda generator"),
	Args:  cobra.MinimumNArgs(1),
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(os.Stderr, L("One or more arguments are not correct"), args)
		os.Exit(exitUsage)
	},
}

// Exit codes
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func init() {
	rootCmd.AddCommand(
		versionCmd,
		inspectCmd,
		generateCmd,
		initCmd,
	)
	rootCmd.SetHelpCommand(helpCmd)
	rootCmd.PersistentFlags().StringVarP(&envFile, "env", "e", "", L("Environment file"))
}

// Execute run the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUsage)
	}
}

// Boot load the configuration
func Boot() {
	if envFile != "" {
		config.Conf = config.LoadFrom(envFile)
	} else {
		config.Conf = config.LoadFrom(filepath.Join(config.Conf.Root, ".env"))
	}

	if config.Conf.Lang != "" {
		lang = config.Conf.Lang
	}
	config.Apply()
}

// exitCode the process exit code of err
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	if agenda.IsUsage(err) {
		return exitUsage
	}
	return exitError
}

// fatal print err and exit with its code
func fatal(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, color.RedString(L("Fatal: %s"), err.Error()))
	os.Exit(exitCode(err))
}
