package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ankhbayar/mcqgen/internal/export"
)

var rootCmd = &cobra.Command{
	Use:   "mcqgen",
	Short: "Мульти сонголттой бодлого үүсгэгч",
	Long: "mcqgen — жишээ бодлоготой төстэй мульти сонголттой бодлогууд үүсгэж,\n" +
		"Google Forms-д оруулахад зориулсан Excel файл гаргана.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.Flags()
	flags.String("subject", "Физик", "Хичээл: Физик эсвэл Математик")
	flags.String("topic", "Механик", "Гол сэдэв (mcqgen topics)")
	flags.String("subtopic", "", "Дэд сэдэв")
	flags.StringP("problem", "p", "", "Жишээ бодлогын текст")
	flags.String("problem-file", "", "Жишээ бодлого агуулсан файл")
	flags.Bool("example", false, "Каталогийн жишээ бодлогоор дүүргэх")
	flags.IntP("questions", "n", 5, "Үүсгэх бодлогын тоо (1-20)")
	flags.Int("options", 4, "Бодлого бүрийн сонголтын тоо (2-6)")
	flags.String("provider", "", "Провайдер: gemini, openai, anthropic, openrouter")
	flags.StringP("model", "m", "", "Загвар, жишээ нь gemini-flash, gemini-pro")
	flags.Float64P("temperature", "t", 0.7, "Санаачилгатай байдал (0.0-1.0)")
	flags.String("api-key", "", "API түлхүүр (орчны хувьсагч байхгүй үед)")
	flags.StringP("out", "o", export.FileName, "Excel файлын зам")
	flags.Bool("check", false, "Үүссэн бодлогуудын бүтцийг шалгаж анхааруулга хэвлэх")
	flags.BoolP("verbose", "v", false, "Дэлгэрэнгүй лог хэвлэх")

	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(versionCmd)
}
