package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ankhbayar/mcqgen/internal/catalog"
	"github.com/ankhbayar/mcqgen/internal/export"
	"github.com/ankhbayar/mcqgen/internal/llm"
	"github.com/ankhbayar/mcqgen/internal/quizgen"
)

func runGenerate(cmd *cobra.Command) error {
	log, err := newLogger(viper.GetBool("verbose"))
	if err != nil {
		return err
	}
	defer log.Sync()

	subject := catalog.Subject(viper.GetString("subject"))
	topic := viper.GetString("topic")
	subtopic := viper.GetString("subtopic")

	if !catalog.Contains(subject, topic, subtopic) {
		return fmt.Errorf("%q / %q сэдэв олдсонгүй; боломжит сэдвүүдийг «mcqgen topics» коммандаар харна уу", subject, topic)
	}

	sample, err := resolveSample(cmd, subject, topic, subtopic)
	if err != nil {
		return err
	}

	req := quizgen.Request{
		Subject:       subject,
		MainTopic:     topic,
		Subtopic:      subtopic,
		SampleProblem: sample,
		QuestionCount: viper.GetInt("questions"),
		OptionCount:   viper.GetInt("options"),
		Model:         viper.GetString("model"),
		Temperature:   viper.GetFloat64("temperature"),
	}

	cfg := llm.ConfigFromEnv(viper.GetString("api-key"))
	if p := viper.GetString("provider"); p != "" {
		cfg.Provider = p
	}
	if req.Model != "" {
		cfg.SetModel(req.Model)
	}

	ctx := cmd.Context()
	completer := llm.New(ctx, cfg, log)
	svc := quizgen.NewService(completer, log)

	fmt.Println(headerStyle.Render(fmt.Sprintf("🤖 %s үүсгэж байна...", subject)))
	fmt.Println(faintStyle.Render(fmt.Sprintf("Сэдэв: %s | Загвар: %s", quizgen.TopicLabel(topic, subtopic), completer.ModelID())))
	fmt.Println()

	result, err := svc.Generate(ctx, req, func(chunk string) {
		fmt.Print(chunk)
	})
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println()

	if result.ExtractErr != nil {
		var malformed *quizgen.MalformedJSONError
		switch {
		case errors.As(result.ExtractErr, &malformed):
			fmt.Println(errorStyle.Render(fmt.Sprintf("❌ JSON задлахад алдаа гарлаа: %v", malformed.Err)))
			fmt.Println("Бүрэн хариу:")
			fmt.Println(malformed.Raw)
		case errors.Is(result.ExtractErr, quizgen.ErrNoJSONFound):
			fmt.Println(errorStyle.Render("❌ JSON форматтай хариу ирсэнгүй. Дахин оролдоно уу."))
		default:
			fmt.Println(errorStyle.Render(fmt.Sprintf("❌ Алдаа: %v", result.ExtractErr)))
		}
		return nil
	}

	renderProblems(os.Stdout, result.Problems)

	if viper.GetBool("check") {
		for _, warning := range quizgen.CheckProblems(result.Problems, req.OptionCount) {
			fmt.Println(warnStyle.Render("⚠️ " + warning))
		}
	}

	payload, err := export.BuildTable(result.Problems, req.OptionCount).Bytes()
	if err != nil {
		return fmt.Errorf("excel файл бэлтгэхэд алдаа гарлаа: %w", err)
	}
	out := viper.GetString("out")
	if err := os.WriteFile(out, payload, 0o644); err != nil {
		return fmt.Errorf("excel файл хадгалахад алдаа гарлаа: %w", err)
	}

	fmt.Println()
	fmt.Println(successStyle.Render(fmt.Sprintf("✅ %d бодлого %s файлд хадгалагдлаа.", len(result.Problems), out)))
	fmt.Println(faintStyle.Render("Google Forms → Settings → Import questions гэснээр оруулж болно."))
	return nil
}

// resolveSample picks the sample problem from, in order: the --problem
// flag, --problem-file, the built-in catalog example, or piped stdin.
func resolveSample(cmd *cobra.Command, subject catalog.Subject, topic, subtopic string) (string, error) {
	if p := viper.GetString("problem"); strings.TrimSpace(p) != "" {
		return p, nil
	}
	if path := viper.GetString("problem-file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("жишээ бодлогын файл уншихад алдаа гарлаа: %w", err)
		}
		return string(data), nil
	}
	if viper.GetBool("example") {
		return catalog.ExampleProblem(subject, topic, subtopic), nil
	}
	if stat, err := os.Stdin.Stat(); err == nil && stat.Mode()&os.ModeCharDevice == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(string(data)) != "" {
			return string(data), nil
		}
	}
	return "", errors.New("жишээ бодлого дутуу байна: --problem, --problem-file эсвэл --example хэрэглэнэ үү")
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
