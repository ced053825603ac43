package transcribe

import (
	"fmt"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/spf13/cobra"

	"github.com/nuworldagency/SpeechScribe/internal/app/api/assemblyai"
	"github.com/nuworldagency/SpeechScribe/internal/app/api/openai/summary"
	"github.com/nuworldagency/SpeechScribe/internal/app/model"
	"github.com/nuworldagency/SpeechScribe/internal/app/poller"
	"github.com/nuworldagency/SpeechScribe/internal/app/util/files"
	"github.com/nuworldagency/SpeechScribe/internal/config"
)

var (
	language  string
	interval  time.Duration
	summarize bool
)

// Cmd runs one file through the full pipeline: validate, upload, submit,
// poll to completion, print the transcript (and analysis with --summarize).
var Cmd = &cobra.Command{
	Use:   "transcribe <audio-file>",
	Short: "Transcribe a single audio file from the terminal",
	Args:  cobra.ExactArgs(1),
	RunE:  run,
}

func init() {
	Cmd.Flags().StringVarP(&language, "language", "l", "en", "language code")
	Cmd.Flags().DurationVarP(&interval, "interval", "i", poller.DefaultInterval, "status poll interval")
	Cmd.Flags().BoolVarP(&summarize, "summarize", "s", false, "generate summary, sentiment and key points")
}

func run(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if idx := strings.Index(contentType, ";"); idx >= 0 {
		contentType = contentType[:idx]
	}
	if err := files.ValidateUpload(files.UploadFile{
		Name:        filepath.Base(path),
		ContentType: contentType,
		Size:        int64(len(data)),
	}); err != nil {
		return err
	}

	ctx := cmd.Context()
	client := assemblyai.NewClient(assemblyai.Config{
		APIKey:  cfg.AssemblyAI.APIKey,
		BaseURL: cfg.AssemblyAI.BaseURL,
	}, logger)

	uploadURL, err := client.UploadWithRetry(ctx, data, filepath.Base(path))
	if err != nil {
		return err
	}

	job, err := client.SubmitTranscript(ctx, uploadURL, assemblyai.TranscriptOptions{
		LanguageCode:      language,
		AutoChapters:      true,
		SentimentAnalysis: true,
		EntityDetection:   true,
	})
	if err != nil {
		return err
	}
	logger.Info("job submitted", "transcript_id", job.ID)

	result, err := poller.New(interval, client.GetTranscript).Wait(ctx, job.ID)
	if err != nil {
		return err
	}
	if result.Status == model.StatusError {
		return fmt.Errorf("transcription failed: %s", result.Error)
	}

	fmt.Println(result.Text)

	if summarize {
		s := summary.NewSummarizer(openai.NewClient(cfg.OpenAI.APIKey), cfg.OpenAI.Model)
		analysis, err := s.Summarize(ctx, result.Text)
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Println("SUMMARY:", analysis.Summary)
		fmt.Println("SENTIMENT:", analysis.Sentiment)
		for _, point := range analysis.KeyPoints {
			fmt.Println("  -", point)
		}
	}
	return nil
}
