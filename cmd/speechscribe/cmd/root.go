package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nuworldagency/SpeechScribe/cmd/speechscribe/cmd/serve"
	"github.com/nuworldagency/SpeechScribe/cmd/speechscribe/cmd/transcribe"
	"github.com/nuworldagency/SpeechScribe/cmd/speechscribe/cmd/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "speechscribe",
	Short: "Audio transcription service backed by AssemblyAI and OpenAI",
	Long: `SpeechScribe turns uploaded audio into transcripts with AI analysis.
- serve runs the HTTP API the dashboard talks to
- transcribe runs a single file through the full pipeline from the terminal`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(transcribe.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
