package main

import (
	"fmt"
	"os"

	"github.com/nuworldagency/SpeechScribe/cmd/speechscribe/cmd"
	"github.com/nuworldagency/SpeechScribe/internal/config"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "configuration warning: %v\n", err)
	}
	cmd.Execute()
}
