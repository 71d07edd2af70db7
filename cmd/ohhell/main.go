package main

import (
	"os"

	"github.com/KirkDiggler/ohhell/internal/config"
	"github.com/KirkDiggler/ohhell/internal/terminal"
	"github.com/pterm/pterm"
)

// prompter reads answers with pterm's interactive text input
type prompter struct{}

func (prompter) Ask(prompt string) (string, error) {
	return pterm.DefaultInteractiveTextInput.WithDefaultText(prompt).Show()
}

func main() {
	bonus := 0
	if cfg, err := config.Load(); err == nil {
		bonus = cfg.ExactBidBonus
	} else {
		pterm.Warning.Printfln("Ignoring config: %v", err)
	}

	pterm.DefaultHeader.WithFullWidth().Println("Oh Hell Score Recorder")

	session, err := terminal.New(&terminal.Config{
		Prompter:      prompter{},
		Out:           os.Stdout,
		ExactBidBonus: bonus,
	})
	if err != nil {
		pterm.Fatal.Println(err)
	}

	if err := session.Run(); err != nil {
		pterm.Fatal.Println(err)
	}
}
