package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"slingshot-server/pkg/config"
	"slingshot-server/pkg/scores"
	"slingshot-server/pkg/server/simulation"
	"slingshot-server/pkg/terminal"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"
)

func main() {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "slingterm must be run in an interactive terminal")
		os.Exit(1)
	}

	// log to a file so messages don't paint over the game
	logPath := config.GetEnv(config.EnvLogFile, "slingterm.log")
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open score store: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialise screen: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.HideCursor()

	var sound terminal.Sound = terminal.NoSound{}
	if speakerSound, err := terminal.NewSpeakerSound(); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("Audio initialization failed: %v", err)
	} else {
		sound = speakerSound
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	game := terminal.NewGame(screen, simulation.DefaultConfig(), store, sound)
	game.Run(ctx)

	game.Close()
	screen.Fini()
	fmt.Printf("Final score: %d  High score: %d\n", game.State().Score, game.HighScore())
}

// openStore uses the remote score API when SLING_SCORE_URL is set and a
// local score file otherwise
func openStore() (scores.Store, error) {
	if url := config.GetEnv(config.EnvScoreURL, ""); url != "" {
		log.Printf("Using remote score store at %s", url)
		return scores.NewClient(url, nil), nil
	}
	path := config.GetEnv(config.EnvScoreFile, "highscore.msgpack")
	log.Printf("Using score file %s", path)
	return scores.OpenFileStore(path)
}
