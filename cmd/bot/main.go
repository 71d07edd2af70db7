package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/ohhell/internal/app"
	"github.com/KirkDiggler/ohhell/internal/config"
	"github.com/KirkDiggler/ohhell/internal/handlers/discord"
	"github.com/KirkDiggler/ohhell/internal/services/messaging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.DiscordToken == "" {
		log.Fatal("DISCORD_TOKEN environment variable is required")
	}

	a, err := app.New(context.Background(), cfg, "ohhell-bot")
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer a.Close()

	messagingService, err := messaging.NewService(&messaging.Config{})
	if err != nil {
		log.Fatalf("Failed to create messaging service: %v", err)
	}

	bot, err := discord.New(&discord.Config{
		Token:            cfg.DiscordToken,
		ApplicationID:    cfg.ApplicationID,
		GuildID:          cfg.GuildID,
		GameService:      a.GameService,
		MessagingService: messagingService,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	log.Println("Bot has been shut down")
}
