package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/saeidalz13/battleship-core/console"
	mb "github.com/saeidalz13/battleship-core/models/battleship"
)

func main() {
	if os.Getenv("STAGE") != StageProd {
		// .env is optional outside prod
		if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
			log.Fatalln(err)
		}
	}

	cfg, err := LoadConfig(os.Getenv("BATTLESHIP_CONFIG"))
	if err != nil {
		log.Fatalln(err)
	}
	logger := SetupLogger(cfg)

	cp, err := console.NewCommandProcessor(
		mb.NewBattleshipGameManager(),
		os.Stdin,
		os.Stdout,
		console.WithLogger(logger),
		console.WithShotsPerSalvo(cfg.Game.ShotsPerSalvo),
		console.WithFleetOptions(mb.WithBoardSize(cfg.Game.BoardSize), mb.WithCapacity(cfg.Game.FleetCapacity)),
	)
	if err != nil {
		log.Fatalln(err)
	}

	if cfg.Game.LayoutFile != "" {
		if err := cp.LoadLayout(cfg.Game.LayoutFile); err != nil {
			log.Fatalln(err)
		}
	}

	logger.Info("reading commands", "stage", cfg.Stage, "board_size", cfg.Game.BoardSize)
	if err := cp.Run(); err != nil {
		log.Fatalln(err)
	}
}
