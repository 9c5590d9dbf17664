package main

import (
	"flag"
	"fmt"

	"github.com/pressly/goose/v3"

	"stockpile/config"
	"stockpile/internal/pkg/database"
	"stockpile/internal/pkg/logger"
)

func main() {
	var migrationsDir string
	flag.StringVar(&migrationsDir, "dir", "./sql", "directory with migration files")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewLogger("info").Fatal("goose: configuração inválida", err)
	}
	log := logger.NewLogger(cfg.LogLevel)

	if cfg.StorageDriver != config.StoragePostgres {
		log.Fatal("goose: migrations exigem STORAGE_DRIVER=postgres", fmt.Errorf("driver atual: %s", cfg.StorageDriver))
	}

	// Connect to the database
	db, err := database.NewPostgresDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("goose: failed to connect to DB", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("goose: failed to close DB", err)
		}
	}()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal("goose: dialeto não suportado", err)
	}

	arguments := flag.Args()
	if len(arguments) == 0 {
		arguments = []string{"up"} // Default to 'up' if no command is provided
	}

	command := arguments[0]
	var args []string
	if len(arguments) > 1 {
		args = arguments[1:]
	}

	if err := goose.Run(command, db.DB, migrationsDir, args...); err != nil {
		log.Fatal(fmt.Sprintf("goose %v", command), err)
	}

	log.Info("goose concluído", map[string]interface{}{"command": command})
}
