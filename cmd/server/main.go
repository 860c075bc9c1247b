package main

import (
	"context"
	"os"

	"github.com/aguasmedia/gallery/auth"
	"github.com/aguasmedia/gallery/drive"
	"github.com/aguasmedia/gallery/logger"
	"github.com/aguasmedia/gallery/postgres"
	"github.com/aguasmedia/gallery/server"
	"github.com/aguasmedia/gallery/user"
	_ "github.com/joho/godotenv/autoload"
)

func main() {
	cfg, err := server.NewConfig()
	if err != nil {
		// no logger yet; config failure is fatal either way
		logger.New().Fatal(err.Error(), nil)
		os.Exit(1)
	}

	l := logger.New(
		logger.WithEnv(cfg.Env.String()),
		logger.WithLevel(cfg.LogLevel),
	)

	svc, err := auth.NewService(cfg.JWTSecret, cfg.GoogleClientID)
	if err != nil {
		l.Fatal(err.Error(), nil)
		os.Exit(1)
	}

	db, err := postgres.Connect(&cfg.DB, user.Migrations(), cfg.Env)
	if err != nil {
		l.Fatal(err.Error(), nil)
		os.Exit(1)
	}

	images, err := drive.NewService(context.Background(), cfg.DriveCredentialsFile, cfg.DriveFolderID)
	if err != nil {
		l.Fatal(err.Error(), nil)
		os.Exit(1)
	}

	srv := server.New(cfg, l, svc, images, user.NewStore(db))
	if err := srv.Serve(); err != nil {
		l.Fatal(err.Error(), nil)
		os.Exit(1)
	}
}
