// Copyright (c) 2026 Tolaria. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command metadata rebuilds the derived search records for the card
// catalogue: per-face symbol counts and mana production flags, and per-card
// sort keys and commander eligibility. It is run after every catalogue
// import and is safe to re-run; unchanged records are left untouched.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/taibuivan/tolaria/internal/core/card"
	"github.com/taibuivan/tolaria/internal/platform/config"
	pgstore "github.com/taibuivan/tolaria/internal/platform/postgres"
	"github.com/taibuivan/tolaria/internal/search/metadata"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})).With(slog.String("app", "tolaria-metadata"))
	slog.SetDefault(log)

	cfg, err := config.Load()
	must(log, err, "load configuration")

	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	startupCancel()
	must(log, err, "connect to postgres")
	defer pool.Close()

	rebuilder := metadata.NewRebuilder(
		card.NewPostgresRepository(pool),
		metadata.NewPostgresRepository(pool),
		log,
		cfg.MetadataWorkers,
	)

	started := time.Now()
	summary, err := rebuilder.Run(context.Background())
	must(log, err, "rebuild search metadata")

	log.Info("metadata_rebuild_complete",
		slog.Int("cards", summary.Cards),
		slog.Int("faces", summary.Faces),
		slog.Int("changed_cards", summary.ChangedCards),
		slog.Int("changed_faces", summary.ChangedFaces),
		slog.Duration("elapsed", time.Since(started)),
	)
}

// must logs a structured fatal error and terminates the process if err is non-nil.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
