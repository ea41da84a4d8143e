package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"essencia/internal/config"
	"essencia/internal/http/handlers"
	applog "essencia/internal/log"
	"essencia/internal/repos"
)

func main() {
	flags := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	envFile := flags.String("env-file", ".env", "dotenv file to preload")
	addr := flags.StringP("addr", "a", "", "listen address, overrides PORT")
	dsn := flags.StringP("dsn", "d", "", "database DSN, overrides DB_DSN")
	seed := flags.Bool("seed", true, "seed an empty database with the starter catalog")
	_ = flags.Parse(os.Args[1:])

	config.LoadEnvFile(*envFile)
	cfg := config.Load()
	if *dsn != "" {
		cfg.DBDSN = *dsn
	}
	if flags.Changed("seed") {
		cfg.Seed = *seed
	}
	listen := ":" + cfg.Port
	if *addr != "" {
		listen = *addr
	}

	accessLog, closeLog, err := applog.Setup(cfg.LogFile)
	if err != nil {
		log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
	}
	defer closeLog()

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if cfg.Seed {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err := repos.SeedIfEmpty(ctx, db)
		cancel()
		if err != nil {
			log.Fatal(err)
		}
	}

	app := handlers.NewApp(handlers.NewDeps(db), cfg, accessLog)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Printf("[server] shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("[warn] shutdown: %v", err)
		}
	}()

	log.Printf("[server] listening on %s", listen)
	if err := app.Listen(listen); err != nil {
		log.Fatal(err)
	}
}
