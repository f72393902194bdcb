package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/limbo/habbit/internal/repository"
	"github.com/limbo/habbit/pkg/config"
)

func main() {
	dir := flag.String("dir", "", "migrations directory (defaults to MIGRATIONS_DIR)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-dir path] up|down|status\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.New()
	if *dir == "" {
		*dir = cfg.MigrationsDir
	}
	dbCfg := repository.PGCfg{
		Address:  cfg.Postgres.Address,
		Username: cfg.Postgres.Username,
		Password: cfg.Postgres.Password,
		DB:       cfg.Postgres.DB,
		SSLMode:  cfg.Postgres.SSLMode,
	}

	var err error
	switch cmd := flag.Arg(0); cmd {
	case "up":
		err = repository.Migrate(dbCfg.ConnString(), *dir)
	case "down":
		err = repository.MigrateDown(dbCfg.ConnString(), *dir)
	case "status":
		err = repository.MigrationStatus(dbCfg.ConnString(), *dir)
	default:
		log.Fatalf("unknown command %q", cmd)
	}
	if err != nil {
		log.Fatal(err)
	}
}
