package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"

	"github.com/jhoicas/clientes-api/internal/infrastructure/postgres"
	"github.com/jhoicas/clientes-api/pkg/config"
	"github.com/jhoicas/clientes-api/pkg/logger"
)

func main() {
	var (
		dsn     = flag.String("dsn", "", "Connection string (por defecto DATABASE_URL o DB_*)")
		up      = flag.Bool("up", false, "Aplicar todas las migraciones pendientes")
		down    = flag.Bool("down", false, "Revertir todas las migraciones")
		steps   = flag.Int("steps", 0, "Cantidad de migraciones (positivo=up, negativo=down)")
		version = flag.Bool("version", false, "Mostrar la versión actual")
		force   = flag.Int("force", -1, "Forzar versión (usar con cuidado)")
	)
	flag.Parse()

	forceSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "force" {
			forceSet = true
		}
	})

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level}).Named("migrate")

	if *dsn == "" {
		*dsn = cfg.DB.ConnectionString()
	}

	m, err := postgres.NewMigrator(*dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("crear migrador")
	}
	defer m.Close()

	switch {
	case *version:
		v, dirty, err := m.Version()
		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			log.Fatal().Err(err).Msg("obtener versión")
		}
		log.Info().Uint("version", v).Bool("dirty", dirty).Msg("versión actual")
	case forceSet:
		if err := m.Force(*force); err != nil {
			log.Fatal().Err(err).Msg("forzar versión")
		}
		log.Info().Int("version", *force).Msg("versión forzada")
	case *up:
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatal().Err(err).Msg("aplicar migraciones")
		}
		log.Info().Msg("migraciones aplicadas")
	case *down:
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatal().Err(err).Msg("revertir migraciones")
		}
		log.Info().Msg("migraciones revertidas")
	case *steps != 0:
		if err := m.Steps(*steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatal().Err(err).Msg("aplicar pasos")
		}
		log.Info().Int("steps", *steps).Msg("pasos aplicados")
	default:
		fmt.Println("uso: migrate [-dsn <connection-string>] [-up|-down|-steps N|-version|-force N]")
		flag.PrintDefaults()
	}
}
