// @title                       Clientes API
// @version                     1.0
// @description                 API REST de gestión de clientes.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
// @description                 Bearer <token>. Solo se exige si JWT_SECRET está configurado.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/clientes-api/docs"
	"github.com/jhoicas/clientes-api/internal/application/usecase"
	"github.com/jhoicas/clientes-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/clientes-api/internal/interfaces/http"
	"github.com/jhoicas/clientes-api/pkg/config"
	"github.com/jhoicas/clientes-api/pkg/logger"
	"github.com/jhoicas/clientes-api/pkg/pagination"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("version", cfg.App.Version).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	txRunner := postgres.NewTxRunner(pool)
	clienteUC := usecase.NewClienteUseCase(txRunner, log.Named("clientes"))

	app := httpRouter.NewApp(httpRouter.RouterDeps{
		ClienteUC: clienteUC,
		Validator: httpRouter.NewRequestValidator(httpRouter.ValidatorOptions{StrictCUIT: cfg.Validation.StrictCUIT}),
		Pagination: pagination.Config{
			DefaultPageSize: cfg.Pagination.DefaultPageSize,
			MaxPageSize:     cfg.Pagination.MaxPageSize,
		},
		JWTSecret: cfg.JWT.Secret,
		DB:        pool,
		Version:   cfg.App.Version,
		Log:       log,
	}, fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	})

	if cfg.Docs.Enabled {
		docPath, err := swaggerFile(cfg.Docs.FilePath)
		if err != nil {
			log.Warn().Err(err).Msg("swagger deshabilitado")
		} else {
			// Swagger UI en http://localhost:<port>/docs
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: docPath,
				Path:     "docs",
				Title:    cfg.App.Name,
			}))
		}
	}
	if !cfg.JWT.Enabled() {
		log.Warn().Msg("JWT_SECRET vacío: endpoints de escritura sin autenticación")
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// swaggerFile devuelve path si existe; si no, vuelca el documento registrado por swag a un archivo temporal.
// El middleware de swagger solo lee desde disco.
func swaggerFile(path string) (string, error) {
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	doc := docs.SwaggerInfo.ReadDoc()
	tmp := filepath.Join(os.TempDir(), fmt.Sprintf("clientes-api-swagger-%d.json", time.Now().UnixNano()))
	if err := os.WriteFile(tmp, []byte(doc), 0o600); err != nil {
		return "", fmt.Errorf("escribir swagger: %w", err)
	}
	return tmp, nil
}
