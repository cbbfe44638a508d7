package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/camaradigital/proposicoes-api/internal/application/auth"
	"github.com/camaradigital/proposicoes-api/internal/application/usecase"
	infrapdf "github.com/camaradigital/proposicoes-api/internal/infrastructure/pdf"
	"github.com/camaradigital/proposicoes-api/internal/infrastructure/redisstore"
	httpRouter "github.com/camaradigital/proposicoes-api/internal/interfaces/http"
	"github.com/camaradigital/proposicoes-api/pkg/config"
	"github.com/camaradigital/proposicoes-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	store, err := redisstore.New(ctx, redisstore.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao Redis")
	}
	defer store.Close()

	usuarioRepo := redisstore.NewUsuarioRepository(store)
	proposicaoRepo := redisstore.NewProposicaoRepository(store)
	sessaoRepo := redisstore.NewSessaoRepository(store)

	authUC := auth.NewAuthUseCase(usuarioRepo, sessaoRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo)
	proposicaoUC := usecase.NewProposicaoUseCase(proposicaoRepo, usuarioRepo)

	// PDF: comprovante de protocolo, gerado apenas para proposições protocoladas
	pdfGenerator := infrapdf.NewMarotoComprovanteGenerator()
	comprovanteUC := usecase.NewComprovanteUseCase(proposicaoRepo, usuarioRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Proposições API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		UsuarioUC:     usuarioUC,
		ProposicaoUC:  proposicaoUC,
		ComprovanteUC: comprovanteUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação parada")
}
