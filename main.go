package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	contractx "github.com/winspiration/assistant/agent/contract"
	promptx "github.com/winspiration/assistant/agent/prompt"
	routerx "github.com/winspiration/assistant/agent/router"
	"github.com/winspiration/assistant/channel/dialog"
	telegramx "github.com/winspiration/assistant/channel/telegram"
	webhookx "github.com/winspiration/assistant/channel/webhook"
	"github.com/winspiration/assistant/form"
	"github.com/winspiration/assistant/notify"
	configx "github.com/winspiration/assistant/pkg/config"
	logx "github.com/winspiration/assistant/pkg/logger"
	openaix "github.com/winspiration/assistant/pkg/openai"
)

type AppConfig struct {
	Port           int    `envconfig:"PORT" default:"3000"`
	Environment    string `envconfig:"ENVIRONMENT" default:"development"`
	RouterStrategy string `envconfig:"ROUTER_STRATEGY" split_words:"true" default:"llm"`
}

func main() {
	appCfg := configx.MustNew[AppConfig]("")
	logCfg := configx.MustNew[logx.Config]("LOG")
	logx.Init(*logCfg)

	log.Info().
		Int("port", appCfg.Port).
		Str("environment", appCfg.Environment).
		Str("router_strategy", appCfg.RouterStrategy).
		Msg("starting assistant")

	router, err := buildRouter(appCfg.RouterStrategy)
	if err != nil {
		log.Fatal().Err(err).Msg("startup validation failed")
	}

	forms := form.NewStore()
	notifier := notify.New(*configx.MustNew[notify.Config]("N8N"), logx.Component("notify"))
	coordinator := dialog.New(forms, router, notifier, logx.Component("dialog"))

	handler := webhookx.NewHandler(coordinator, logx.Component("webhook"))
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", appCfg.Port),
		Handler: handler.Routes(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	telegramCfg := configx.MustNew[telegramx.Config]("TELEGRAM")
	connector := telegramx.New(*telegramCfg, coordinator, logx.Component("telegram"))
	go func() {
		if err := connector.Start(ctx); err != nil {
			log.Error().Err(err).Msg("telegram connector exited")
		}
	}()

	go func() {
		log.Info().Str("addr", server.Addr).Msg("http server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("http server failed")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown failed")
		os.Exit(1)
	}
}

func buildRouter(strategy string) (contractx.Router, error) {
	switch strings.ToLower(strings.TrimSpace(strategy)) {
	case "keyword":
		return routerx.NewKeyword(logx.Component("router")), nil
	case "llm", "":
		if missing := configx.Missing("OPENAI_API_KEY"); len(missing) > 0 {
			return nil, fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
		}
		openaiCfg := configx.MustNew[openaix.Config]("OPENAI")
		client := openaix.NewClient(*openaiCfg)
		if client == nil {
			return nil, errors.New("failed to initialize completion client")
		}
		return routerx.NewLLM(&client.Chat.Completions, openaiCfg.Model, promptx.LoadPromptSet(), logx.Component("router")), nil
	default:
		return nil, fmt.Errorf("unknown router strategy %q (expected keyword or llm)", strategy)
	}
}
