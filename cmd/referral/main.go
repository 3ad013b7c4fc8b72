package main

import (
	"context"
	"errors"
	"os"

	"github.com/joho/godotenv"

	"github.com/fsdevblog/groph-referral/internal/logger"

	"github.com/fsdevblog/groph-referral/internal/app"
	"github.com/fsdevblog/groph-referral/internal/config"
)

func main() {
	// .env опционален, в проде конфиг приходит из окружения
	_ = godotenv.Load()

	conf := config.MustLoadConfig()
	l := logger.New(os.Stdout)

	if err := app.New(conf, l).Run(); err != nil {
		if errors.Is(err, context.Canceled) {
			l.Info("graceful shutdown")
			os.Exit(0)
		}
		panic(err)
	}
}
