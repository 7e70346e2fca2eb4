package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/project/bookshelf/config"
	"github.com/project/bookshelf/internal/app"
	log "github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.NewConfig()

	if err != nil {
		log.Fatalf("can not get application config: %s", err)
	}

	var logger *zap.Logger

	logger, err = NewLogger(cfg.Environment)

	if err != nil {
		log.Fatalf("can not initialize logger: %s", err)
	}

	defer func() {
		_ = logger.Sync()
	}()

	app.Run(logger, cfg)
}

func NewLogger(environment string) (*zap.Logger, error) {
	if environment == "development" {
		return zap.NewDevelopment()
	}

	writeSyncer := zapcore.AddSync(os.Stdout)
	encoderCfg := zap.NewProductionEncoderConfig()
	encoder := zapcore.NewJSONEncoder(encoderCfg)

	core := zapcore.NewCore(encoder, writeSyncer, zap.InfoLevel)

	return zap.New(core), nil
}
