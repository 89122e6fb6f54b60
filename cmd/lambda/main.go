// Command lambda serves every API route from a single AWS Lambda function.
package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog/log"

	"github.com/serverless-sample/internal/app"
	"github.com/serverless-sample/internal/config"
	"github.com/serverless-sample/internal/logging"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}
	logging.Setup(cfg.LogLevel, false)

	a, err := app.Build(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("build app")
	}
	defer a.Close()

	lambda.Start(a.Router.Lambda())
}
