package main

import (
	"context"

	"invoice_intake/internal/adapter/cli"
	"invoice_intake/internal/app"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	cli.Execute(func(ctx context.Context) (*cli.Services, error) {
		c, err := app.Build(ctx)
		if err != nil {
			return nil, err
		}
		return &cli.Services{Intake: c.Intake, Rates: c.Rates}, nil
	})
}
