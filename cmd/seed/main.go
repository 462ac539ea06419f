package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/oksasatya/kidprofile-api/config"
	"github.com/oksasatya/kidprofile-api/internal/application"
	"github.com/oksasatya/kidprofile-api/internal/container"
	pginfra "github.com/oksasatya/kidprofile-api/internal/infrastructure/postgres"
	"github.com/oksasatya/kidprofile-api/pkg/helpers"
)

// seed creates a demo parent with two children through the regular register flow.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env, cfg.LogLevel)
	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), pginfra.PoolOptions{MaxConns: 2})
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	c := container.New(cfg, logger, pginfra.NewStore(pool))

	email := "demo.parent@example.com"
	password := "password123"
	res, err := c.Accounts.Register(ctx, application.RegisterInput{
		Name:     "Demo Parent",
		Email:    email,
		Password: password,
		Children: []application.ChildInput{
			{Name: "Demo Kid One", AgeRange: "3-5"},
			{Name: "Demo Kid Two", AgeRange: "6-8"},
		},
	})
	var verr *application.ValidationError
	if errors.As(err, &verr) {
		fmt.Printf("demo parent not created: %v\n", verr.Messages)
		return
	}
	if err != nil {
		log.Fatalf("failed to seed demo parent: %v", err)
	}
	fmt.Printf("seeded parent: email=%s password=%s token=%s\n", email, password, res.Token)
}
