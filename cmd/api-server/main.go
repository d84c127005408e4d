package main

import (
	"Trophy/config"
	"Trophy/models"
	"Trophy/pkg/database"
	"Trophy/pkg/log"
	"Trophy/pkg/server"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)
	cfg := config.New(path)
	log.Init(cfg.Log)
	defer func() { _ = log.L.Sync() }()

	cliApp := &cli.App{
		Name:  "api-server",
		Usage: "trophy photo sharing backend",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "migrate", Usage: "sync schema before serving"},
				},
				Action: func(ctx *cli.Context) error {
					if ctx.Bool("migrate") {
						if err := database.Migrate(database.NewDB(cfg)); err != nil {
							return fmt.Errorf("migrate: %w", err)
						}
					}
					return server.Run(ctx, InitServer(cfg))
				},
			},
			{
				Name:  "migrate",
				Usage: "sync database schema",
				Action: func(ctx *cli.Context) error {
					if err := database.Migrate(database.NewDB(cfg)); err != nil {
						return err
					}
					log.L.Info("migrate done")
					return nil
				},
			},
			{
				Name:  "promote",
				Usage: "set user role",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "email", Required: true},
					&cli.StringFlag{Name: "role", Value: models.RoleAdmin},
				},
				Action: func(ctx *cli.Context) error {
					svc := InitUserService(cfg)
					if err := svc.SetRole(ctx.Context, ctx.String("email"), ctx.String("role")); err != nil {
						return err
					}
					log.L.Info("role updated", zap.String("email", ctx.String("email")), zap.String("role", ctx.String("role")))
					return nil
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("api-server failed", zap.Error(err))
	}
}
