package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/tomandjerry17/cafeteria-backend/configs"
	"github.com/tomandjerry17/cafeteria-backend/middlewares"
	"github.com/tomandjerry17/cafeteria-backend/pkg/logger"
	"github.com/tomandjerry17/cafeteria-backend/pkg/mailer"
	"github.com/tomandjerry17/cafeteria-backend/routes"
)

func main() {
	logger.Init("cafeteria-backend")

	cfg := configs.LoadConfig()

	db, err := configs.Connect(cfg)
	if err != nil {
		slog.Error("database connect failed", "err", err)
		os.Exit(1)
	}
	if err := configs.Migrate(db); err != nil {
		slog.Error("migrate failed", "err", err)
		os.Exit(1)
	}
	if err := configs.SeedAdmin(db, cfg); err != nil {
		slog.Error("seed admin failed", "err", err)
		os.Exit(1)
	}

	var mail mailer.Mailer = mailer.Noop{}
	if cfg.SMTPHost != "" {
		mail = mailer.NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFrom)
	}

	r := gin.Default()
	r.Use(middlewares.CORSMiddleware(cfg.FrontendOrigins))
	routes.RegisterRoutes(r, db, cfg, mail)

	addr := fmt.Sprintf(":%s", cfg.Port)
	slog.Info("server starting", "addr", addr)
	if err := r.Run(addr); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
