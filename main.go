package main

import (
	"fmt"

	"github.com/Ayush29kumar/Restraunt-SaaS/configs"
	"github.com/Ayush29kumar/Restraunt-SaaS/middlewares"
	"github.com/Ayush29kumar/Restraunt-SaaS/routes"
	"github.com/Ayush29kumar/Restraunt-SaaS/session"
	"github.com/Ayush29kumar/Restraunt-SaaS/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

func main() {
	utils.InitLogger()

	cfg := configs.LoadConfig()

	db, err := configs.ConnectDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("connect database failed")
	}
	if err := configs.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate failed")
	}
	if err := configs.SeedSuperAdmin(db); err != nil {
		log.Fatal().Err(err).Msg("seed superadmin failed")
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	store := session.NewStore(rdb, cfg.SessionTTL)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(utils.GinLogger())
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, store, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info().Str("addr", addr).Msg("server running")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
