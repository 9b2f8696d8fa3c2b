package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	_ "go.uber.org/automaxprocs"

	"quebrada-backend/internal/core/auth"
	"quebrada-backend/internal/core/cache"
	"quebrada-backend/internal/core/config"
	"quebrada-backend/internal/core/database"
	"quebrada-backend/internal/core/logger"
	"quebrada-backend/internal/core/server"
	"quebrada-backend/internal/domain"
	"quebrada-backend/internal/repo"
	"quebrada-backend/internal/service"
	"quebrada-backend/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()

	cfgPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg := config.Load(*cfgPath)

	var log *zap.Logger
	var flush func()
	if cfg.Log.File != "" {
		log, flush = logger.NewWithRotate(cfg.Log.Level, cfg.Log.JSON, logger.FileRotate{
			Enable:     true,
			Filename:   cfg.Log.File,
			MaxSizeMB:  cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAgeDays: cfg.Log.MaxAgeDays,
			Compress:   cfg.Log.Compress,
		})
	} else {
		log, flush = logger.New(cfg.Log.Level, cfg.Log.JSON)
	}
	defer flush()

	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		log.Fatal("open database", zap.Error(err))
	}
	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(
			&domain.User{}, &domain.Product{}, &domain.Category{},
			&domain.ContactMessage{}, &domain.Task{},
		); err != nil {
			log.Fatal("auto migrate", zap.Error(err))
		}
	}
	if err := service.EnsureAdmin(repo.NewUserRepo(db), cfg.Admin, log); err != nil {
		log.Fatal("bootstrap admin", zap.Error(err))
	}

	rc := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	carts := repo.NewCartRepo(rc.RDB, time.Duration(cfg.Cart.TTLHours)*time.Hour)

	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.AccessTokenTTLMin) * time.Minute,
	}

	engine := router.NewAPIEngine(router.APIDeps{
		Log:   log,
		DB:    db,
		JWT:   jwter,
		Carts: carts,
		Cache: rc,
		Store: cfg.Store,
	})

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(addr, engine,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	go func() {
		log.Info("api listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
	_ = rc.RDB.Close()
}
