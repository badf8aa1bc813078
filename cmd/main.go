package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"iraxas/internal/auth"
	"iraxas/internal/cache"
	"iraxas/internal/config"
	httpapi "iraxas/internal/http"
	"iraxas/internal/mail"
	"iraxas/internal/payment"
	"iraxas/internal/repository"
	"iraxas/internal/service"

	_ "iraxas/docs"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := repository.ConnectMongoDB(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("mongodb: %v", err)
	}
	log.Printf("Connected to MongoDB at %s", cfg.MongoURI)

	usersRepo := repository.NewMongoUsers(db)
	codesRepo := repository.NewMongoCodes(db)
	productsRepo := repository.NewMongoProducts(db)
	cartsRepo := repository.NewMongoCarts(db)
	ordersRepo := repository.NewMongoOrders(db)

	if err := usersRepo.CreateIndexes(ctx); err != nil {
		log.Fatalf("user indexes: %v", err)
	}
	if err := codesRepo.CreateIndexes(ctx); err != nil {
		log.Fatalf("code indexes: %v", err)
	}
	if err := cartsRepo.CreateIndexes(ctx); err != nil {
		log.Fatalf("cart indexes: %v", err)
	}
	if err := ordersRepo.CreateIndexes(ctx); err != nil {
		log.Fatalf("order indexes: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       0,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("redis: %v", err)
	}

	// long-lived clients, built once from env credentials
	gateway := payment.NewRazorpayGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	mailer := mail.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.FromEmail)
	tokens := auth.NewTokenManager(cfg.JWTSecret, 30*24*time.Hour)

	authSvc := service.NewAuthService(usersRepo, codesRepo, mailer, tokens)
	productsSvc := service.NewProductService(productsRepo, cache.NewRedisCache(redisClient))
	cartsSvc := service.NewCartService(cartsRepo, productsRepo)
	ordersSvc := service.NewOrderService(ordersRepo, gateway, cfg.RazorpayKeySecret)

	srv := httpapi.NewServer(authSvc, productsSvc, cartsSvc, ordersSvc, tokens)

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: srv.Engine(),
	}

	go func() {
		log.Printf("HTTP server listening on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
	if err := db.Client().Disconnect(shutdownCtx); err != nil {
		log.Printf("mongodb disconnect error: %v", err)
	}
}
