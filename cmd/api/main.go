package main

// @title Chat & Email API
// @version 1.0.0
// @description 聊天与邮件后端 API 文档
// @contact.name API Support
// @contact.email support@example.com
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"chatmail/backend/internal/config"
	"chatmail/backend/internal/logger"
	"chatmail/backend/internal/monitoring"
	"chatmail/backend/internal/service"
	"chatmail/backend/internal/storage"
	"chatmail/backend/internal/storage/memory"
	mongostore "chatmail/backend/internal/storage/mongo"
	httptransport "chatmail/backend/internal/transport/http"

	_ "chatmail/backend/docs" // Swagger docs
)

// main 是聊天与邮件 HTTP 服务的程序入口。
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	// 设置 Gin 模式（基于开发环境标志）
	if !cfg.Log.Development {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// 初始化日志系统
	logCfg := logger.Config{
		Level:       cfg.Log.Level,
		Development: cfg.Log.Development,
		LogFile:     cfg.Log.File,
	}
	log, err := logger.NewLogger(logCfg)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer log.Sync()
	log.Info("starting chatmail API server",
		zap.String("log_level", cfg.Log.Level),
		zap.Bool("development", cfg.Log.Development),
	)

	// 信号处理
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 初始化存储层：未配置数据库地址时退化为内存存储
	var store storage.Store
	if cfg.UseMemoryStore() {
		store = memory.NewStore()
		log.Info("using memory storage (DATABASE_URL not set)")
	} else {
		mongoStore, err := mongostore.Connect(ctx, cfg.Database.URL, cfg.Database.Name)
		if err != nil {
			log.Fatal("failed to connect to database", zap.Error(err))
		}
		store = mongoStore
		log.Info("connected to document database",
			zap.String("database", cfg.Database.Name),
		)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			log.Warn("storage close error", zap.Error(err))
		}
	}()

	// 初始化监控指标
	metrics := monitoring.NewMetrics()

	// 初始化服务层
	userService := service.NewUserService(store)
	conversationService := service.NewConversationService(store)
	messageService := service.NewMessageService(store, store, log)
	emailService := service.NewEmailService(store, log)
	emailService.SetMetrics(metrics)
	searchService := service.NewSearchService(store, store)

	// 创建 HTTP 路由
	router := httptransport.NewRouter(httptransport.RouterDependencies{
		Config:              cfg,
		UserService:         userService,
		ConversationService: conversationService,
		MessageService:      messageService,
		EmailService:        emailService,
		SearchService:       searchService,
		Store:               store,
		Metrics:             metrics,
		Logger:              log,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)

	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// 启动 HTTP 服务器
	go func() {
		log.Info("API server listening", zap.String("address", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutdown signal received, gracefully shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", zap.Error(err))
	} else {
		log.Info("server stopped cleanly")
	}
}
