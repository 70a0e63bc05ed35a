package httptransport

import (
	"time"

	gincors "github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"chatmail/backend/internal/config"
	"chatmail/backend/internal/health"
	"chatmail/backend/internal/middleware"
	"chatmail/backend/internal/monitoring"
	"chatmail/backend/internal/service"
	"chatmail/backend/internal/storage"

	"go.uber.org/zap"
)

// Handler 聚合所有 HTTP 处理逻辑。
type Handler struct {
	users         *service.UserService
	conversations *service.ConversationService
	messages      *service.MessageService
	emails        *service.EmailService
	searcher      *service.SearchService
}

// RouterDependencies 路由器依赖项
type RouterDependencies struct {
	Config              *config.Config
	UserService         *service.UserService
	ConversationService *service.ConversationService
	MessageService      *service.MessageService
	EmailService        *service.EmailService
	SearchService       *service.SearchService
	Store               storage.Store       // 存储接口，供诊断与就绪检查使用
	Metrics             *monitoring.Metrics // 可为 nil（测试环境不注册指标）
	Logger              *zap.Logger
}

// NewRouter 创建并返回 Gin 路由实例。
func NewRouter(deps RouterDependencies) *gin.Engine {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	router := gin.New()

	// 使用自定义中间件替代默认中间件
	router.Use(middleware.RecoveryHandler(log, deps.Metrics))
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.SecurityHeaders())

	// 全局请求体大小限制 10MB
	router.Use(middleware.BodySizeLimit(10 * 1024 * 1024))

	// CORS 配置
	corsConfig := gincors.Config{
		AllowOrigins:     deps.Config.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	// 如果允许所有来源，则需清空凭证支持。
	for _, origin := range corsConfig.AllowOrigins {
		if origin == "*" {
			corsConfig.AllowCredentials = false
			break
		}
	}
	router.Use(gincors.New(corsConfig))

	// 监控中间件（指标为 nil 时跳过）
	if deps.Metrics != nil {
		router.Use(middleware.HTTPMetrics(deps.Metrics))
		router.Use(middleware.BusinessMetrics(deps.Metrics))
	}

	// 创建处理器
	handler := &Handler{
		users:         deps.UserService,
		conversations: deps.ConversationService,
		messages:      deps.MessageService,
		emails:        deps.EmailService,
		searcher:      deps.SearchService,
	}
	publicHandler := NewPublicHandler(deps.Config, deps.Store)

	// Swagger 文档
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 服务信息与数据库诊断
	router.GET("/", publicHandler.Root)
	router.GET("/test", publicHandler.TestDatabase)

	// 健康检查
	checker := health.NewChecker(deps.Store)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/live", gin.WrapF(checker.LiveEndpoint()))
	router.GET("/ready", gin.WrapF(checker.ReadyEndpoint()))

	// Prometheus 指标
	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	// 业务 API
	api := router.Group("/api")
	{
		// ========== Users ==========
		api.POST("/users", handler.createUser)
		api.GET("/users", handler.listUsers)

		// ========== Conversations & Messages ==========
		api.POST("/conversations", handler.createConversation)
		api.GET("/conversations", handler.listConversations)
		api.GET("/conversations/:id", handler.getConversation)
		api.GET("/conversations/:id/messages", handler.listMessages)
		api.POST("/messages", handler.sendMessage)

		// ========== Emails ==========
		api.POST("/emails", handler.sendEmail)
		api.GET("/emails", handler.listEmails)
		api.PATCH("/emails/:id", handler.updateEmail)

		// ========== Search ==========
		api.GET("/search", handler.search)
	}

	return router
}
