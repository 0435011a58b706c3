package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tecnico-hr/config"
	"tecnico-hr/internal/api/handler"
	"tecnico-hr/internal/api/middleware"
	"tecnico-hr/pkg/jwt"
	"tecnico-hr/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Storage.MaxUploadSize))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── 上传文件静态访问（照片、文档）──
	r.Static("/media", cfg.Storage.RootDir)

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块（无需认证）
		auth := v1.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// 需要认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb, logger))
		{
			// 认证模块（需要认证）
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)
			authorized.POST("/auth/password", h.Auth.ChangePassword)

			// 员工档案模块：读开放给所有登录账号，写仅限 admin / hr
			employees := authorized.Group("/employees")
			{
				employees.GET("", h.Employee.List)
				employees.GET("/:id", h.Employee.Get)
				employees.POST("", middleware.RoleAuth("admin", "hr"), h.Employee.Create)
				employees.PATCH("/:id", middleware.RoleAuth("admin", "hr"), h.Employee.Update)
				employees.DELETE("/:id", middleware.RoleAuth("admin"), h.Employee.Delete)
				employees.POST("/:id/photo", middleware.RoleAuth("admin", "hr"), h.Employee.UploadPhoto)

				// 员工休假子资源
				employees.GET("/:id/vacations", h.Vacation.List)
				employees.POST("/:id/vacations", middleware.RoleAuth("admin", "hr"), h.Vacation.Create)
				employees.GET("/:id/vacations/balance", h.Vacation.Balance)

				// 员工文档子资源
				employees.GET("/:id/documents", h.Document.List)
				employees.POST("/:id/documents", middleware.RoleAuth("admin", "hr"), h.Document.Upload)
			}

			// 休假申请模块
			vacations := authorized.Group("/vacations")
			{
				vacations.GET("/:id", h.Vacation.Get)
				vacations.GET("/:id/remaining", h.Vacation.RemainingExcluding)
				vacations.POST("/:id/decision", middleware.RoleAuth("admin", "hr"), h.Vacation.Decide)
			}

			// 文档模块
			documents := authorized.Group("/documents")
			{
				documents.GET("/:id", h.Document.Get)
				documents.DELETE("/:id", middleware.RoleAuth("admin", "hr"), h.Document.Delete)
			}

			// 专长模块
			specialties := authorized.Group("/specialties")
			{
				specialties.GET("", h.Specialty.List)
				specialties.GET("/:id", h.Specialty.Get)
				specialties.POST("", middleware.RoleAuth("admin", "hr"), h.Specialty.Create)
				specialties.PATCH("/:id", middleware.RoleAuth("admin", "hr"), h.Specialty.Update)
				specialties.DELETE("/:id", middleware.RoleAuth("admin"), h.Specialty.Delete)
			}

			// 导出模块
			export := authorized.Group("/export")
			{
				export.GET("/employees", middleware.RoleAuth("admin", "hr"), h.Export.ExportEmployees)
				export.GET("/employees/:id/vacations.ics", h.Export.VacationCalendar)
			}
		}
	}

	return r
}
