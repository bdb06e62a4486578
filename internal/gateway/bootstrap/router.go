package bootstrap

import (
	authapp "github.com/Lexv0lk/secondhand-market/internal/auth/application"
	authdomain "github.com/Lexv0lk/secondhand-market/internal/auth/domain"
	authpostgres "github.com/Lexv0lk/secondhand-market/internal/auth/infrastructure/postgres"
	"github.com/Lexv0lk/secondhand-market/internal/gateway/domain"
	httpwrap "github.com/Lexv0lk/secondhand-market/internal/gateway/infrastructure/http"
	"github.com/Lexv0lk/secondhand-market/internal/market/application"
	"github.com/Lexv0lk/secondhand-market/internal/market/infrastructure/postgres"
	"github.com/Lexv0lk/secondhand-market/internal/pkg/database"
	"github.com/Lexv0lk/secondhand-market/internal/pkg/jwt"
	"github.com/Lexv0lk/secondhand-market/internal/pkg/logging"
	"github.com/Lexv0lk/secondhand-market/internal/pkg/metrics"
	"github.com/gin-gonic/gin"
)

// NewRouter wires the use cases over db and mounts every route. A nil guard disables purchase idempotency.
func NewRouter(
	cfg MarketConfig,
	db database.QueryTxBeginner,
	guard domain.IdempotencyGuard,
	registry *metrics.Registry,
	logger logging.Logger,
) *gin.Engine {
	txManager := database.NewDelegateTxManager(db, logger)

	usersRepository := postgres.NewUsersRepository(db)
	productsRepository := postgres.NewProductsRepository(db)
	ordersRepository := postgres.NewOrdersRepository(db)
	reportsRepository := postgres.NewReportsRepository(db)

	authenticator := authapp.NewAuthenticator(
		authpostgres.NewUsersRepository(db),
		authdomain.NewArgonPasswordHasher(),
		jwt.NewJWTTokenIssuer(),
		cfg.JwtSecret,
		cfg.StartBalance,
	)
	purchaseCase := application.NewPurchaseCase(
		txManager,
		postgres.NewProductLocker(),
		postgres.NewUserLocker(),
		postgres.NewPurchaser(),
	)
	reportCase := application.NewReportCase(
		txManager,
		postgres.NewReportCreator(),
		postgres.NewReportTallier(),
		postgres.NewModerator(),
		logger,
	)
	productsCase := application.NewProductsCase(productsRepository, usersRepository)
	profileCase := application.NewProfileCase(usersRepository, ordersRepository)
	adminCase := application.NewAdminCase(usersRepository, productsRepository, reportsRepository)
	chatCase := application.NewChatCase(txManager, postgres.NewChatRepository(db), postgres.NewRoomCreator())

	authHandler := httpwrap.NewAuthHandler(authenticator, profileCase, logger)
	productsHandler := httpwrap.NewProductsHandler(productsCase, purchaseCase, registry, logger)
	reportsHandler := httpwrap.NewReportsHandler(reportCase, registry, logger)
	adminHandler := httpwrap.NewAdminHandler(adminCase, logger)
	chatHandler := httpwrap.NewChatHandler(chatCase, logger)

	authMiddleware := httpwrap.NewAuthMiddleware(cfg.JwtSecret, jwt.NewJWTTokenParser(), usersRepository, logger)

	purchaseChain := []gin.HandlerFunc{authMiddleware}
	if guard != nil {
		purchaseChain = append(purchaseChain, httpwrap.NewIdempotencyMiddleware(guard, logger))
	}
	purchaseChain = append(purchaseChain, productsHandler.Purchase)

	router := gin.New()
	router.Use(gin.Recovery(), httpwrap.NewRequestMiddleware(logger, registry))

	router.GET("/metrics", gin.WrapH(registry.Handler()))

	idPath := "/:" + httpwrap.IDParamKey

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", authMiddleware, authHandler.Me)
		}

		products := api.Group("/products")
		{
			products.GET("", productsHandler.List)
			products.GET("/my", authMiddleware, productsHandler.Mine)
			products.GET(idPath, productsHandler.Get)
			products.POST("", authMiddleware, productsHandler.Create)
			products.PATCH(idPath, authMiddleware, productsHandler.Update)
			products.DELETE(idPath, authMiddleware, productsHandler.Delete)
			products.POST(idPath+"/purchase", purchaseChain...)
		}

		profile := api.Group("/users/profile", authMiddleware)
		{
			profile.PATCH("", authHandler.UpdateProfile)
			profile.PATCH("/password", authHandler.ChangePassword)
		}

		api.POST("/reports", authMiddleware, reportsHandler.File)

		chat := api.Group("/chat", authMiddleware)
		{
			chat.GET("/rooms", chatHandler.ListRooms)
			chat.POST("/rooms", chatHandler.OpenRoom)
			chat.GET("/rooms"+idPath+"/messages", chatHandler.ListMessages)
			chat.POST("/messages", chatHandler.PostMessage)
		}

		admin := api.Group("/admin", authMiddleware)
		{
			admin.GET("/reports", adminHandler.ListReports)
			admin.PATCH("/reports"+idPath, adminHandler.SetReportStatus)
			admin.PATCH("/users"+idPath, adminHandler.SetUserSuspended)
			admin.PATCH("/products"+idPath, adminHandler.SetProductStatus)
		}
	}

	return router
}
