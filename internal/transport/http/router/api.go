package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"quebrada-backend/internal/core/auth"
	"quebrada-backend/internal/core/cache"
	"quebrada-backend/internal/core/config"
	"quebrada-backend/internal/domain"
	"quebrada-backend/internal/service"
	mdw "quebrada-backend/internal/transport/http/middleware"
)

// APIDeps wires the public storefront engine.
type APIDeps struct {
	Log   *zap.Logger
	DB    *gorm.DB
	JWT   *auth.JWTer
	Carts domain.CartRepository
	Cache *cache.Cache // optional read cache; nil disables it
	Store config.Store
}

// NewAPIEngine serves the storefront surface: catalog reads, account
// registration and login, the contact form and the anonymous cart.
func NewAPIEngine(d APIDeps) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		cors.Default(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(d.Log, true),
		mdw.Metrics(),
		mdw.AccessLog(d.Log),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")

	authed := api.Group("")
	authed.Use(mdw.AuthJWT(d.JWT))

	cartSvc := service.NewCartService(d.Carts, productRepo(d.DB))
	checkoutSvc := service.NewCheckoutService(d.Carts, d.Store.Name, d.Store.WhatsApp)

	mountCatalogReads(api, d)
	mountAccountActions(api, authed, d)
	mountContactAction(api, d)
	mountCartActions(api, d, cartSvc, checkoutSvc)

	return r
}
