package web

import (
	"context"
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/scienceol/pubchem/internal/config"
	core "github.com/scienceol/pubchem/pkg/core/compound"
	impl "github.com/scienceol/pubchem/pkg/core/compound/compound"
	"github.com/scienceol/pubchem/pkg/middleware/logger"
	"github.com/scienceol/pubchem/pkg/repo/pubchem"
	"github.com/scienceol/pubchem/pkg/web/views/compound"
	"github.com/scienceol/pubchem/pkg/web/views/health"
)

// NewRouter 注册 API 路由，所有 handler 共用一个 PubChem 客户端，用令牌桶限速
func NewRouter(ctx context.Context, g *gin.Engine) {
	conf := config.Global().PubChem
	svc := impl.New(pubchem.NewPubChemRepo(
		pubchem.WithLimiter(pubchem.NewTokenBucket(conf.Rate, 1)),
	))

	installMiddleware(g)
	installURL(ctx, g, svc)
}

func installMiddleware(g *gin.Engine) {
	g.ContextWithFallback = true
	server := config.Global().Server
	g.Use(cors.Default())
	g.Use(otelgin.Middleware(fmt.Sprintf("%s-%s", server.Platform, server.Service)))
	g.Use(logger.LogWithWriter())
}

func installURL(_ context.Context, g *gin.Engine, svc core.Service) {
	api := g.Group("/api")
	api.GET("/health", health.Health)
	api.GET("/health/live", health.Live)
	api.GET("/health/ready", health.Ready)

	h := compound.NewHandle(svc)
	v1 := api.Group("/v1")
	{
		compoundRouter := v1.Group("/compound")
		compoundRouter.GET("/cid", h.CID)
		compoundRouter.GET("/record", h.Record)
		compoundRouter.GET("/:cid/cas", h.CAS)
		compoundRouter.GET("/:cid/properties", h.Properties)
		compoundRouter.GET("/:cid/sdf", h.SDF)
	}
	{
		v1.GET("/formula/:formula", h.Formula)
	}
}
