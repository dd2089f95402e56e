package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scienceol/pubchem/internal/config"
)

// Health 健康检查
func Health(g *gin.Context) {
	g.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Live 存活检查
func Live(g *gin.Context) {
	g.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready 返回上游地址，不请求 PubChem，不占用限速额度
func Ready(g *gin.Context) {
	conf := config.Global().PubChem
	g.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"checks": gin.H{
			"pubchem": conf.Addr,
			"rate":    conf.Rate,
		},
	})
}
