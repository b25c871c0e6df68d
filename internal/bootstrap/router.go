package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/GoSim-25-26J-441/bpmn-compliance/internal/api/http"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/api/http/middleware"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/api/http/routes"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	CORSOrigins []string

	// nil when the dependency is disabled
	DB    httpapi.Pinger
	Cache httpapi.Pinger

	V1 routes.V1Deps
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     dep.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.HeaderRequestID},
		ExposeHeaders:    []string{middleware.HeaderRequestID},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB, dep.Cache)
	healthHandler.RegisterRoutes(r)

	routes.RegisterV1(r, dep.V1)

	return r
}
