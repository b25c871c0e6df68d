package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/api/http/middleware"
	bpmnhttp "github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/http"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/service"
)

type V1Deps struct {
	Service *service.Service
	OutDir  string
	// nil disables the run endpoints
	Runs bpmnhttp.RunReader

	RateLimitRPS   float64
	RateLimitBurst int
}

func RegisterV1(r *gin.Engine, dep V1Deps) {
	api := r.Group("/api/v1")
	api.Use(middleware.RequestIDMiddleware())
	if dep.RateLimitRPS > 0 {
		api.Use(middleware.RateLimit(dep.RateLimitRPS, dep.RateLimitBurst))
	}

	bpmn := api.Group("/bpmn")
	bpmnhttp.New(dep.Service, dep.OutDir, dep.Runs).Register(bpmn)
}
