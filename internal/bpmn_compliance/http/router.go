package http

import "github.com/gin-gonic/gin"

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/validate", h.Validate)
	rg.POST("/validate/upload", h.ValidateUpload)
	rg.POST("/improve", h.Improve)
	rg.GET("/rules", h.Rules)

	rg.GET("/versions/:job_id", h.ListVersions)
	rg.GET("/versions/:job_id/:version_id", h.GetVersion)

	if h.runs != nil {
		rg.GET("/runs/:id", h.GetRun)
		rg.GET("/jobs/:job_id/runs", h.ListRuns)
	}
}
