package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/ingest/parser"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/repository"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/service"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/versioning"
)

const maxUploadBytes = 10 << 20

// RunReader is satisfied by *repository.RunRepository.
type RunReader interface {
	GetByID(ctx context.Context, id string) (*repository.Run, error)
	ListByJob(ctx context.Context, jobID string, limit int) ([]repository.Run, error)
}

type Handler struct {
	svc    *service.Service
	outDir string
	runs   RunReader
}

// New builds the handler. runs may be nil when the run log is disabled.
func New(svc *service.Service, outDir string, runs RunReader) *Handler {
	return &Handler{svc: svc, outDir: outDir, runs: runs}
}

func (h *Handler) Validate(c *gin.Context) {
	var req ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid json body"})
		return
	}
	in, ok := input(c, req.Format, req.Content, req.JobID)
	if !ok {
		return
	}

	res, err := h.svc.Analyze(c.Request.Context(), in)
	if err != nil {
		writeError(c, "validate failed", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// ValidateUpload accepts a multipart "file"; the format comes from its extension.
func (h *Handler) ValidateUpload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "file is required"})
		return
	}
	if file.Size > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, errorResponse{Error: "file too large"})
		return
	}
	f, err := parser.FormatFromPath(file.Filename)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	rc, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: fmt.Sprintf("open upload: %v", err)})
		return
	}
	defer rc.Close()
	b, err := io.ReadAll(rc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: fmt.Sprintf("read upload: %v", err)})
		return
	}

	res, err := h.svc.Analyze(c.Request.Context(), service.Input{Format: f, Content: b, JobID: c.PostForm("job_id")})
	if err != nil {
		writeError(c, "validate failed", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) Improve(c *gin.Context) {
	var req ImproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid json body"})
		return
	}
	in, ok := input(c, req.Format, req.Content, req.JobID)
	if !ok {
		return
	}
	if req.TargetScore < 0 || req.TargetScore > 100 {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "target_score must be within 0..100"})
		return
	}
	if req.MaxIterations < 0 {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "max_iterations must not be negative"})
		return
	}
	var outFmt parser.Format
	if req.OutputFormat != "" {
		f, err := parser.ParseFormat(req.OutputFormat)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		outFmt = f
	}

	res, err := h.svc.Improve(c.Request.Context(), service.ImproveInput{
		Input:         in,
		TargetScore:   req.TargetScore,
		MaxIterations: req.MaxIterations,
		OutputFormat:  outFmt,
	})
	if err != nil {
		writeError(c, "improve failed", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) Rules(c *gin.Context) {
	rules := h.svc.Rules()
	out := make([]RuleResponse, 0, len(rules))
	for _, r := range rules {
		out = append(out, RuleResponse{
			Code:        r.Code,
			Name:        r.Name,
			Category:    r.Category,
			Severity:    string(r.Severity),
			Description: r.Description,
		})
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) ListVersions(c *gin.Context) {
	vs, err := versioning.ListVersions(h.outDir, c.Param("job_id"))
	if errors.Is(err, versioning.ErrInvalidID) {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, vs)
}

func (h *Handler) GetVersion(c *gin.Context) {
	v, err := versioning.ReadVersion(h.outDir, c.Param("job_id"), c.Param("version_id"))
	switch {
	case errors.Is(err, versioning.ErrInvalidID):
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	case errors.Is(err, versioning.ErrVersionNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	b, err := os.ReadFile(v.ProcessPath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: fmt.Sprintf("read version content: %v", err)})
		return
	}
	c.JSON(http.StatusOK, VersionResponse{Version: *v, Content: string(b)})
}

func (h *Handler) GetRun(c *gin.Context) {
	run, err := h.runs.GetByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrRunNotFound) {
		c.JSON(http.StatusNotFound, errorResponse{Error: "run not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, run)
}

func (h *Handler) ListRuns(c *gin.Context) {
	runs, err := h.runs.ListByJob(c.Request.Context(), c.Param("job_id"), 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, runs)
}

func input(c *gin.Context, format, content, jobID string) (service.Input, bool) {
	if content == "" {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "content is required"})
		return service.Input{}, false
	}
	f, err := parser.ParseFormat(format)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return service.Input{}, false
	}
	return service.Input{Format: f, Content: []byte(content), JobID: jobID}, true
}

func writeError(c *gin.Context, prefix string, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, service.ErrInvalidInput) {
		status = http.StatusBadRequest
	}
	c.JSON(status, errorResponse{Error: prefix + ": " + err.Error()})
}
