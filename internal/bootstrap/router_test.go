package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/api/http/routes"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/service"
)

func testRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	out := t.TempDir()
	return BuildRouter(RouterDeps{
		ServiceName: "bpmn-compliance",
		Version:     "test",
		CORSOrigins: []string{"https://app.example"},
		V1: routes.V1Deps{
			Service:        service.New(service.Options{OutDir: out}, service.Deps{}),
			OutDir:         out,
			RateLimitRPS:   100,
			RateLimitBurst: 100,
		},
	})
}

func TestBuildRouter(t *testing.T) {
	r := testRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"db":"disabled"`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/bpmn/rules", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}

func TestBuildRouter_CORS(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/bpmn/validate", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.example", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSetGinMode(t *testing.T) {
	defer gin.SetMode(gin.TestMode)
	SetGinMode("production")
	assert.Equal(t, gin.ReleaseMode, gin.Mode())
}
