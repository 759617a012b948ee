package server

import (
	"embed"
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	v1 "reviewlens/internal/api/v1"
	"reviewlens/internal/config"
	"reviewlens/internal/extract"
	"reviewlens/internal/insight"
	"reviewlens/internal/store"
)

//go:embed all:dist
var staticFiles embed.FS

// Server HTTP 서버
type Server struct {
	router   *gin.Engine
	sessions *store.SessionStore
	v1       *v1.Handler
}

// NewServer 서버 생성
func NewServer(cfg *config.AppConfig) *Server {
	devMode := cfg.Server.DevMode
	if !devMode {
		gin.SetMode(gin.ReleaseMode)
	}

	apiKey := config.APIKey()

	// 분석기 구성: OpenAI 호출 + 추출 정책
	completer := insight.NewOpenAICompleter(apiKey, cfg.OpenAI.Model, cfg.OpenAI.Temperature)
	analyzer := insight.NewAnalyzer(completer, insight.Options{
		MaxReviews: cfg.OpenAI.MaxReviews,
		Timeout:    time.Duration(cfg.OpenAI.TimeoutSeconds) * time.Second,
	})

	policy := extract.Policy{
		MinTextLength: cfg.Extract.MinTextLength,
		Separator:     cfg.Extract.Separator,
	}

	sessions := store.NewSessionStore()
	v1Handler := v1.NewHandler(sessions, analyzer, policy, cfg.Upload.MaxPreviewRows, cfg.OpenAI.Model, apiKey != "")

	s := &Server{
		router:   gin.Default(),
		sessions: sessions,
		v1:       v1Handler,
	}

	s.setupRoutes(devMode)

	return s
}

// setupRoutes 라우트 설정
func (s *Server) setupRoutes(devMode bool) {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// V1 API 라우트
	api := s.router.Group("/api")
	{
		s.v1.RegisterRoutes(api)
	}

	// 정적 리소스
	if devMode {
		// 개발 모드: 프런트엔드 개발 서버로 리다이렉트
		s.router.NoRoute(func(c *gin.Context) {
			c.Redirect(http.StatusTemporaryRedirect, "http://localhost:5173"+c.Request.URL.Path)
		})
	} else {
		// 프로덕션 모드: embed된 정적 리소스 사용
		sub, _ := fs.Sub(staticFiles, "dist")

		// 메인 페이지
		s.router.GET("/", func(c *gin.Context) {
			data, _ := fs.ReadFile(sub, "index.html")
			c.Data(http.StatusOK, "text/html; charset=utf-8", data)
		})

		// SPA 라우팅 fallback
		s.router.NoRoute(func(c *gin.Context) {
			data, _ := fs.ReadFile(sub, "index.html")
			c.Data(http.StatusOK, "text/html; charset=utf-8", data)
		})
	}
}

// Run 서버 시작
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Sessions 세션 저장소 (테스트용)
func (s *Server) Sessions() *store.SessionStore {
	return s.sessions
}
