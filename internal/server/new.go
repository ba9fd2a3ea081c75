package server

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/nguyentantai21042004/textai/internal/config"
	"github.com/nguyentantai21042004/textai/internal/logger"
	"github.com/nguyentantai21042004/textai/internal/normalizer"
	"github.com/nguyentantai21042004/textai/internal/session"
	"github.com/nguyentantai21042004/textai/internal/speech"
	"github.com/nguyentantai21042004/textai/internal/summarizer"
)

// Deps are the collaborators the UI orchestrates.
type Deps struct {
	Normalizer  normalizer.Normalizer
	Summarizer  summarizer.Summarizer
	Synthesizer speech.Synthesizer
	// APIKey enables the remote summarization path when set.
	APIKey string
}

type implServer struct {
	cfg      *config.Config
	deps     Deps
	store    *session.Store
	logger   logger.Logger
	upgrader websocket.Upgrader
	router   *gin.Engine
}

// New creates the web UI server and registers its routes.
func New(cfg *config.Config, deps Deps, log logger.Logger) Server {
	s := &implServer{
		cfg:    cfg,
		deps:   deps,
		store:  session.NewStore(cfg.Server.SessionTTL),
		logger: log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     sameOrigin,
		},
	}
	s.router = s.routes()
	return s
}

func (s *implServer) routes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger)
	router.MaxMultipartMemory = s.cfg.Server.MaxUpload

	tmpl := template.Must(template.New("").Funcs(templateFuncs).ParseFS(templatesFS, "templates/*.html"))
	router.SetHTMLTemplate(tmpl)

	router.GET("/", s.handleIndex)
	router.POST("/summarize", s.handleSummarize)
	router.POST("/speech", s.handleSpeech)
	router.POST("/highlight", s.handleHighlightToggle)

	router.GET("/audio/speech.mp3", s.handleAudio(false))
	router.GET("/download/speech.mp3", s.handleAudio(true))
	router.GET("/download/summary.txt", s.handleSummaryText)
	router.GET("/download/summary.docx", s.handleSummaryDocx)

	router.GET("/ws/sync", s.handleSync)

	return router
}

func (s *implServer) Handler() http.Handler {
	return s.router
}

func sameOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	return origin == "http://"+r.Host || origin == "https://"+r.Host
}
