package http

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/tariqueislamanik2021-tech/webrtc-audio-call/internal/config"
	"github.com/tariqueislamanik2021-tech/webrtc-audio-call/internal/core"
)

// NewServer builds the HTTP server hosting the signaling endpoint and,
// optionally, the static client assets.
func NewServer(hub *core.Hub, cfg config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", healthHandler)
	router.GET("/ws", gin.WrapH(NewWSHandler(hub, logger)))

	if cfg.StaticDir != "" {
		fileServer := stdhttp.FileServer(stdhttp.Dir(cfg.StaticDir))
		router.NoRoute(gin.WrapH(fileServer))
	}

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}

func healthHandler(c *gin.Context) {
	c.String(stdhttp.StatusOK, "ok")
}
