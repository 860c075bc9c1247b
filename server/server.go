// Package server assembles the gallery API: configuration, middleware
// stack, routes and the HTTP server lifecycle.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aguasmedia/gallery/auth"
	"github.com/aguasmedia/gallery/http/middleware"
	"github.com/aguasmedia/gallery/http/req"
	"github.com/aguasmedia/gallery/http/resp"
	"github.com/aguasmedia/gallery/http/router"
	"github.com/aguasmedia/gallery/logger"
	"github.com/aguasmedia/gallery/server/handler"
)

// A Server wires the gallery API's components together and runs its
// HTTP lifecycle.
type Server struct {
	cfg Config
	l   logger.Logger
	r   *router.Router
	srv *http.Server
}

func New(cfg Config, l logger.Logger, svc *auth.Service, images handler.ImageLister, users handler.UserDirectory) *Server {
	d := resp.NewResponder(l)
	p := req.NewParser()

	base := handler.New(d, p, l, cfg.Env)
	authH := handler.NewAuth(base, svc, svc, users)
	imagesH := handler.NewImages(base, images)
	usersH := handler.NewUsers(base, users)

	r := router.New()
	r.OnEveryRequest(
		middleware.ReportPanic(cfg.Env),
		middleware.RequestID(),
		middleware.LogRequest(l),
		middleware.CORS(cfg.ClientOrigin),
	)

	gate := middleware.RequireSession(d, svc)
	currentUser := middleware.CurrentUser(d, func(id uint) (middleware.User, error) {
		u, err := users.ByID(id)
		if err != nil {
			return nil, err
		}

		return u, nil
	})

	r.HandleRoutes([]router.Route{
		{Path: "/auth/google-login", Method: http.MethodPost, Handler: authH.GoogleLogin},
		{Path: "/auth/logout", Method: http.MethodPost, Handler: authH.Logout},
	})

	r.AuthedRoutes(gate, []router.Route{
		{Path: "/auth/get-role", Method: http.MethodGet, Handler: authH.GetRole},
	})

	// image endpoints re-check the directory at call time
	r.AuthedRoutes(gate, []router.Route{
		{Path: "/get-images", Method: http.MethodGet, Handler: imagesH.GetImages},
		{Path: "/api/drive-file", Method: http.MethodGet, Handler: imagesH.DriveFile},
	}, currentUser)

	r.AuthedRoutes(gate, []router.Route{
		{Path: "/users", Method: http.MethodGet, Handler: usersH.List},
		{Path: "/users", Method: http.MethodPost, Handler: usersH.Create},
		{Path: "/users/{id}", Method: http.MethodGet, Handler: usersH.Get},
		{Path: "/users/{id}", Method: http.MethodPut, Handler: usersH.Update},
		{Path: "/users/{id}", Method: http.MethodDelete, Handler: usersH.Delete},
	})

	return &Server{
		cfg: cfg,
		l:   l,
		r:   r,
		srv: &http.Server{
			Addr:         ":" + cfg.Port,
			Handler:      r,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
	}
}

// Handler exposes the assembled route stack, primarily for tests.
func (s *Server) Handler() http.Handler { return s.r }

// Serve begins the web server and blocks until a shutdown signal
// (SIGHUP, SIGINT, SIGQUIT, SIGTERM or os.Interrupt) arrives, then
// drains in-flight requests before returning.
func (s *Server) Serve() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := make(chan os.Signal, 1)
	signal.Notify(
		ch,
		os.Interrupt,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)

	go func() {
		sig := <-ch
		s.l.Info(fmt.Sprint("received shutdown signal: ", sig), nil)
		cancel()
	}()

	go func() {
		s.l.Info(fmt.Sprintf("running web server at %s", s.srv.Addr), nil)
		if err := s.srv.ListenAndServe(); err != http.ErrServerClosed {
			s.l.Error(fmt.Sprint("could not listen: ", err), nil)
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	s.l.Info("shutting down web server", nil)
	return s.srv.Shutdown(shutdownCtx)
}
