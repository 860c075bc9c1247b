// Package handler implements the gallery API's endpoints.
package handler

import (
	"context"
	"io"

	gallery "github.com/aguasmedia/gallery"
	"github.com/aguasmedia/gallery/drive"
	"github.com/aguasmedia/gallery/http/req"
	"github.com/aguasmedia/gallery/http/resp"
	"github.com/aguasmedia/gallery/logger"
	"github.com/aguasmedia/gallery/user"
)

// A UserDirectory is the authorized-user surface handlers call.
type UserDirectory interface {
	All() ([]user.User, error)
	ByEmail(email string) (user.User, error)
	ByID(id uint) (user.User, error)
	Create(u *user.User) error
	Update(u *user.User) error
	Delete(id uint) error
}

// An ImageLister is the file-storage surface handlers call.
type ImageLister interface {
	ListClientImages(ctx context.Context, clientID string) ([]drive.Image, error)
	Download(ctx context.Context, fileID string) (io.ReadCloser, error)
}

// Handler carries the dependencies every endpoint shares.
type Handler struct {
	d   *resp.Responder
	p   *req.Parser
	l   logger.Logger
	env gallery.Environment
}

func New(d *resp.Responder, p *req.Parser, l logger.Logger, env gallery.Environment) Handler {
	return Handler{d: d, p: p, l: l, env: env}
}
