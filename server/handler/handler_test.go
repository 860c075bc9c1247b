package handler_test

import (
	"bytes"
	"context"
	"io"
	"log"

	gallery "github.com/aguasmedia/gallery"
	"github.com/aguasmedia/gallery/drive"
	"github.com/aguasmedia/gallery/http/req"
	"github.com/aguasmedia/gallery/http/resp"
	"github.com/aguasmedia/gallery/logger"
	"github.com/aguasmedia/gallery/server/handler"
	"github.com/aguasmedia/gallery/user"
)

func newTestHandler() handler.Handler {
	l := logger.New(logger.WithLogger(log.New(new(bytes.Buffer), "", 0)))
	return handler.New(resp.NewResponder(l), req.NewParser(), l, gallery.Testing)
}

// stubDirectory is a hand-rolled UserDirectory covering every seam the
// handlers touch.
type stubDirectory struct {
	users   []user.User
	err     error
	created *user.User
	updated *user.User
	deleted uint
}

func (s *stubDirectory) All() ([]user.User, error) { return s.users, s.err }

func (s *stubDirectory) ByEmail(email string) (user.User, error) {
	if s.err != nil {
		return user.User{}, s.err
	}

	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}

	return user.User{}, gallery.ErrNotExist
}

func (s *stubDirectory) ByID(id uint) (user.User, error) {
	if s.err != nil {
		return user.User{}, s.err
	}

	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}

	return user.User{}, gallery.ErrNotExist
}

func (s *stubDirectory) Create(u *user.User) error {
	if s.err != nil {
		return s.err
	}

	u.ID = 99
	s.created = u
	return nil
}

func (s *stubDirectory) Update(u *user.User) error {
	if s.err != nil {
		return s.err
	}

	s.updated = u
	return nil
}

func (s *stubDirectory) Delete(id uint) error {
	if s.err != nil {
		return s.err
	}

	for _, u := range s.users {
		if u.ID == id {
			s.deleted = id
			return nil
		}
	}

	return gallery.ErrNotExist
}

// stubLister is a hand-rolled ImageLister recording whether the
// collaborator was reached.
type stubLister struct {
	images    []drive.Image
	body      io.ReadCloser
	err       error
	listCalls int
}

func (s *stubLister) ListClientImages(_ context.Context, clientID string) ([]drive.Image, error) {
	s.listCalls++
	return s.images, s.err
}

func (s *stubLister) Download(_ context.Context, fileID string) (io.ReadCloser, error) {
	if s.err != nil {
		return nil, s.err
	}

	return s.body, nil
}
