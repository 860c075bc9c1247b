package handler

import (
	"errors"
	"net/http"
	"strconv"

	gallery "github.com/aguasmedia/gallery"
	"github.com/aguasmedia/gallery/http/resp"
	"github.com/aguasmedia/gallery/user"
	"github.com/gorilla/mux"
)

// UsersHandler serves the CRUD surface over the user directory.
type UsersHandler struct {
	Handler
	users UserDirectory
}

func NewUsers(h Handler, users UserDirectory) *UsersHandler {
	return &UsersHandler{Handler: h, users: users}
}

func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.All()
	if err != nil {
		h.d.Err(w, r, err, resp.Code(http.StatusInternalServerError), resp.Msg("failed fetching users"))
		return
	}

	h.d.Json(w, r, resp.Data(users))
}

func (h *UsersHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	u, err := h.users.ByID(id)
	if errors.Is(err, gallery.ErrNotExist) {
		h.d.Err(w, r, nil, resp.Code(http.StatusNotFound), resp.Msg("user not found"))
		return
	}

	if err != nil {
		h.d.Err(w, r, err, resp.Code(http.StatusInternalServerError), resp.Msg("failed fetching user"))
		return
	}

	h.d.Json(w, r, resp.Data(u))
}

func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var u user.User
	if err := h.p.ParseBody(r.Body, &u); err != nil {
		h.d.Err(w, r, err, resp.Code(http.StatusBadRequest), resp.Msg("invalid user"))
		return
	}

	u.ID = 0
	if err := h.users.Create(&u); err != nil {
		if errors.Is(err, gallery.ErrNotValid) {
			h.d.Err(w, r, err, resp.Code(http.StatusBadRequest), resp.Msg("invalid user"))
			return
		}

		h.d.Err(w, r, err, resp.Code(http.StatusInternalServerError), resp.Msg("failed creating user"))
		return
	}

	h.d.Json(w, r, resp.Code(http.StatusCreated), resp.Data(u))
}

func (h *UsersHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	existing, err := h.users.ByID(id)
	if errors.Is(err, gallery.ErrNotExist) {
		h.d.Err(w, r, nil, resp.Code(http.StatusNotFound), resp.Msg("user not found"))
		return
	}

	if err != nil {
		h.d.Err(w, r, err, resp.Code(http.StatusInternalServerError), resp.Msg("failed fetching user"))
		return
	}

	var u user.User
	if err := h.p.ParseBody(r.Body, &u); err != nil {
		h.d.Err(w, r, err, resp.Code(http.StatusBadRequest), resp.Msg("invalid user"))
		return
	}

	u.ID = existing.ID
	u.CreatedAt = existing.CreatedAt
	if err := h.users.Update(&u); err != nil {
		h.d.Err(w, r, err, resp.Code(http.StatusInternalServerError), resp.Msg("failed updating user"))
		return
	}

	h.d.Json(w, r, resp.Data(u))
}

func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.users.Delete(id); err != nil {
		if errors.Is(err, gallery.ErrNotExist) {
			h.d.Err(w, r, nil, resp.Code(http.StatusNotFound), resp.Msg("user not found"))
			return
		}

		h.d.Err(w, r, err, resp.Code(http.StatusInternalServerError), resp.Msg("failed deleting user"))
		return
	}

	h.d.Json(w, r, resp.Data(map[string]interface{}{"message": "user deleted"}))
}

// pathID parses the {id} path variable, rejecting the request 400 itself
// when the value is not a positive integer.
func (h *UsersHandler) pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		h.d.Err(w, r, err, resp.Code(http.StatusBadRequest), resp.Msg("invalid id"))
		return 0, false
	}

	return uint(id), true
}
