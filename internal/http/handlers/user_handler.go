package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/JaunMarin423/CrudUsers/internal/services"
	"github.com/JaunMarin423/CrudUsers/internal/utils"
	"github.com/JaunMarin423/CrudUsers/internal/validation"
)

type UserHandler struct {
	users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	utils.RespondList(c, len(users), users)
}

func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.users.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	utils.RespondOK(c, user)
}

func (h *UserHandler) Create(c *gin.Context) {
	var req validation.UserInput
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, utils.BadRequest("Cuerpo de la solicitud inválido"))
		return
	}

	user, err := h.users.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	utils.RespondCreated(c, user)
}

// Update applies a partial patch; fields absent from the body are untouched.
func (h *UserHandler) Update(c *gin.Context) {
	var patch validation.UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		fail(c, utils.BadRequest("Cuerpo de la solicitud inválido"))
		return
	}

	user, err := h.users.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		fail(c, err)
		return
	}
	utils.RespondOK(c, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.users.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	utils.RespondOK(c, gin.H{})
}
