package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/JaunMarin423/CrudUsers/internal/http/middleware"
	"github.com/JaunMarin423/CrudUsers/internal/services"
	"github.com/JaunMarin423/CrudUsers/internal/utils"
	"github.com/JaunMarin423/CrudUsers/internal/validation"
)

type AuthHandler struct {
	auth *services.AuthService
}

// RegisterRequest deliberately has no role field; self-registration always
// produces a regular user.
type RegisterRequest struct {
	Name           string  `json:"name"`
	LastName       string  `json:"lastName"`
	MotherLastName *string `json:"motherLastName"`
	PhoneNumber    string  `json:"phoneNumber"`
	Email          string  `json:"email"`
	Username       string  `json:"username"`
	Password       string  `json:"password"`
}

type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, utils.BadRequest("Cuerpo de la solicitud inválido"))
		return
	}

	user, token, err := h.auth.Register(c.Request.Context(), validation.UserInput{
		Name:           req.Name,
		LastName:       req.LastName,
		MotherLastName: req.MotherLastName,
		PhoneNumber:    req.PhoneNumber,
		Email:          req.Email,
		Username:       req.Username,
		Password:       req.Password,
	})
	if err != nil {
		fail(c, err)
		return
	}

	utils.RespondCreated(c, gin.H{"user": user, "token": token})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, utils.BadRequest("Cuerpo de la solicitud inválido"))
		return
	}

	user, token, err := h.auth.Login(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		fail(c, err)
		return
	}

	utils.RespondOK(c, gin.H{"user": user, "token": token})
}

// Logout is stateless; tokens stay valid until expiry and the client simply
// discards its copy.
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.RespondOK(c, gin.H{"message": "Sesión cerrada correctamente"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		fail(c, utils.Unauthorized("No estás autenticado."))
		return
	}
	utils.RespondOK(c, user)
}

func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
