package handler

import (
	"SnackShop/config"
	"SnackShop/middleware"
	appctx "SnackShop/pkg/context"
	"SnackShop/pkg/response"
	"SnackShop/service"
	"SnackShop/types"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	Config      *config.Config
	AuthService service.IAuthService
}

func (h *Auth) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	auth := r.Group("/auth")
	auth.POST("/register", appctx.Wrap(h.Register))
	auth.POST("/login", appctx.Wrap(h.Login))
	auth.GET("/me", authorize, appctx.Wrap(h.Me))
	auth.PUT("/profile", authorize, appctx.Wrap(h.UpdateProfile))
	auth.PUT("/change-password", authorize, appctx.Wrap(h.ChangePassword))
}

func (h *Auth) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("invalid request body")
	}

	resp, err := h.AuthService.Register(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Created(c, "registration successful", resp)
	return nil
}

func (h *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("invalid request body")
	}

	resp, err := h.AuthService.Login(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Auth) Me(c *gin.Context) error {
	userID, err := appctx.GetUserID(c)
	if err != nil {
		return err
	}

	info, err := h.AuthService.Me(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, info)
	return nil
}

func (h *Auth) UpdateProfile(c *gin.Context) error {
	userID, err := appctx.GetUserID(c)
	if err != nil {
		return err
	}

	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("invalid request body")
	}

	if err := h.AuthService.UpdateProfile(c.Request.Context(), userID, &req); err != nil {
		return err
	}
	response.Message(c, "profile updated")
	return nil
}

func (h *Auth) ChangePassword(c *gin.Context) error {
	userID, err := appctx.GetUserID(c)
	if err != nil {
		return err
	}

	var req types.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("invalid request body")
	}

	if err := h.AuthService.ChangePassword(c.Request.Context(), userID, &req); err != nil {
		return err
	}
	response.Message(c, "password changed")
	return nil
}
