package controllers

import (
	"net/http"

	"github.com/propertyhub/listings-api/internal/dtos"
	"github.com/propertyhub/listings-api/internal/services"
	"github.com/propertyhub/listings-api/internal/utils"
)

type AccountController struct {
	svc services.AccountService
}

func NewAccountController(svc services.AccountService) *AccountController {
	return &AccountController{svc: svc}
}

// Register => POST /api/v1/account/register
func (c *AccountController) Register(w http.ResponseWriter, r *http.Request) {
	var req dtos.RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	resp, err := c.svc.Register(r.Context(), &req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, resp)
}

// Login => POST /api/v1/account/login
func (c *AccountController) Login(w http.ResponseWriter, r *http.Request) {
	var req dtos.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	resp, err := c.svc.Login(r.Context(), &req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// ForgotPassword => POST /api/v1/account/forgot-password
func (c *AccountController) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req dtos.ForgotPasswordRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if err := c.svc.ForgotPassword(r.Context(), &req); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{
		"message": "If the address is registered, a reset email is on its way",
	})
}

// ResetPassword => POST /api/v1/account/reset-password
func (c *AccountController) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req dtos.ResetPasswordRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if err := c.svc.ResetPassword(r.Context(), &req); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Password updated"})
}
