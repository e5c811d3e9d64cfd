package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MyelinBots/userapi-go/internal/logger"
	"github.com/MyelinBots/userapi-go/internal/requestid"
	"github.com/MyelinBots/userapi-go/internal/services/users"
)

type UserHandler struct {
	userService users.UserService
	log         *logger.Logger
}

func NewUserHandler(userService users.UserService, log *logger.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		log:         log.With("handler", "UserHandler"),
	}
}

type UserSignUpRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Address  string `json:"address"`
}

type UserUpdateRequest struct {
	Email   *string `json:"email" binding:"omitempty,email"`
	Address string  `json:"address"`
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	ctx := c.Request.Context()

	dtos, err := h.userService.ListUsers(ctx)
	if err != nil {
		if errors.Is(err, users.ErrNoRecords) {
			respond(c, http.StatusNotFound, MsgNoRecordFound, nil)
			return
		}
		h.log.Error("list users failed", "request_id", requestid.GetRequestIDFromContext(ctx), "error", err)
		respond(c, http.StatusInternalServerError, MsgCouldNotFetch, nil)
		return
	}

	respond(c, http.StatusOK, MsgRecordFound, dtos)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	ctx := c.Request.Context()
	usernameOrEmail := c.Param("usernameOrEmail")

	dto, err := h.userService.GetUser(ctx, usernameOrEmail)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			respond(c, http.StatusNotFound, MsgNoRecordFound, nil)
			return
		}
		h.log.Error("get user failed", "request_id", requestid.GetRequestIDFromContext(ctx), "error", err)
		respond(c, http.StatusInternalServerError, MsgCouldNotFetch, nil)
		return
	}

	respond(c, http.StatusOK, MsgRecordFound, dto)
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	ctx := c.Request.Context()

	var req UserSignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, MsgInvalidRequest, nil)
		return
	}

	dto, err := h.userService.CreateUser(ctx, users.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Address:  req.Address,
	})
	if err != nil {
		if errors.Is(err, users.ErrConflict) {
			respond(c, http.StatusInternalServerError, MsgConflict, nil)
			return
		}
		h.log.Error("create user failed", "request_id", requestid.GetRequestIDFromContext(ctx), "error", err)
		respond(c, http.StatusInternalServerError, MsgCouldNotCreate, nil)
		return
	}

	respond(c, http.StatusCreated, MsgRecordCreated, dto)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.Param("userId")

	var req UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, MsgInvalidRequest, nil)
		return
	}

	dto, err := h.userService.UpdateUser(ctx, userID, users.UpdateUserInput{
		Email:   req.Email,
		Address: req.Address,
	})
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			respond(c, http.StatusNotFound, MsgNoRecordFound, nil)
			return
		}
		h.log.Error("update user failed", "request_id", requestid.GetRequestIDFromContext(ctx), "error", err)
		respond(c, http.StatusInternalServerError, MsgCouldNotUpdate, nil)
		return
	}

	respond(c, http.StatusOK, MsgRecordUpdated, dto)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.Param("userId")

	if err := h.userService.DeleteUser(ctx, userID); err != nil {
		if errors.Is(err, users.ErrNotFound) {
			respond(c, http.StatusNotFound, MsgNoRecordFound, nil)
			return
		}
		h.log.Error("delete user failed", "request_id", requestid.GetRequestIDFromContext(ctx), "error", err)
		respond(c, http.StatusInternalServerError, MsgCouldNotDelete, nil)
		return
	}

	respond(c, http.StatusOK, MsgRecordDeleted, nil)
}
