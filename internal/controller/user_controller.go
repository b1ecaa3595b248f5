package controller

import (
	"errors"

	"github.com/Saurabh6266/Python-Learning-Platform/internal/model"
	"github.com/Saurabh6266/Python-Learning-Platform/internal/service"
	"github.com/Saurabh6266/Python-Learning-Platform/internal/util"
	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// @Summary Log in (or lazily create) a user
// @Description Username-only login; unseen usernames become fresh beginners. Counts as streak activity.
// @Tags user
// @Accept json
// @Produce json
// @Param body body object true "{\"username\": \"alice\"}"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/login [post]
func (c *UserController) Login(ctx *gin.Context) {
	var req struct {
		Username string `json:"username"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "invalid request body")
		return
	}

	result, err := c.UserService.Login(req.Username)
	if err != nil {
		if errors.Is(err, util.ErrBlankUsername) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// @Summary Set a user's level directly
// @Description Overrides the level while keeping the completion set
// @Tags user
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Param body body object true "{\"level\": \"intermediate\"}"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/users/{username}/level [put]
func (c *UserController) SetLevel(ctx *gin.Context) {
	var req struct {
		Level string `json:"level" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "level is required")
		return
	}

	progress, err := c.UserService.SetLevel(ctx.Param("username"), model.Level(req.Level))
	if err != nil {
		if errors.Is(err, util.ErrUnknownLevel) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}
