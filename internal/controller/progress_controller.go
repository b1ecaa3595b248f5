package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Saurabh6266/Python-Learning-Platform/internal/model"
	"github.com/Saurabh6266/Python-Learning-Platform/internal/service"
	"github.com/Saurabh6266/Python-Learning-Platform/internal/util"
	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService       *service.ProgressService
	RecommendationService *service.RecommendationService
	StreakService         *service.StreakService
}

func NewProgressController(
	progressService *service.ProgressService,
	recommendationService *service.RecommendationService,
	streakService *service.StreakService,
) *ProgressController {
	return &ProgressController{
		ProgressService:       progressService,
		RecommendationService: recommendationService,
		StreakService:         streakService,
	}
}

// @Summary Get a user's progress overview
// @Description Per-level completion stats, current percentage, level-up eligibility and recent completions
// @Tags progress
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} util.Response
// @Router /api/users/{username}/progress [get]
func (c *ProgressController) GetProgress(ctx *gin.Context) {
	util.Success(ctx, c.ProgressService.Overview(ctx.Param("username")))
}

// @Summary Replace a user's progress wholesale
// @Description Reconciles the stored completion set to exactly the given list and sets the level
// @Tags progress
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Param body body object true "{\"completed_resources\": [\"b1\"], \"current_level\": \"beginner\"}"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/users/{username}/progress [put]
func (c *ProgressController) ReplaceProgress(ctx *gin.Context) {
	var req struct {
		CompletedResources []string `json:"completed_resources"`
		CurrentLevel       string   `json:"current_level" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "current_level is required")
		return
	}

	progress, err := c.ProgressService.ReplaceProgress(ctx.Param("username"), req.CompletedResources, model.Level(req.CurrentLevel))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUnknownLevel):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrResourceNotFound):
			util.NotFound(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, progress)
}

// @Summary Mark a resource completed
// @Tags progress
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Param body body object true "{\"resource_id\": \"b1\"}"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/users/{username}/progress/complete [post]
func (c *ProgressController) MarkCompleted(ctx *gin.Context) {
	var req struct {
		ResourceID string `json:"resource_id" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "resource_id is required")
		return
	}

	progress, err := c.ProgressService.MarkCompleted(ctx.Param("username"), req.ResourceID)
	if err != nil {
		if errors.Is(err, util.ErrResourceNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	if _, err := c.StreakService.RecordActivity(ctx.Param("username")); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}

// @Summary Unmark a completed resource
// @Tags progress
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Param body body object true "{\"resource_id\": \"b1\"}"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/users/{username}/progress/uncomplete [post]
func (c *ProgressController) UnmarkCompleted(ctx *gin.Context) {
	var req struct {
		ResourceID string `json:"resource_id" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "resource_id is required")
		return
	}

	progress, err := c.ProgressService.UnmarkCompleted(ctx.Param("username"), req.ResourceID)
	if err != nil {
		if errors.Is(err, util.ErrResourceNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}

// @Summary Advance a user to the next level
// @Description Succeeds only when the user's completion at their current level clears the threshold
// @Tags progress
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/users/{username}/level-up [post]
func (c *ProgressController) LevelUp(ctx *gin.Context) {
	progress, err := c.ProgressService.LevelUp(ctx.Param("username"))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrNotEligible), errors.Is(err, util.ErrMaxLevel):
			util.Error(ctx, http.StatusConflict, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, progress)
}

// @Summary Get resource recommendations
// @Description Uncompleted resources at the user's level, shuffled; near level completion a couple of next-level resources join in
// @Tags progress
// @Produce json
// @Param username path string true "Username"
// @Param limit query int false "Maximum number of recommendations" default(5)
// @Success 200 {object} util.Response
// @Router /api/users/{username}/recommendations [get]
func (c *ProgressController) GetRecommendations(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "0"))
	util.Success(ctx, c.RecommendationService.Recommend(ctx.Param("username"), limit))
}

// @Summary Get a user's streak
// @Tags streak
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} util.Response
// @Router /api/users/{username}/streak [get]
func (c *ProgressController) GetStreak(ctx *gin.Context) {
	util.Success(ctx, c.StreakService.Streak(ctx.Param("username")))
}

// @Summary Record streak activity for today
// @Description Same-day calls are no-ops; a one-day gap extends the streak, longer gaps restart it
// @Tags streak
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} util.Response
// @Router /api/users/{username}/streak [post]
func (c *ProgressController) RecordActivity(ctx *gin.Context) {
	rec, err := c.StreakService.RecordActivity(ctx.Param("username"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, rec)
}
