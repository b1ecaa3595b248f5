package controller

import (
	"errors"

	"github.com/Saurabh6266/Python-Learning-Platform/internal/service"
	"github.com/Saurabh6266/Python-Learning-Platform/internal/util"
	"github.com/gin-gonic/gin"
)

type PracticeController struct {
	PracticeService *service.PracticeService
}

func NewPracticeController(practiceService *service.PracticeService) *PracticeController {
	return &PracticeController{PracticeService: practiceService}
}

// @Summary List practice problems
// @Tags practice
// @Produce json
// @Param platform query string false "Platform filter (LeetCode, HackerRank)"
// @Param difficulty query string false "Difficulty filter"
// @Param tag query string false "Tag filter"
// @Param username query string false "Whose solves hide_completed refers to"
// @Param hide_completed query bool false "Hide problems the user already solved"
// @Success 200 {object} util.Response
// @Router /api/practice/problems [get]
func (c *PracticeController) ListProblems(ctx *gin.Context) {
	hideCompleted := ctx.Query("hide_completed") == "true"
	util.Success(ctx, c.PracticeService.Problems(
		ctx.Query("platform"),
		ctx.Query("difficulty"),
		ctx.Query("tag"),
		ctx.Query("username"),
		hideCompleted,
	))
}

// @Summary List problems matching a user's level
// @Tags practice
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} util.Response
// @Router /api/practice/users/{username}/problems [get]
func (c *PracticeController) ListProblemsForUser(ctx *gin.Context) {
	util.Success(ctx, c.PracticeService.ProblemsForUser(ctx.Param("username")))
}

// @Summary Recommend practice problems
// @Description Up to three unsolved problems at the user's level, shuffled
// @Tags practice
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} util.Response
// @Router /api/practice/users/{username}/recommendations [get]
func (c *PracticeController) Recommend(ctx *gin.Context) {
	util.Success(ctx, c.PracticeService.Recommend(ctx.Param("username")))
}

// @Summary List a user's solved problems
// @Tags practice
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} util.Response
// @Router /api/practice/users/{username}/completed [get]
func (c *PracticeController) ListCompleted(ctx *gin.Context) {
	util.Success(ctx, c.PracticeService.Completed(ctx.Param("username")))
}

// @Summary Mark a problem solved
// @Tags practice
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Param body body object true "{\"problem_id\": \"lc1\"}"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/practice/users/{username}/completed [post]
func (c *PracticeController) MarkCompleted(ctx *gin.Context) {
	var req struct {
		ProblemID string `json:"problem_id" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "problem_id is required")
		return
	}

	if err := c.PracticeService.MarkCompleted(ctx.Param("username"), req.ProblemID); err != nil {
		if errors.Is(err, util.ErrProblemNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, c.PracticeService.Completed(ctx.Param("username")))
}

// @Summary Unmark a solved problem
// @Tags practice
// @Produce json
// @Param username path string true "Username"
// @Param problem_id path string true "Problem id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/practice/users/{username}/completed/{problem_id} [delete]
func (c *PracticeController) UnmarkCompleted(ctx *gin.Context) {
	if err := c.PracticeService.UnmarkCompleted(ctx.Param("username"), ctx.Param("problem_id")); err != nil {
		if errors.Is(err, util.ErrProblemNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, c.PracticeService.Completed(ctx.Param("username")))
}

// @Summary Get a user's practice stats
// @Description Solved totals broken down by platform and difficulty
// @Tags practice
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} util.Response
// @Router /api/practice/users/{username}/stats [get]
func (c *PracticeController) GetStats(ctx *gin.Context) {
	util.Success(ctx, c.PracticeService.Stats(ctx.Param("username")))
}
