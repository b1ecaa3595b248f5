package controller

import (
	"errors"
	"strconv"

	"github.com/Saurabh6266/Python-Learning-Platform/internal/service"
	"github.com/Saurabh6266/Python-Learning-Platform/internal/util"
	"github.com/gin-gonic/gin"
)

type ContentController struct {
	ContentService *service.ContentService
}

func NewContentController(contentService *service.ContentService) *ContentController {
	return &ContentController{ContentService: contentService}
}

// @Summary List learning resources
// @Description List the curated resource catalog, optionally filtered by level, type and tag
// @Tags content
// @Accept json
// @Produce json
// @Param level query string false "Level filter (beginner, intermediate, advanced)"
// @Param type query string false "Resource type filter"
// @Param tag query string false "Tag filter"
// @Success 200 {object} util.Response
// @Router /api/resources [get]
func (c *ContentController) ListResources(ctx *gin.Context) {
	resources, err := c.ContentService.Resources(
		ctx.Query("level"),
		ctx.Query("type"),
		ctx.Query("tag"),
	)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, resources)
}

// @Summary Get one resource
// @Tags content
// @Produce json
// @Param id path string true "Resource id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/resources/{id} [get]
func (c *ContentController) GetResource(ctx *gin.Context) {
	resource, err := c.ContentService.Resource(ctx.Param("id"))
	if err != nil {
		util.NotFound(ctx, err.Error())
		return
	}
	util.Success(ctx, resource)
}

// @Summary List resource types
// @Tags content
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/resources/types [get]
func (c *ContentController) ListResourceTypes(ctx *gin.Context) {
	util.Success(ctx, c.ContentService.ResourceTypes())
}

// @Summary List resource tags
// @Tags content
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/resources/tags [get]
func (c *ContentController) ListTags(ctx *gin.Context) {
	util.Success(ctx, c.ContentService.Tags())
}

// @Summary List practice projects
// @Tags content
// @Produce json
// @Param level query string false "Level filter"
// @Param max_difficulty query int false "Difficulty ceiling, 1 to 5"
// @Success 200 {object} util.Response
// @Router /api/projects [get]
func (c *ContentController) ListProjects(ctx *gin.Context) {
	maxDifficulty, _ := strconv.Atoi(ctx.DefaultQuery("max_difficulty", "0"))
	projects, err := c.ContentService.Projects(ctx.Query("level"), maxDifficulty)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, projects)
}

// @Summary Get one project
// @Tags content
// @Produce json
// @Param id path string true "Project id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/projects/{id} [get]
func (c *ContentController) GetProject(ctx *gin.Context) {
	project, err := c.ContentService.Project(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrProjectNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, project)
}
