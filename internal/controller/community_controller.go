package controller

import (
	"errors"
	"strconv"

	"github.com/Saurabh6266/Python-Learning-Platform/internal/service"
	"github.com/Saurabh6266/Python-Learning-Platform/internal/util"
	"github.com/gin-gonic/gin"
)

type CommunityController struct {
	CommunityService *service.CommunityService
}

func NewCommunityController(communityService *service.CommunityService) *CommunityController {
	return &CommunityController{CommunityService: communityService}
}

// @Summary List discussion topics
// @Description Topics newest-first; category "all" or none disables the filter
// @Tags community
// @Produce json
// @Param category query string false "Category filter"
// @Success 200 {object} util.Response
// @Router /api/community/topics [get]
func (c *CommunityController) ListTopics(ctx *gin.Context) {
	util.Success(ctx, c.CommunityService.Topics(ctx.Query("category")))
}

// @Summary List topic categories in use
// @Tags community
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/community/categories [get]
func (c *CommunityController) ListCategories(ctx *gin.Context) {
	util.Success(ctx, c.CommunityService.Categories())
}

// @Summary Create a discussion topic
// @Tags community
// @Accept json
// @Produce json
// @Param body body object true "{\"title\": \"...\", \"content\": \"...\", \"author\": \"...\", \"category\": \"...\"}"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/community/topics [post]
func (c *CommunityController) CreateTopic(ctx *gin.Context) {
	var req struct {
		Title    string `json:"title"`
		Content  string `json:"content"`
		Author   string `json:"author"`
		Category string `json:"category"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "invalid request body")
		return
	}

	id, err := c.CommunityService.CreateTopic(req.Title, req.Content, req.Author, req.Category)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrBlankTitle), errors.Is(err, util.ErrBlankContent):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, gin.H{"id": id})
}

// @Summary Reply to a topic
// @Tags community
// @Accept json
// @Produce json
// @Param id path int true "Topic id"
// @Param body body object true "{\"content\": \"...\", \"author\": \"...\"}"
// @Success 201 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/community/topics/{id}/replies [post]
func (c *CommunityController) AddReply(ctx *gin.Context) {
	topicID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "topic id must be an integer")
		return
	}

	var req struct {
		Content string `json:"content"`
		Author  string `json:"author"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "invalid request body")
		return
	}

	if err := c.CommunityService.AddReply(topicID, req.Content, req.Author); err != nil {
		switch {
		case errors.Is(err, util.ErrTopicNotFound):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrBlankContent):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, nil)
}
