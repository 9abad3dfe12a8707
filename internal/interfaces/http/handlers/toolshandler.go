package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"timedpost/internal/application/generate/dto"
	"timedpost/internal/application/generate/usecases"
	"timedpost/internal/shared/logger"
)

// ToolsHandler serves the five free-tool generation endpoints. All five share
// the same pipeline: bind, generate, respond with a named string list.
type ToolsHandler struct {
	bioUseCase      *usecases.GenerateBioUseCase
	captionUseCase  *usecases.GenerateCaptionUseCase
	hashtagsUseCase *usecases.GenerateHashtagsUseCase
	tweetUseCase    *usecases.GenerateTweetUseCase
	linkedinUseCase *usecases.GenerateLinkedInPostUseCase
	logger          logger.Interface
}

func NewToolsHandler(
	bioUseCase *usecases.GenerateBioUseCase,
	captionUseCase *usecases.GenerateCaptionUseCase,
	hashtagsUseCase *usecases.GenerateHashtagsUseCase,
	tweetUseCase *usecases.GenerateTweetUseCase,
	linkedinUseCase *usecases.GenerateLinkedInPostUseCase,
	logger logger.Interface,
) *ToolsHandler {
	return &ToolsHandler{
		bioUseCase:      bioUseCase,
		captionUseCase:  captionUseCase,
		hashtagsUseCase: hashtagsUseCase,
		tweetUseCase:    tweetUseCase,
		linkedinUseCase: linkedinUseCase,
		logger:          logger,
	}
}

func (h *ToolsHandler) GenerateBio(c *gin.Context) {
	var req dto.BioRequest
	fields, ok := bindRequest(c, h.logger, &req)
	if !ok {
		if fields != nil {
			rejectValidation(c, h.logger, fields)
		}
		return
	}

	bios, err := h.bioUseCase.Execute(c.Request.Context(), req)
	if err != nil {
		respondGenerationError(c, h.logger, err, "Failed to generate bios. Please try again.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"bios": bios})
}

func (h *ToolsHandler) GenerateCaption(c *gin.Context) {
	var req dto.CaptionRequest
	fields, ok := bindRequest(c, h.logger, &req)
	if !ok {
		if fields != nil {
			rejectValidation(c, h.logger, fields)
		}
		return
	}

	captions, err := h.captionUseCase.Execute(c.Request.Context(), req)
	if err != nil {
		respondGenerationError(c, h.logger, err, "Failed to generate captions. Please try again.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"captions": captions})
}

func (h *ToolsHandler) GenerateHashtags(c *gin.Context) {
	var req dto.HashtagsRequest
	fields, ok := bindRequest(c, h.logger, &req)
	if !ok {
		if fields != nil {
			rejectValidation(c, h.logger, fields)
		}
		return
	}

	hashtags, err := h.hashtagsUseCase.Execute(c.Request.Context(), req)
	if err != nil {
		respondGenerationError(c, h.logger, err, "Failed to generate hashtags. Please try again.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"hashtags": hashtags})
}

func (h *ToolsHandler) GenerateTweet(c *gin.Context) {
	var req dto.TweetRequest
	fields, ok := bindRequest(c, h.logger, &req)
	if !ok {
		if fields != nil {
			rejectValidation(c, h.logger, fields)
		}
		return
	}

	tweets, err := h.tweetUseCase.Execute(c.Request.Context(), req)
	if err != nil {
		respondGenerationError(c, h.logger, err, "Failed to generate tweets. Please try again.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"tweets": tweets})
}

func (h *ToolsHandler) GenerateLinkedInPost(c *gin.Context) {
	var req dto.LinkedInPostRequest
	fields, ok := bindRequest(c, h.logger, &req)
	if !ok {
		if fields != nil {
			rejectValidation(c, h.logger, fields)
		}
		return
	}

	posts, err := h.linkedinUseCase.Execute(c.Request.Context(), req)
	if err != nil {
		respondGenerationError(c, h.logger, err, "Failed to generate posts. Please try again.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}
