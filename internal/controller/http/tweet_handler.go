package http

import (
	"net/http"

	"cliptube/internal/usecase"
	"cliptube/pkg/logger"

	"github.com/gin-gonic/gin"
)

type TweetHandler struct {
	tweetUseCase usecase.TweetUseCase
	logger       *logger.Logger
}

func NewTweetHandler(tweetUseCase usecase.TweetUseCase, logger *logger.Logger) *TweetHandler {
	return &TweetHandler{
		tweetUseCase: tweetUseCase,
		logger:       logger,
	}
}

type TweetRequest struct {
	Content string `json:"content" binding:"required"`
}

// CreateTweet godoc
// @Summary      Create a tweet
// @Tags         tweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body TweetRequest true "Tweet content"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /tweets [post]
func (h *TweetHandler) CreateTweet(c *gin.Context) {
	userID := c.GetString("user_id")

	var req TweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tweet, err := h.tweetUseCase.CreateTweet(userID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Tweet created", "tweet": tweet})
}

// UpdateTweet godoc
// @Summary      Update a tweet
// @Description  Only the tweet owner can update.
// @Tags         tweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Tweet ID"
// @Param        request body TweetRequest true "Tweet content"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /tweets/{id} [patch]
func (h *TweetHandler) UpdateTweet(c *gin.Context) {
	userID := c.GetString("user_id")

	var req TweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tweet, err := h.tweetUseCase.UpdateTweet(c.Param("id"), userID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tweet updated", "tweet": tweet})
}

// DeleteTweet godoc
// @Summary      Delete a tweet
// @Description  Only the tweet owner can delete. Likes on the tweet are removed with it.
// @Tags         tweets
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Tweet ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /tweets/{id} [delete]
func (h *TweetHandler) DeleteTweet(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := h.tweetUseCase.DeleteTweet(c.Param("id"), userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tweet deleted"})
}

// GetUserTweets godoc
// @Summary      Get a user's tweets
// @Description  Tweets with owner projection and like counts, newest first
// @Tags         tweets
// @Produce      json
// @Param        user_id path string true "User ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /tweets/user/{user_id} [get]
func (h *TweetHandler) GetUserTweets(c *gin.Context) {
	tweets, err := h.tweetUseCase.UserTweets(c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tweets": tweets, "count": len(tweets)})
}
