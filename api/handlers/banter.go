package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/botsportsempire/gridiron/communication"
	"github.com/botsportsempire/gridiron/core"
)

type trashTalkRequest struct {
	SpeakerBotID string `json:"speaker_bot_id" binding:"required"`
	TargetBotID  string `json:"target_bot_id" binding:"required"`
	Context      string `json:"context"`
}

// PostTrashTalk - fires a generated line from speaker at target and
// swings both moods.
func PostTrashTalk(c *gin.Context) {
	var req trashTalkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trash talk data"})
		return
	}

	outcome, err := deps.Banter.Talk(req.SpeakerBotID, req.TargetBotID, req.Context)
	if err != nil {
		if errors.Is(err, core.ErrBotNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payload := gin.H{
		"thread_id": outcome.ThreadID,
		"speaker":   req.SpeakerBotID,
		"target":    req.TargetBotID,
		"line":      outcome.Message.Line,
	}
	communication.BroadcastEvent(communication.EventTrashTalk, payload)
	publishBotMood(req.TargetBotID, payload)

	c.JSON(http.StatusCreated, gin.H{
		"thread_id":    outcome.ThreadID,
		"message":      outcome.Message,
		"speaker_mood": outcome.SpeakerMood,
		"target_mood":  outcome.TargetMood,
	})
}

// ListBanterThreads - every trash talk thread.
func ListBanterThreads(c *gin.Context) {
	threads := communication.GetAllThreads()
	c.JSON(http.StatusOK, gin.H{"threads": threads, "count": len(threads)})
}

// GetBanterThread - one thread with its messages.
func GetBanterThread(c *gin.Context) {
	thread, err := communication.GetThread(c.Param("threadID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Thread not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"thread": thread})
}
