package http

import (
	"mime/multipart"
	"strings"

	"github.com/gin-gonic/gin"

	"smb-task-tracker/internal/extraction"
)

// processBreakdownReq binds and validates the breakdown request body.
func (h *handler) processBreakdownReq(c *gin.Context) (breakdownReq, error) {
	var req breakdownReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if strings.TrimSpace(req.Text) == "" {
		return req, extraction.ErrEmptyInput
	}
	return req, nil
}

// processVoicemailReq binds and validates the voicemail request body.
func (h *handler) processVoicemailReq(c *gin.Context) (voicemailReq, error) {
	var req voicemailReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if strings.TrimSpace(req.Transcription) == "" {
		return req, extraction.ErrEmptyInput
	}
	return req, nil
}

// processContentReq binds and validates the content request body.
func (h *handler) processContentReq(c *gin.Context) (contentReq, error) {
	var req contentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if len(strings.TrimSpace(req.Content)) < 10 {
		return req, extraction.ErrContentTooShort
	}
	return req, nil
}

// processAudioReq reads the multipart audio request. The returned file must
// be closed by the caller once the pipeline is done with it.
func (h *handler) processAudioReq(c *gin.Context) (extraction.AudioInput, multipart.File, error) {
	fileHeader, err := c.FormFile("audio")
	if err != nil {
		return extraction.AudioInput{}, nil, extraction.ErrNoAudio
	}

	file, err := fileHeader.Open()
	if err != nil {
		return extraction.AudioInput{}, nil, extraction.ErrNoAudio
	}

	input := extraction.AudioInput{
		Reader:         file,
		Filename:       fileHeader.Filename,
		Size:           fileHeader.Size,
		Users:          c.PostFormArray("users"),
		Subtasks:       c.PostForm("mode") == "subtasks",
		ParentTaskText: c.PostForm("parentTaskText"),
	}
	return input, file, nil
}
