package http

import (
	"github.com/gin-gonic/gin"

	"smb-task-tracker/pkg/response"
)

// @Summary Break a task into subtasks
// @Description Converts a free-form task description into a bounded list of actionable subtasks.
// @Tags extraction
// @Accept json
// @Produce json
// @Param body body breakdownReq true "Task text and optional team members"
// @Success 200 {object} breakdownResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/extract/breakdown [post]
func (h *handler) Breakdown(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processBreakdownReq(c)
	if err != nil {
		h.l.Warnf(ctx, "extraction.http.Breakdown.processBreakdownReq: %v", err)
		h.respondError(c, err)
		return
	}

	out, err := h.uc.Breakdown(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "extraction.http.Breakdown.Breakdown: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newBreakdownResp(out))
}

// @Summary Extract tasks from a voicemail transcription
// @Description Converts a voicemail transcription into structured task records with optional due dates and assignees.
// @Tags extraction
// @Accept json
// @Produce json
// @Param body body voicemailReq true "Voicemail transcription and optional team members"
// @Success 200 {object} voicemailResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/extract/voicemail [post]
func (h *handler) Voicemail(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processVoicemailReq(c)
	if err != nil {
		h.l.Warnf(ctx, "extraction.http.Voicemail.processVoicemailReq: %v", err)
		h.respondError(c, err)
		return
	}

	out, err := h.uc.VoicemailTasks(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "extraction.http.Voicemail.VoicemailTasks: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newVoicemailResp(out))
}

// @Summary Extract subtasks from pasted content
// @Description Converts pasted content such as an email or meeting notes into subtasks under an optional parent task.
// @Tags extraction
// @Accept json
// @Produce json
// @Param body body contentReq true "Pasted content with optional content type and parent task"
// @Success 200 {object} contentResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/extract/content [post]
func (h *handler) Content(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processContentReq(c)
	if err != nil {
		h.l.Warnf(ctx, "extraction.http.Content.processContentReq: %v", err)
		h.respondError(c, err)
		return
	}

	out, err := h.uc.ContentSubtasks(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "extraction.http.Content.ContentSubtasks: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newContentResp(out))
}

// @Summary Extract tasks or subtasks from an audio recording
// @Description Transcribes an uploaded audio file and converts the transcript into tasks, or subtasks when mode=subtasks.
// @Tags extraction
// @Accept multipart/form-data
// @Produce json
// @Param audio formData file true "Audio file (max 25MB)"
// @Param users formData []string false "Known team member names"
// @Param mode formData string false "Set to 'subtasks' to extract subtasks instead of tasks"
// @Param parentTaskText formData string false "Parent task text when extracting subtasks"
// @Success 200 {object} audioResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Failure 501 {object} response.Resp
// @Router /api/v1/extract/audio [post]
func (h *handler) Audio(c *gin.Context) {
	ctx := c.Request.Context()

	input, file, err := h.processAudioReq(c)
	if err != nil {
		h.l.Warnf(ctx, "extraction.http.Audio.processAudioReq: %v", err)
		h.respondError(c, err)
		return
	}
	defer file.Close()

	out, err := h.uc.ProcessAudio(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "extraction.http.Audio.ProcessAudio: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newAudioResp(out))
}
