package http

import (
	"smb-task-tracker/internal/extraction"
	"smb-task-tracker/internal/model"
)

// --- Request DTOs ---

type breakdownReq struct {
	Text  string   `json:"text"`
	Users []string `json:"users"`
}

func (r breakdownReq) toInput() extraction.BreakdownInput {
	return extraction.BreakdownInput{
		Text:  r.Text,
		Users: r.Users,
	}
}

type voicemailReq struct {
	Transcription string   `json:"transcription"`
	Users         []string `json:"users"`
}

func (r voicemailReq) toInput() extraction.VoicemailInput {
	return extraction.VoicemailInput{
		Transcription: r.Transcription,
		Users:         r.Users,
	}
}

type contentReq struct {
	Content        string `json:"content"`
	ContentType    string `json:"contentType"`
	ParentTaskText string `json:"parentTaskText"`
}

func (r contentReq) toInput() extraction.ContentInput {
	return extraction.ContentInput{
		Content:        r.Content,
		ContentType:    r.ContentType,
		ParentTaskText: r.ParentTaskText,
	}
}

// --- Response DTOs ---

type subtaskResp struct {
	Text             string `json:"text"`
	Priority         string `json:"priority"`
	EstimatedMinutes *int   `json:"estimatedMinutes,omitempty"`
}

func newSubtaskResps(subtasks []model.Subtask) []subtaskResp {
	out := make([]subtaskResp, len(subtasks))
	for i, st := range subtasks {
		out[i] = subtaskResp{
			Text:             st.Text,
			Priority:         string(st.Priority),
			EstimatedMinutes: st.EstimatedMinutes,
		}
	}
	return out
}

type taskResp struct {
	Text       string `json:"text"`
	Priority   string `json:"priority"`
	DueDate    string `json:"dueDate"`
	AssignedTo string `json:"assignedTo"`
}

func newTaskResps(tasks []model.Task) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = taskResp{
			Text:       t.Text,
			Priority:   string(t.Priority),
			DueDate:    t.DueDate,
			AssignedTo: t.AssignedTo,
		}
	}
	return out
}

type breakdownResp struct {
	Success  bool          `json:"success"`
	Subtasks []subtaskResp `json:"subtasks"`
	Summary  string        `json:"summary"`
}

func (h *handler) newBreakdownResp(out extraction.BreakdownOutput) breakdownResp {
	return breakdownResp{
		Success:  true,
		Subtasks: newSubtaskResps(out.Subtasks),
		Summary:  out.Summary,
	}
}

type voicemailResp struct {
	Success bool       `json:"success"`
	Tasks   []taskResp `json:"tasks"`
}

func (h *handler) newVoicemailResp(out extraction.VoicemailOutput) voicemailResp {
	return voicemailResp{
		Success: true,
		Tasks:   newTaskResps(out.Tasks),
	}
}

type contentResp struct {
	Success  bool          `json:"success"`
	Subtasks []subtaskResp `json:"subtasks"`
	Summary  string        `json:"summary"`
}

func (h *handler) newContentResp(out extraction.ContentOutput) contentResp {
	return contentResp{
		Success:  true,
		Subtasks: newSubtaskResps(out.Subtasks),
		Summary:  out.Summary,
	}
}

type audioResp struct {
	Success  bool          `json:"success"`
	Text     string        `json:"text"`
	Tasks    []taskResp    `json:"tasks,omitempty"`
	Subtasks []subtaskResp `json:"subtasks,omitempty"`
	Summary  string        `json:"summary,omitempty"`
}

func (h *handler) newAudioResp(out extraction.AudioOutput) audioResp {
	resp := audioResp{
		Success: true,
		Text:    out.Text,
		Summary: out.Summary,
	}
	if len(out.Tasks) > 0 {
		resp.Tasks = newTaskResps(out.Tasks)
	}
	if len(out.Subtasks) > 0 {
		resp.Subtasks = newSubtaskResps(out.Subtasks)
	}
	return resp
}
