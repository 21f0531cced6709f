package usecase

import (
	"fmt"
	"strings"

	"smb-task-tracker/internal/extraction"
)

// breakdownPrompt asks for subtasks of one existing task.
const breakdownPrompt = `You are a task planning assistant for a small business team. Break the task below into concrete, actionable subtasks.

RULES:
1. Return between 2 and 6 subtasks.
2. For each subtask, identify:
   - text: short actionable description (under 200 characters)
   - priority: MUST be exactly one of: "low", "medium", "high", "urgent"
   - estimatedMinutes: integer number of minutes between 5 and 480 (omit the field if unsure)
3. Include a one-sentence "summary" of the overall plan.
4. Return ONLY a valid JSON object. No markdown, no code blocks, no explanation text.

EXAMPLE INPUT:
"Prepare quarterly report"

EXAMPLE OUTPUT:
{"subtasks":[{"text":"Gather sales and expense numbers for the quarter","priority":"high","estimatedMinutes":60},{"text":"Draft the report outline","priority":"medium","estimatedMinutes":45},{"text":"Review the draft with the accountant","priority":"medium","estimatedMinutes":30}],"summary":"Collect the numbers, draft the report, and review it before sending."}`

// voicemailPrompt asks for standalone tasks from a voicemail transcription.
const voicemailPrompt = `You are an office assistant for a small business. The text below is a voicemail transcription. Extract every actionable task mentioned in it.

RULES:
1. Return at least one task. If the voicemail contains a single request, return a single task.
2. For each task, identify:
   - text: cleaned-up, professional task description
   - priority: MUST be exactly one of: "low", "medium", "high", "urgent"
   - dueDate: date in YYYY-MM-DD format, or "" if no date is mentioned. Resolve relative dates ("Tuesday", "next week") against today's date from the context.
   - assignedTo: the team member's name if one is mentioned, or ""
3. Return ONLY a valid JSON object. No markdown, no code blocks, no explanation text.

EXAMPLE INPUT:
"Hi, it's Maria. Can someone call Bob on Tuesday about the Henderson account, and also send me the updated price list when you get a chance?"

EXAMPLE OUTPUT:
{"tasks":[{"text":"Call Bob about the Henderson account","priority":"medium","dueDate":"2025-07-15","assignedTo":""},{"text":"Send Maria the updated price list","priority":"low","dueDate":"","assignedTo":""}]}`

// contentPrompt asks for subtasks from pasted content such as an email.
const contentPrompt = `You are a task planning assistant for a small business team. The text below is content pasted by the user (an email, a note, or a transcription). Derive the follow-up subtasks it implies.

RULES:
1. Return between 1 and 10 subtasks.
2. For each subtask, identify:
   - text: short actionable description (under 200 characters)
   - priority: MUST be exactly one of: "low", "medium", "high", "urgent"
   - estimatedMinutes: integer number of minutes between 5 and 480 (omit the field if unsure)
3. Include a one-sentence "summary" of what the content asks for.
4. Return ONLY a valid JSON object. No markdown, no code blocks, no explanation text.

EXAMPLE INPUT:
"Hi team, the supplier confirmed the delivery slipped to Friday. Please update the customer, adjust the install schedule, and check if the loaner unit is still available."

EXAMPLE OUTPUT:
{"subtasks":[{"text":"Inform the customer the delivery moved to Friday","priority":"high","estimatedMinutes":15},{"text":"Adjust the install schedule for the new delivery date","priority":"medium","estimatedMinutes":30},{"text":"Check loaner unit availability","priority":"medium","estimatedMinutes":10}],"summary":"The supplier delay requires rescheduling and customer communication."}`

// audioSubtasksPrompt asks for short subtasks from a recording's transcript.
const audioSubtasksPrompt = `You are a task planning assistant for a small business team. The text below is the transcript of a voice recording. Derive the subtasks it describes.

RULES:
1. Return between 1 and 10 subtasks.
2. For each subtask, identify:
   - text: very short actionable description (under 100 characters)
   - priority: MUST be exactly one of: "low", "medium", "high", "urgent"
   - estimatedMinutes: integer number of minutes between 5 and 480 (omit the field if unsure)
3. Include a one-sentence "summary".
4. Return ONLY a valid JSON object. No markdown, no code blocks, no explanation text.

EXAMPLE INPUT:
"Okay so for the shop reopening I need to restock shelves, test the register, and put the sale signs in the window before Monday."

EXAMPLE OUTPUT:
{"subtasks":[{"text":"Restock shelves","priority":"high","estimatedMinutes":90},{"text":"Test the register","priority":"high","estimatedMinutes":20},{"text":"Put sale signs in the window","priority":"medium","estimatedMinutes":15}],"summary":"Three preparation steps before the Monday reopening."}`

// buildPrompt assembles the full instruction payload for one pipeline run.
// Pure function: same inputs always produce the same prompt string.
func buildPrompt(text string, mode extraction.Mode, pc promptContext) string {
	var sb strings.Builder
	sb.WriteString(templateFor(mode))

	sb.WriteString("\n\nCONTEXT:\n")
	users := "no team members registered"
	if len(pc.KnownUsers) > 0 {
		users = strings.Join(pc.KnownUsers, ", ")
	}
	fmt.Fprintf(&sb, "- Team members: %s\n", users)
	fmt.Fprintf(&sb, "- Today's date: %s\n", pc.Today.Format("2006-01-02"))
	if pc.ParentTaskText != "" {
		fmt.Fprintf(&sb, "- Parent task: %s\n", pc.ParentTaskText)
	}
	if pc.ContentLabel != "" {
		fmt.Fprintf(&sb, "- Content type: %s\n", pc.ContentLabel)
	}

	sb.WriteString("\nNow process the following input and return ONLY the JSON object:\n")
	sb.WriteString(text)

	return sb.String()
}

func templateFor(mode extraction.Mode) string {
	switch mode {
	case extraction.ModeVoicemailTasks:
		return voicemailPrompt
	case extraction.ModeContentSubtasks:
		return contentPrompt
	case extraction.ModeAudioSubtasks:
		return audioSubtasksPrompt
	default:
		return breakdownPrompt
	}
}
