package coach

import (
	"context"
	"strings"
	"time"

	"github.com/julianstephens/auragenie/internal/models"
)

type tip struct {
	keywords []string
	reply    string
}

var tips = []tip{
	{
		keywords: []string{"sleep", "tired", "insomnia", "rest"},
		reply:    "Try keeping the same bedtime every night and putting screens away 30 minutes before. Consistency matters more than total hours.",
	},
	{
		keywords: []string{"water", "hydrat", "thirst"},
		reply:    "Keep a glass within reach and drink one with every meal. Eight glasses is a good target.",
	},
	{
		keywords: []string{"exercise", "workout", "run", "walk", "gym"},
		reply:    "Start small: a 10 minute walk counts. Put it on your goal list so you can celebrate when it's done.",
	},
	{
		keywords: []string{"stress", "anxious", "anxiety", "overwhelm"},
		reply:    "Take four slow breaths: in for four, hold for four, out for six. Then pick just one thing to do next.",
	},
	{
		keywords: []string{"sad", "down", "lonely"},
		reply:    "I'm sorry you're feeling this way. Reaching out to a friend or checking the Community tab can help. Be gentle with yourself today.",
	},
	{
		keywords: []string{"focus", "procrastinat", "distract"},
		reply:    "Pick one goal, set a 25 minute timer and silence notifications. Take a short break when it rings.",
	},
}

const cannedFallback = "That's a great question. What is one small step you could take toward it today?"

// Canned answers offline from a fixed set of wellness tips, matched on
// keywords in the latest user message.
type Canned struct {
	// Delay simulates thinking time
	Delay time.Duration
}

func (c Canned) Reply(ctx context.Context, history []models.ChatMessage) (string, error) {
	if c.Delay > 0 {
		select {
		case <-time.After(c.Delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var question string
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == models.RoleUser {
			question = strings.ToLower(history[i].Content)
			break
		}
	}

	for _, t := range tips {
		for _, kw := range t.keywords {
			if strings.Contains(question, kw) {
				return t.reply, nil
			}
		}
	}
	return cannedFallback, nil
}
