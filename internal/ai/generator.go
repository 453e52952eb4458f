package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mindquest/internal/engine"
)

const (
	draftMinXP        = 20
	draftMaxXP        = 50
	draftMaxXPWeekend = 75
)

// draftPayload is the JSON shape of one generated quest.
type draftPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	XP          *int   `json:"xp"`
}

func validateDrafts(drafts []draftPayload) error {
	if len(drafts) == 0 {
		return errors.New("empty quest list")
	}
	return nil
}

// QuestGenerator asks the model for a fresh batch of quests. It implements
// engine.Generator.
type QuestGenerator struct {
	client Client
}

func NewQuestGenerator(client Client) *QuestGenerator {
	return &QuestGenerator{client: client}
}

func (g *QuestGenerator) Generate(ctx context.Context, existingTitles []string, weekend bool) ([]engine.QuestDraft, error) {
	resp, err := g.client.Generate(ctx, GenerateRequest{
		Task:         TaskGenerate,
		Messages:     []Message{{Role: "user", Text: generationPrompt(existingTitles, weekend)}},
		JSONResponse: true,
	})
	if err != nil {
		return nil, fmt.Errorf("generating quests: %w", err)
	}

	payload, err := ExtractJSON(resp.Text, validateDrafts)
	if err != nil {
		return nil, fmt.Errorf("generating quests: %w", err)
	}

	maxXP := draftMaxXP
	if weekend {
		maxXP = draftMaxXPWeekend
	}

	seen := make(map[string]bool, len(existingTitles))
	for _, t := range existingTitles {
		seen[normalizeTitle(t)] = true
	}

	var drafts []engine.QuestDraft
	for _, d := range payload {
		title := strings.TrimSpace(d.Title)
		if title == "" || strings.TrimSpace(d.Description) == "" || d.XP == nil {
			continue
		}
		key := normalizeTitle(title)
		if seen[key] {
			continue
		}
		seen[key] = true

		xp := *d.XP
		if xp < draftMinXP {
			xp = draftMinXP
		}
		if xp > maxXP {
			xp = maxXP
		}
		drafts = append(drafts, engine.QuestDraft{
			Title:       title,
			Description: strings.TrimSpace(d.Description),
			XP:          xp,
		})
	}
	if len(drafts) == 0 {
		return nil, fmt.Errorf("generating quests: %w: no usable quests in response", ErrInvalidOutput)
	}
	return drafts, nil
}

func normalizeTitle(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
