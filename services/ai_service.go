package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"backend/models"
)

// AIService talks to the generative endpoint: single-shot POST with a system
// instruction, a user query and optionally a JSON-response flag; the first
// candidate's text is parsed as prompt-specific JSON.
type AIService struct {
	client    *http.Client
	token     string
	baseURL   string
	model     string
	baseDelay time.Duration // first retry delay; doubles per attempt
}

const aiMaxAttempts = 5

func NewAIService() *AIService {
	base := os.Getenv("GENAI_BASE_URL")
	if base == "" {
		base = "https://generativelanguage.googleapis.com/v1beta/models"
	}
	model := os.Getenv("GENAI_MODEL")
	if model == "" {
		model = "gemini-1.5-flash"
	}
	return &AIService{
		client:    &http.Client{Timeout: 30 * time.Second},
		token:     os.Getenv("GENAI_API_KEY"),
		baseURL:   base,
		model:     model,
		baseDelay: time.Second,
	}
}

type genPart struct {
	Text string `json:"text"`
}

type genContent struct {
	Parts []genPart `json:"parts"`
}

type genRequest struct {
	SystemInstruction *genContent `json:"system_instruction,omitempty"`
	Contents          []genContent `json:"contents"`
	GenerationConfig  *genConfig  `json:"generationConfig,omitempty"`
}

type genConfig struct {
	ResponseMIMEType string `json:"response_mime_type,omitempty"`
}

type genResponse struct {
	Candidates []struct {
		Content genContent `json:"content"`
	} `json:"candidates"`
}

// Generate performs the POST with exponential backoff (1s, doubling, up to 5
// attempts) on rate limits, server errors and transport failures. Other
// client errors fail immediately.
func (a *AIService) Generate(system, query string, wantJSON bool) (string, error) {
	if a.token == "" {
		return "", fmt.Errorf("GENAI_API_KEY not set")
	}

	reqBody := genRequest{
		SystemInstruction: &genContent{Parts: []genPart{{Text: system}}},
		Contents:          []genContent{{Parts: []genPart{{Text: query}}}},
	}
	if wantJSON {
		reqBody.GenerationConfig = &genConfig{ResponseMIMEType: "application/json"}
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}
	url := fmt.Sprintf("%s/%s:generateContent?key=%s", a.baseURL, a.model, a.token)

	delay := a.baseDelay
	var lastErr error
	for attempt := 1; attempt <= aiMaxAttempts; attempt++ {
		if attempt > 1 {
			time.Sleep(delay)
			delay *= 2
		}

		resp, err := a.client.Post(url, "application/json", bytes.NewReader(payload))
		if err != nil {
			lastErr = fmt.Errorf("genai request error: %w", err)
			continue
		}
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("read genai response error: %w", err)
			continue
		}

		switch {
		case resp.StatusCode == http.StatusOK:
			return firstCandidateText(body)
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			lastErr = fmt.Errorf("genai api error (%d): %s", resp.StatusCode, bodyPreview(body))
			continue
		default:
			return "", fmt.Errorf("genai api error (%d): %s", resp.StatusCode, bodyPreview(body))
		}
	}
	return "", lastErr
}

func firstCandidateText(body []byte) (string, error) {
	var out genResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("decode genai response error: %v | body: %s", err, bodyPreview(body))
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty genai response")
	}
	text := strings.TrimSpace(out.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", fmt.Errorf("empty genai response")
	}
	return text, nil
}

func bodyPreview(body []byte) string {
	s := string(body)
	if len(s) > 200 {
		s = s[:200] + "..."
	}
	return s
}

// FallbackTips is served whenever tip generation fails.
var FallbackTips = []string{
	"Take a short walk after meals to help with digestion.",
	"Keep a water bottle within reach and sip through the day.",
	"Sleep on your left side to improve circulation.",
	"Add a handful of leafy greens to one meal today.",
	"A few minutes of slow breathing can ease a busy mind.",
}

// DailyTips asks for pregnancy-week-appropriate tips as a JSON string array.
// Failures degrade to the static fallback list.
func (a *AIService) DailyTips(pregnancyWeek int) []string {
	system := "You are a friendly pregnancy wellness companion. Respond only with a JSON array of short tip strings. No medical diagnoses."
	query := fmt.Sprintf("Give 5 short wellness tips for pregnancy week %d.", pregnancyWeek)

	text, err := a.Generate(system, query, true)
	if err != nil {
		log.Printf("daily tips generation failed: %v", err)
		return FallbackTips
	}
	var tips []string
	if err := json.Unmarshal([]byte(text), &tips); err != nil || len(tips) == 0 {
		log.Printf("daily tips parse failed: %v", err)
		return FallbackTips
	}
	return tips
}

// EvaluateMeal asks for a 0..3 nutrient score profile for a free-text meal
// name.
func (a *AIService) EvaluateMeal(name string) (models.NutrientProfile, error) {
	system := `You score meals for pregnancy nutrition. Respond only with JSON: {"iron":0-3,"calcium":0-3,"folate":0-3,"fiber":0-3,"protein":0-3,"carbs":0-3}.`
	query := fmt.Sprintf("Score this meal: %s", name)

	text, err := a.Generate(system, query, true)
	if err != nil {
		return models.NutrientProfile{}, err
	}
	var p models.NutrientProfile
	if err := json.Unmarshal([]byte(text), &p); err != nil {
		return models.NutrientProfile{}, fmt.Errorf("decode meal profile: %w", err)
	}
	return clampProfile(p), nil
}

// EvaluateSupplement is the supplement analogue; fiber is fixed to 0.
func (a *AIService) EvaluateSupplement(name string) (models.NutrientProfile, error) {
	system := `You score supplements for pregnancy nutrition. Respond only with JSON: {"iron":0-3,"calcium":0-3,"folate":0-3}.`
	query := fmt.Sprintf("Score this supplement: %s", name)

	text, err := a.Generate(system, query, true)
	if err != nil {
		return models.NutrientProfile{}, err
	}
	var p models.NutrientProfile
	if err := json.Unmarshal([]byte(text), &p); err != nil {
		return models.NutrientProfile{}, fmt.Errorf("decode supplement profile: %w", err)
	}
	p.Fiber = 0
	p.Protein = 0
	p.Carbs = 0
	return clampProfile(p), nil
}

// DaySummary asks for a per-nutrient verdict for a day's intake. The result
// is cached on the wellness record and from then on overrides computed
// totals for that day.
func (a *AIService) DaySummary(meals, supplements []string) (models.DayNutrition, error) {
	system := `You summarize a day of pregnancy nutrition. Respond only with JSON mapping each of iron, calcium, folate, fiber to "good", "okay" or "low".`
	query := fmt.Sprintf("Meals: %s. Supplements: %s.",
		strings.Join(meals, ", "), strings.Join(supplements, ", "))

	text, err := a.Generate(system, query, true)
	if err != nil {
		return nil, err
	}
	var verdicts models.DayNutrition
	if err := json.Unmarshal([]byte(text), &verdicts); err != nil {
		return nil, fmt.Errorf("decode day summary: %w", err)
	}
	if len(verdicts) == 0 {
		return nil, fmt.Errorf("empty day summary")
	}
	return verdicts, nil
}

// Affirmations generates short calm-space affirmations, falling back to a
// static set.
func (a *AIService) Affirmations() []string {
	static := []string{
		"My body knows how to grow this baby.",
		"I am allowed to rest.",
		"One breath at a time is enough.",
	}
	system := "You write short calming affirmations for expecting parents. Respond only with a JSON array of strings."
	text, err := a.Generate(system, "Give 3 affirmations for today.", true)
	if err != nil {
		log.Printf("affirmation generation failed: %v", err)
		return static
	}
	var lines []string
	if err := json.Unmarshal([]byte(text), &lines); err != nil || len(lines) == 0 {
		return static
	}
	return lines
}

func clampProfile(p models.NutrientProfile) models.NutrientProfile {
	return models.NutrientProfile{
		Iron: clampScore(p.Iron), Calcium: clampScore(p.Calcium), Folate: clampScore(p.Folate),
		Fiber: clampScore(p.Fiber), Protein: clampScore(p.Protein), Carbs: clampScore(p.Carbs),
	}
}
