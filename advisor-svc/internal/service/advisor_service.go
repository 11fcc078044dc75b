package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"nutrilens/advisor-svc/internal/domain"
	"nutrilens/aggregator"
	"nutrilens/session"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrUnauthenticated = errors.New("no authenticated user")
	ErrMealNotFound    = errors.New("meal not found")
	ErrInvalidMessage  = errors.New("message must not be empty")
	ErrLLMUnavailable  = errors.New("language model is not configured")
	ErrUpstream        = errors.New("upstream service failed")
)

const (
	napReply     = "Sorry, my AI brain is taking a little nap! 😴 Please check the API keys."
	hiccupReply  = "Oh no, pookie! I had a little hiccup trying to think! Please try again. 💕"
	noKeyTip     = "Remember to stay hydrated today! 💧"
	fallbackTip  = "Eat colorful fruits and veggies today! 🌈"
	tipSystem    = "You are a friendly nutritionist. Give one short, actionable daily health tip."
	maxChatInput = 1000
)

type AdvisorService struct {
	meals    MealRepository
	profiles ProfileRepository
	llm      LanguageModel
	chats    ChatStore
	tips     TipCache
	now      func() time.Time
}

// NewAdvisorService wires the advisor. llm may be nil when no API key is
// configured; every operation then answers with its canned fallback.
func NewAdvisorService(meals MealRepository, profiles ProfileRepository, llm LanguageModel, chats ChatStore, tips TipCache) *AdvisorService {
	return &AdvisorService{
		meals:    meals,
		profiles: profiles,
		llm:      llm,
		chats:    chats,
		tips:     tips,
		now:      time.Now,
	}
}

// WithClock replaces the service clock. Used in tests.
func (s *AdvisorService) WithClock(now func() time.Time) *AdvisorService {
	s.now = now
	return s
}

func currentUser(ctx context.Context) (uuid.UUID, error) {
	sess, ok := session.FromContext(ctx)
	if !ok {
		return uuid.Nil, ErrUnauthenticated
	}
	return sess.UserID, nil
}

func (s *AdvisorService) today() aggregator.Date {
	return aggregator.DateOf(s.now())
}

func (s *AdvisorService) profile(ctx context.Context, userID uuid.UUID) domain.Profile {
	p, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Printf("Error loading profile for %s, using defaults: %v", userID, err)
		}
		return domain.DefaultProfile()
	}
	return *p
}

// HandleMealLogged generates advice for a freshly logged meal and stores it
// on the meal row. When generation fails the failure is stored instead, so
// readers can tell a failed meal from a pending one.
func (s *AdvisorService) HandleMealLogged(ctx context.Context, event domain.MealEvent) error {
	if event.Type != domain.MealLoggedEvent {
		return nil
	}
	if s.llm == nil {
		return s.saveFailure(ctx, event.MealID, ErrLLMUnavailable)
	}

	profile := s.profile(ctx, event.UserID)
	text, err := s.llm.Complete(ctx, domain.Completion{
		System:      adviceSystemPrompt,
		Prompt:      buildAdvicePrompt(event, profile),
		Temperature: 0.7,
		MaxTokens:   500,
	})
	if err != nil {
		log.Printf("Error generating advice for meal %s: %v", event.MealID, err)
		return s.saveFailure(ctx, event.MealID, fmt.Errorf("%w: could not generate advice", ErrUpstream))
	}

	if err := s.meals.SaveAdvice(ctx, event.MealID, ParseAdvice(text)); err != nil {
		return fmt.Errorf("failed to save advice: %w", err)
	}
	return nil
}

func (s *AdvisorService) saveFailure(ctx context.Context, mealID uuid.UUID, cause error) error {
	if err := s.meals.SaveAdvice(ctx, mealID, domain.Advice{Error: cause.Error()}); err != nil {
		return fmt.Errorf("failed to save advice failure: %v: %w", err, cause)
	}
	return cause
}

func (s *AdvisorService) Advice(ctx context.Context, mealID uuid.UUID) (*domain.Advice, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	meal, err := s.meals.GetMeal(ctx, userID, mealID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMealNotFound
	}
	if err != nil {
		return nil, err
	}
	if len(meal.Advice) == 0 || string(meal.Advice) == "null" {
		return nil, domain.ErrAdviceNotReady
	}

	var advice domain.Advice
	if err := json.Unmarshal(meal.Advice, &advice); err != nil {
		return nil, fmt.Errorf("failed to decode stored advice: %w", err)
	}
	return &advice, nil
}

// Chat answers a question with today's meals and the profile as context.
// Model failures produce a friendly reply instead of an error.
func (s *AdvisorService) Chat(ctx context.Context, message string) (*domain.ChatMessage, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	message = strings.TrimSpace(message)
	if message == "" || len(message) > maxChatInput {
		return nil, ErrInvalidMessage
	}

	day := s.today()
	meals, err := s.meals.MealsBetween(ctx, userID, day.Start(), day.End())
	if err != nil {
		return nil, fmt.Errorf("failed to load today's meals: %w", err)
	}
	profile := s.profile(ctx, userID)

	reply := napReply
	if s.llm != nil {
		text, err := s.llm.Complete(ctx, domain.Completion{
			Prompt:      buildChatPrompt(meals, profile, message),
			Temperature: 0.7,
			MaxTokens:   250,
		})
		if err != nil {
			log.Printf("Error generating chat reply for %s: %v", userID, err)
			reply = hiccupReply
		} else {
			reply = strings.TrimSpace(text)
		}
	}

	now := s.now().UTC()
	question := domain.ChatMessage{Role: domain.RoleUser, Content: message, SentAt: now}
	answer := domain.ChatMessage{Role: domain.RoleAssistant, Content: reply, SentAt: now}
	if err := s.chats.Append(ctx, userID, day, question, answer); err != nil {
		log.Printf("Error saving chat history for %s: %v", userID, err)
	}
	return &answer, nil
}

func (s *AdvisorService) ChatHistory(ctx context.Context) ([]domain.ChatMessage, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	return s.chats.History(ctx, userID, s.today())
}

// DailyTip returns the caller's tip for today. Only model-generated tips are
// cached, so a fallback is retried on the next request.
func (s *AdvisorService) DailyTip(ctx context.Context) (string, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return "", err
	}
	day := s.today()

	if tip, ok, err := s.tips.GetTip(ctx, userID, day); err == nil && ok {
		return tip, nil
	}

	if s.llm == nil {
		return noKeyTip, nil
	}

	profile := s.profile(ctx, userID)
	text, err := s.llm.Complete(ctx, domain.Completion{
		System:      tipSystem,
		Prompt:      fmt.Sprintf("Give me one daily health tip for someone whose goal is: %s. Keep it to one sentence with an emoji.", profile.Goal),
		Temperature: 0.8,
		MaxTokens:   100,
	})
	if err != nil {
		log.Printf("Error generating daily tip for %s: %v", userID, err)
		return fallbackTip, nil
	}

	tip := strings.TrimSpace(text)
	if err := s.tips.SetTip(ctx, userID, day, tip); err != nil {
		log.Printf("Error caching daily tip for %s: %v", userID, err)
	}
	return tip, nil
}

func buildChatPrompt(meals []domain.Meal, profile domain.Profile, question string) string {
	history := "You haven't logged any meals yet today."
	if len(meals) > 0 {
		var b strings.Builder
		total := decimal.Zero
		b.WriteString("So far today, you have logged:\n")
		for _, m := range meals {
			calories := m.Calories.Decimal
			if !m.Calories.Valid {
				calories = decimal.Zero
			}
			fmt.Fprintf(&b, "- %s (%s kcal)\n", m.FoodName, calories.StringFixed(0))
			total = total.Add(calories)
		}
		fmt.Fprintf(&b, "Your total for today is approximately %s calories.", total.StringFixed(0))
		history = b.String()
	}

	return fmt.Sprintf(`You are NutriLens, a cute, encouraging, and knowledgeable AI nutritionist. Your nickname is Pookie.
The user's profile: Their goal is '%s' and they are %d years old.
Today's meal history:
%s

The user just asked you: "%s"

Based on their history and goal, provide a helpful, friendly, and practical response.
If they ask for a snack, suggest 2-3 specific, healthy options, explaining why they are a good choice (e.g., "it has protein to keep you full!").
Keep it conversational and use emojis naturally! 🌸 Your response should be encouraging and cute.`,
		profile.Goal, profile.Age, history, question)
}
