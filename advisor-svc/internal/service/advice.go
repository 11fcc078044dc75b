package service

import (
	"fmt"
	"strings"

	"nutrilens/advisor-svc/internal/domain"
)

const adviceSystemPrompt = "You are NutriLens, a cute, friendly, and knowledgeable AI nutritionist who specializes in Indian diets " +
	"and personalized health advice. You're encouraging, warm, and give practical tips. Use emojis naturally but not " +
	"excessively. Keep responses concise and actionable."

func buildAdvicePrompt(event domain.MealEvent, profile domain.Profile) string {
	nutrition := "Nutrition data not available for this food."
	if !event.Calories.IsZero() || !event.ProteinG.IsZero() || !event.CarbsG.IsZero() || !event.FatG.IsZero() {
		nutrition = fmt.Sprintf("Nutrition Facts:\n- Calories: %s kcal, Protein: %sg, Carbs: %sg, Fat: %sg",
			event.Calories.StringFixed(0), event.ProteinG.StringFixed(1), event.CarbsG.StringFixed(1), event.FatG.StringFixed(1))
	}

	return fmt.Sprintf(`The user just ate: **%s**
%s
User Profile:
- Goal: %s, Age: %d, Diet: %s, Activity: %s

Please provide personalized advice in the following format:
**HEALTHY SWAP:** [Suggest ONE healthier alternative to this food.]
**DIET TIP:** [ONE practical, actionable tip related to this meal.]
**PORTION ADVICE:** [Quick guidance about portion size for this food.]
**MOTIVATION:** [A short, encouraging message.]
Keep it warm, friendly, and specific to Indian context where relevant.`,
		event.FoodName, nutrition, profile.Goal, profile.Age, profile.DietType, profile.Activity)
}

// ParseAdvice splits a model reply into its four headed sections. Text after
// the colon on a heading line starts the section; following lines are joined
// with spaces.
func ParseAdvice(text string) domain.Advice {
	var (
		advice  domain.Advice
		current *string
	)
	appendTo := func(field *string, line string) {
		if line == "" {
			return
		}
		if *field != "" {
			*field += " "
		}
		*field += line
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		upper := strings.ToUpper(line)
		heading := true
		switch {
		case strings.Contains(upper, "HEALTHY SWAP"):
			current = &advice.HealthySwap
		case strings.Contains(upper, "DIET TIP"):
			current = &advice.DietTip
		case strings.Contains(upper, "PORTION ADVICE"):
			current = &advice.PortionAdvice
		case strings.Contains(upper, "MOTIVATION"):
			current = &advice.Motivation
		default:
			heading = false
		}
		if current == nil {
			continue
		}
		if heading {
			_, rest, _ := strings.Cut(line, ":")
			appendTo(current, strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(rest), "**")))
			continue
		}
		appendTo(current, line)
	}

	clean := strings.NewReplacer("**", "", "[", "", "]", "")
	for _, field := range []*string{&advice.HealthySwap, &advice.DietTip, &advice.PortionAdvice, &advice.Motivation} {
		*field = strings.TrimSpace(clean.Replace(*field))
	}

	if advice == (domain.Advice{}) {
		return FallbackAdvice(text)
	}
	return advice
}

func FallbackAdvice(text string) domain.Advice {
	swap := "Great food choice!"
	if text != "" {
		swap = text
		if runes := []rune(text); len(runes) > 200 {
			swap = string(runes[:200])
		}
	}
	return domain.Advice{
		HealthySwap:   swap,
		DietTip:       "Stay hydrated and eat mindfully! 💧",
		PortionAdvice: "Moderate portions work best.",
		Motivation:    "You're on the right track! 🌸",
	}
}
