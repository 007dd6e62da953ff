// Package mealidea turns a set of selected listing names into an AI meal
// suggestion and shapes the reply for display.
package mealidea

import (
	"context"
	"log"

	"nourishnet/internal/llm"
)

const (
	EmptySelectionMessage = "Please select some food items to get a meal idea."
	FailureMessage        = "Sorry, I couldn't generate a meal idea at the moment. Please try again later."
)

type Requester struct {
	client llm.Client
	logger *log.Logger
}

// NewRequester uses log.Default() when logger is nil.
func NewRequester(client llm.Client, logger *log.Logger) *Requester {
	if logger == nil {
		logger = log.Default()
	}
	return &Requester{client: client, logger: logger}
}

// Suggest never fails outwardly. An empty name list short-circuits without a
// network call; any service error is logged and replaced by FailureMessage.
// The service text is returned unmodified.
func (r *Requester) Suggest(ctx context.Context, foodItems []string) string {
	if len(foodItems) == 0 {
		return EmptySelectionMessage
	}

	text, err := r.client.GenerateText(ctx, llm.BuildMealIdeaPrompt(foodItems))
	if err != nil {
		r.logger.Printf("Error generating meal idea for %d items: %v", len(foodItems), err)
		return FailureMessage
	}

	return text
}
