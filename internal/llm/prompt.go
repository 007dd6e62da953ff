package llm

import "strings"

func BuildMealIdeaPrompt(foodItems []string) string {
	return `
You are a helpful assistant for a food charity.
Given the following leftover food items from a restaurant: ` + strings.Join(foodItems, ", ") + `.
Suggest a simple, nutritious, and easy-to-prepare meal idea that combines them.
Provide a creative name for the meal and a short, step-by-step recipe.
The recipe should require minimal additional ingredients, assuming the user has basic staples like salt, pepper, and oil.
Format the output in Markdown: use # headings and * bullet points.
`
}
