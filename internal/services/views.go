package services

import "strings"

// wordsPerMinute is the assumed reading speed for the article time estimate.
const wordsPerMinute = 200

// ReadingTime estimates minutes to read content: word count divided by 200
// words per minute, rounded up, never less than 1.
func ReadingTime(content string) int {
	words := len(strings.Fields(content))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}
