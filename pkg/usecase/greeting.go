package usecase

import "fmt"

// DefaultName is used when no name is given
const DefaultName = "World"

// GenerateMessage returns the greeting for name.
// nil falls back to DefaultName; an empty string is kept as is.
func GenerateMessage(name *string) string {
	n := DefaultName
	if name != nil {
		n = *name
	}
	return fmt.Sprintf("Hello, %s! This is GT Hello World running on Gas Town.", n)
}

type greetingUseCase struct{}

// NewGreeting creates a new instance of GreetingUseCase
func NewGreeting() *greetingUseCase {
	return &greetingUseCase{}
}

// Greet implements interfaces.GreetingUseCase
func (uc *greetingUseCase) Greet(name *string) string {
	return GenerateMessage(name)
}
