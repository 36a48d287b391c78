package interfaces

// GreetingUseCase builds the greeting text shown by the home page and the hello API
type GreetingUseCase interface {
	// Greet returns the greeting for name. A nil name greets the default recipient.
	Greet(name *string) string
}
