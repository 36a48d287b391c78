package usecase_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/gt-helloworld/pkg/domain/interfaces"
	"github.com/m-mizutani/gt-helloworld/pkg/usecase"
)

var _ interfaces.GreetingUseCase = usecase.NewGreeting()

func strPtr(s string) *string {
	return &s
}

func TestGenerateMessage(t *testing.T) {
	tests := []struct {
		name  string
		input *string
		want  string
	}{
		{
			name:  "default name",
			input: nil,
			want:  "Hello, World! This is GT Hello World running on Gas Town.",
		},
		{
			name:  "custom name",
			input: strPtr("Polecat"),
			want:  "Hello, Polecat! This is GT Hello World running on Gas Town.",
		},
		{
			name:  "empty string is kept",
			input: strPtr(""),
			want:  "Hello, ! This is GT Hello World running on Gas Town.",
		},
		{
			name:  "name is substituted verbatim",
			input: strPtr("<b>Mayor</b> & co"),
			want:  "Hello, <b>Mayor</b> & co! This is GT Hello World running on Gas Town.",
		},
		{
			name:  "explicit World matches default",
			input: strPtr("World"),
			want:  usecase.GenerateMessage(nil),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Value(t, usecase.GenerateMessage(tt.input)).Equal(tt.want)
		})
	}
}

func TestGreeting_Greet(t *testing.T) {
	uc := usecase.NewGreeting()

	msg := uc.Greet(strPtr("Test"))
	gt.String(t, msg).Contains("Hello, Test!")
	gt.String(t, msg).Contains("Gas Town")

	gt.Value(t, uc.Greet(nil)).Equal(usecase.GenerateMessage(nil))
}
