package impl

import (
	"context"
	"net/http"
	"testing"

	domainerrors "nutriplan/internal/domain/errors"
	"nutriplan/internal/domain/service"
	mockSvc "nutriplan/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGenerative_Generate(t *testing.T) {
	generator := mockSvc.NewMockTextGenerator(t)
	srv := NewGenerativeService(generator, newTestLogger())
	ctx := context.Background()
	req := service.GenerationRequest{Prompt: "Erkläre Selen in einem Satz."}

	generator.EXPECT().GenerateText(ctx, req).Return("Selen schützt die Zellen.", nil).Once()

	text, err := srv.Generate(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "Selen schützt die Zellen.", text)
}

func TestGenerative_RejectsBlankPrompt(t *testing.T) {
	generator := mockSvc.NewMockTextGenerator(t)
	srv := NewGenerativeService(generator, newTestLogger())

	for _, prompt := range []string{"", "   ", "\n\t"} {
		_, err := srv.Generate(context.Background(), service.GenerationRequest{Prompt: prompt})
		require.ErrorIs(t, err, domainerrors.ErrPromptMissing)
	}
	generator.AssertNotCalled(t, "GenerateText", mock.Anything, mock.Anything)
}

func TestGenerative_SingleAttemptOnFailure(t *testing.T) {
	generator := mockSvc.NewMockTextGenerator(t)
	generator.EXPECT().Name().Return("gemini").Maybe()
	srv := NewGenerativeService(generator, newTestLogger())
	ctx := context.Background()
	upstream := &service.GeneratorError{StatusCode: http.StatusTooManyRequests, Message: "quota exceeded"}

	generator.EXPECT().GenerateText(ctx, mock.Anything).Return("", upstream).Once()

	_, err := srv.Generate(ctx, service.GenerationRequest{Prompt: "hi"})
	var genErr *service.GeneratorError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, http.StatusTooManyRequests, genErr.StatusCode)
	generator.AssertNumberOfCalls(t, "GenerateText", 1)
}
