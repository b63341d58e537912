package create_feedback

import (
	"context"

	createFeedback "github.com/m04kA/SMC-BookingGateway/internal/usecase/create_feedback"
)

type CreateFeedbackUseCase interface {
	Execute(ctx context.Context, req *createFeedback.Request) (*createFeedback.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
