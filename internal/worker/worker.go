// Package worker - фоновые обработчики стримов и управление их жизненным циклом.
package worker

import (
	"context"
)

// Worker - долгоживущий обработчик. Start блокируется до Stop или отмены ctx.
type Worker interface {
	Start(ctx context.Context) error
	Stop() error
	Name() string
}
