package ports

import (
	"context"

	"marketplace-api/internal/infrastructure/mq"
)

type Publisher interface {
	Publish(ctx context.Context, e mq.Event)
	Close()
}
