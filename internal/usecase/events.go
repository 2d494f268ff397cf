package usecase

import "context"

// EventPublisher mirrors the NATS adapter. A nil publisher disables events;
// publish failures are logged and never fail the request.
type EventPublisher interface {
	PublishAdCreated(ctx context.Context, id int64) error
	PublishAdUpdated(ctx context.Context, id int64) error
	PublishAdDeleted(ctx context.Context, id int64) error
	PublishCategoryDeleted(ctx context.Context, id, adsRemoved int64) error
	PublishUserDeleted(ctx context.Context, id, adsRemoved int64) error
}
