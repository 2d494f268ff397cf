// Package nats publishes adboard domain events. Subscribers (search
// indexers, audit) are outside this repository.
package nats

import (
	"context"
	"encoding/json"

	"github.com/nats-io/nats.go"
)

const (
	SubjectAdCreated       = "adboard.ad.created"
	SubjectAdUpdated       = "adboard.ad.updated"
	SubjectAdDeleted       = "adboard.ad.deleted"
	SubjectCategoryDeleted = "adboard.category.deleted"
	SubjectUserDeleted     = "adboard.user.deleted"
)

type Publisher struct {
	conn *nats.Conn
}

func NewPublisher(url string) (*Publisher, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, err
	}
	return &Publisher{conn: conn}, nil
}

func (p *Publisher) publish(subject string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return p.conn.Publish(subject, data)
}

type adEvent struct {
	ID int64 `json:"id"`
}

type cascadeEvent struct {
	ID         int64 `json:"id"`
	AdsRemoved int64 `json:"ads_removed"`
}

func (p *Publisher) PublishAdCreated(_ context.Context, id int64) error {
	return p.publish(SubjectAdCreated, adEvent{ID: id})
}

func (p *Publisher) PublishAdUpdated(_ context.Context, id int64) error {
	return p.publish(SubjectAdUpdated, adEvent{ID: id})
}

func (p *Publisher) PublishAdDeleted(_ context.Context, id int64) error {
	return p.publish(SubjectAdDeleted, adEvent{ID: id})
}

func (p *Publisher) PublishCategoryDeleted(_ context.Context, id, adsRemoved int64) error {
	return p.publish(SubjectCategoryDeleted, cascadeEvent{ID: id, AdsRemoved: adsRemoved})
}

func (p *Publisher) PublishUserDeleted(_ context.Context, id, adsRemoved int64) error {
	return p.publish(SubjectUserDeleted, cascadeEvent{ID: id, AdsRemoved: adsRemoved})
}

func (p *Publisher) Close() {
	p.conn.Close()
}
