package notes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ribgsilva/wp-notes-api/business/v1/note"
	"github.com/ribgsilva/wp-notes-api/sys"
	"gocloud.dev/pubsub"
)

// ErrNoWorkers is returned by Consume when it is given no worker to run handlers on.
var ErrNoWorkers = errors.New("at least one worker is required")

// Consume applies the note events received from sub to the store until ctx is
// cancelled, running at most maxWorkers handlers at once.
func Consume(ctx context.Context, sub *pubsub.Subscription, maxWorkers int) error {
	if maxWorkers < 1 {
		return fmt.Errorf("consume with %d workers: %w", maxWorkers, ErrNoWorkers)
	}

	logger := sys.R.Log
	workers := make(chan int, maxWorkers)

	var err error
	for {
		var message *pubsub.Message
		message, err = sub.Receive(ctx)
		if err != nil {
			break
		}

		workers <- 1
		go func(m *pubsub.Message) {
			defer func() { <-workers }()
			defer m.Ack()

			logger.Debugf("message received: %s", string(m.Body))
			if err := Handle(ctx, m.Body); err != nil {
				logger.Errorw("messaging", "ERROR", err, "body", string(m.Body))
			}
		}(message)
	}

	for w := 0; w < maxWorkers; w++ {
		workers <- 1
	}

	if !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}

// Handle applies one event to the store.
func Handle(ctx context.Context, body []byte) error {
	var e struct {
		Type string          `json:"type"`
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &e); err != nil {
		return errors.New("failed to parse body: " + err.Error())
	}

	switch e.Type {
	case "save":
		var n note.Note
		if err := json.Unmarshal(e.Data, &n); err != nil {
			return errors.New("failed to parse note: " + err.Error())
		}
		return note.Save(ctx, n)
	case "delete":
		var r note.Ref
		if err := json.Unmarshal(e.Data, &r); err != nil {
			return errors.New("failed to parse note ref: " + err.Error())
		}
		return note.Delete(ctx, r.Id)
	default:
		return errors.New("unknown event type: " + e.Type)
	}
}
