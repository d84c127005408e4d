package events

import (
	"context"
	"testing"
	"time"
)

func TestPublishSubscribe(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := bus.Subscribe(ctx, TopicImageUploaded)
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	if err := Publish(bus, TopicImageUploaded, ImageEvent{ImageID: 7, UserID: 3, AnimalName: "黑熊"}); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	select {
	case msg := <-ch:
		env, err := Decode[ImageEvent](msg.Payload)
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		msg.Ack()
		if env.Header.Topic != TopicImageUploaded || env.Payload.ImageID != 7 || env.Payload.AnimalName != "黑熊" {
			t.Fatalf("unexpected envelope: %+v", env)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
	}
}
