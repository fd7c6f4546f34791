package kafkaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
)

// mockWriter records written messages for inspection.
type mockWriter struct {
	messages []kafka.Message
	failWith error
	closed   bool
}

func (mw *mockWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if mw.failWith != nil {
		return mw.failWith
	}
	mw.messages = append(mw.messages, msgs...)
	return nil
}

func (mw *mockWriter) Close() error {
	mw.closed = true
	return nil
}

func TestPublisher_PublishRefresh(t *testing.T) {
	mw := &mockWriter{}
	p := &Publisher{writer: mw}

	ev := RefreshEvent{
		Sequence:    7,
		GroupCount:  23,
		Source:      "live",
		RefreshedAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}
	if err := p.PublishRefresh(context.Background(), ev); err != nil {
		t.Fatalf("PublishRefresh returned error: %v", err)
	}

	if len(mw.messages) != 1 {
		t.Fatalf("wrote %d messages, expected 1", len(mw.messages))
	}
	msg := mw.messages[0]
	if string(msg.Key) != "7" {
		t.Errorf("message key = %q, expected %q", msg.Key, "7")
	}

	var got RefreshEvent
	if err := json.Unmarshal(msg.Value, &got); err != nil {
		t.Fatalf("message value is not valid JSON: %v", err)
	}
	if got.Sequence != ev.Sequence || got.GroupCount != ev.GroupCount || got.Source != ev.Source {
		t.Errorf("decoded event = %+v, expected %+v", got, ev)
	}
	if !got.RefreshedAt.Equal(ev.RefreshedAt) {
		t.Errorf("decoded refreshedAt = %v, expected %v", got.RefreshedAt, ev.RefreshedAt)
	}
}

func TestPublisher_WriteFailureIsReturned(t *testing.T) {
	mw := &mockWriter{failWith: fmt.Errorf("broker unreachable")}
	p := &Publisher{writer: mw}

	err := p.PublishRefresh(context.Background(), RefreshEvent{Sequence: 1})
	if err == nil {
		t.Fatal("expected an error when the writer fails")
	}
}

func TestPublisher_Close(t *testing.T) {
	mw := &mockWriter{}
	p := &Publisher{writer: mw}
	if err := p.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	if !mw.closed {
		t.Error("Close did not close the underlying writer")
	}
}
