package mq

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tuanvumaihuynh/parts-inventory/pkg/correlationid"
	"github.com/tuanvumaihuynh/parts-inventory/pkg/ptr"
)

func TestBuildProduceRecord(t *testing.T) {
	t.Run("Should map headers, payload and key", func(t *testing.T) {
		rec := buildProduceRecord(ProduceMsg{
			Topic:        "part.restock_alert",
			Headers:      map[string]string{correlationid.Header: "abc"},
			Payload:      []byte(`{"part_id":"A2"}`),
			PartitionKey: ptr.New("A2"),
		})

		assert.Equal(t, "part.restock_alert", rec.Topic)
		assert.Equal(t, []byte(`{"part_id":"A2"}`), rec.Value)
		assert.Equal(t, []byte("A2"), rec.Key)
		assert.Len(t, rec.Headers, 1)
		assert.Equal(t, correlationid.Header, rec.Headers[0].Key)
		assert.Equal(t, []byte("abc"), rec.Headers[0].Value)
		assert.Equal(t, map[string]string{correlationid.Header: "abc"}, recordHeaders(rec))
	})

	t.Run("Should leave key empty without partition key", func(t *testing.T) {
		rec := buildProduceRecord(ProduceMsg{Topic: "t"})
		assert.Nil(t, rec.Key)
		assert.Empty(t, rec.Headers)
	})
}

func TestHeadersRoundTrip(t *testing.T) {
	ctx := correlationid.NewContext(context.Background(), "corr-1")

	headers := BuildHeaders(ctx)
	assert.Equal(t, "corr-1", headers[correlationid.Header])

	got, ok := correlationid.FromContext(ExtractContextFromHeaders(context.Background(), headers))
	assert.True(t, ok)
	assert.Equal(t, "corr-1", got)
}
