package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tuanvumaihuynh/parts-inventory/internal/model"
)

func TestPartNeedsRestock(t *testing.T) {
	tests := []struct {
		name     string
		stock    int
		minLevel int
		want     bool
	}{
		{name: "below threshold", stock: 15, minLevel: 20, want: true},
		{name: "at threshold", stock: 20, minLevel: 20, want: true},
		{name: "above threshold", stock: 22, minLevel: 20, want: false},
		{name: "empty", stock: 0, minLevel: 0, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := model.Part{Stock: tt.stock, MinStockLevel: tt.minLevel}
			assert.Equal(t, tt.want, p.NeedsRestock())
		})
	}
}
