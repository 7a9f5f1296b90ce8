package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shubhxg/dex-amm/pkg/amm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult(dir amm.Direction) amm.TradeResult {
	return amm.TradeResult{
		Direction:     dir,
		Quantity:      decimal.RequireFromString("1"),
		CounterAmount: decimal.RequireFromString("5040.2"),
		FeeAmount:     decimal.RequireFromString("15.07"),
		Reserves: amm.Reserves{
			Base:  decimal.RequireFromString("199"),
			Quote: decimal.RequireFromString("1005010.05"),
		},
	}
}

func TestTradeEvent_Summary(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	buy := NewTradeEvent("alice", "ETH", "USDC", sampleResult(amm.DirectionBuy), at)
	assert.Equal(t, "User bought 1 ETH for 5040.2 USDC", buy.Summary())
	assert.NotEqual(t, uuid.Nil, buy.ID)

	sell := NewTradeEvent("alice", "ETH", "USDC", sampleResult(amm.DirectionSell), at)
	assert.Equal(t, "User sold 1 USDC for 5040.2 ETH", sell.Summary())
	assert.NotEqual(t, buy.ID, sell.ID)
}

func TestLogSink_Record(t *testing.T) {
	var buf bytes.Buffer
	sink := NewLogSink(slog.New(slog.NewJSONHandler(&buf, nil)))

	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	ev := NewTradeEvent("alice", "ETH", "USDC", sampleResult(amm.DirectionBuy), at)
	sink.Record(context.Background(), ev)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "User bought 1 ETH for 5040.2 USDC", rec["msg"])
	assert.Equal(t, ev.ID.String(), rec["trade_id"])
	assert.Equal(t, "buy", rec["direction"])
	assert.Equal(t, "alice", rec["trader"])
	assert.Equal(t, "15.07", rec["fee"])
	assert.Equal(t, "199", rec["base_reserve"])
	assert.Equal(t, "2024-01-02T03:04:05Z", rec["settled_at"])
}

func TestOpenFile_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "combined.log")

	for _, line := range []string{"first\n", "second\n"} {
		f, err := OpenFile(path)
		require.NoError(t, err)
		_, err = f.WriteString(line)
		require.NoError(t, err)
		require.NoError(t, f.Close())
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(data))
}

func TestOpenFile_Error(t *testing.T) {
	_, err := OpenFile(filepath.Join(t.TempDir(), "missing", "combined.log"))
	require.Error(t, err)
}
