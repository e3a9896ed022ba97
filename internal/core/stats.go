package core

import (
	"math/big"
	"slices"
	"strings"
	"usdcdash/internal/format"
)

// VolumeDays is how many of the most recent active days the volume series keeps.
const VolumeDays = 7

type direction int

const (
	unrelated direction = iota
	sent
	received
)

// classify puts a self-transfer on the sent side.
func classify(tx Transaction, address string) direction {
	switch {
	case strings.ToLower(tx.From) == address:
		return sent
	case strings.ToLower(tx.To) == address:
		return received
	default:
		return unrelated
	}
}

// ComputeStats sums sent and received values exactly and counts every record.
func ComputeStats(txs []Transaction, address string) Stats {
	address = strings.ToLower(address)
	totalSent, totalReceived := new(big.Int), new(big.Int)

	for _, tx := range txs {
		value, ok := new(big.Int).SetString(tx.Value, 10)
		if !ok {
			continue
		}
		switch classify(tx, address) {
		case sent:
			totalSent.Add(totalSent, value)
		case received:
			totalReceived.Add(totalReceived, value)
		}
	}

	return Stats{
		TotalTransactions: len(txs),
		TotalSent:         format.UnitsOf(totalSent, format.TokenDecimals),
		TotalReceived:     format.UnitsOf(totalReceived, format.TokenDecimals),
		TotalSentRaw:      totalSent.String(),
		TotalReceivedRaw:  totalReceived.String(),
	}
}

// VolumeSeries groups records per UTC day and returns the last days days present, oldest first.
func VolumeSeries(txs []Transaction, address string, days int) []VolumePoint {
	address = strings.ToLower(address)

	type bucket struct {
		sent, received *big.Int
		count          int
	}
	buckets := make(map[string]*bucket)

	for _, tx := range txs {
		date := tx.TimeStamp.UTC().Format("2006-01-02")
		b, ok := buckets[date]
		if !ok {
			b = &bucket{sent: new(big.Int), received: new(big.Int)}
			buckets[date] = b
		}
		b.count++

		value, ok := new(big.Int).SetString(tx.Value, 10)
		if !ok {
			continue
		}
		switch classify(tx, address) {
		case sent:
			b.sent.Add(b.sent, value)
		case received:
			b.received.Add(b.received, value)
		}
	}

	dates := make([]string, 0, len(buckets))
	for date := range buckets {
		dates = append(dates, date)
	}
	slices.Sort(dates)
	if days > 0 && len(dates) > days {
		dates = dates[len(dates)-days:]
	}

	points := make([]VolumePoint, 0, len(dates))
	for _, date := range dates {
		b := buckets[date]
		points = append(points, VolumePoint{
			Date:     date,
			Sent:     format.UnitsOf(b.sent, format.TokenDecimals),
			Received: format.UnitsOf(b.received, format.TokenDecimals),
			Count:    b.count,
		})
	}

	return points
}
