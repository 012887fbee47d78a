package keeper

import (
	"math/big"
	"sync"

	"cosmossdk.io/math"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DEXMetrics holds all Prometheus metrics for the DEX module
type DEXMetrics struct {
	// Swap metrics
	SwapsTotal *prometheus.CounterVec
	SwapVolume *prometheus.CounterVec

	// Liquidity metrics
	LiquidityAdded   *prometheus.CounterVec
	LiquidityRemoved *prometheus.CounterVec
	PoolReserves     *prometheus.GaugeVec

	// Pool metrics
	PoolsCreated prometheus.Counter
}

var (
	dexMetricsOnce sync.Once
	dexMetrics     *DEXMetrics
)

// NewDEXMetrics creates and registers DEX metrics (singleton pattern)
func NewDEXMetrics() *DEXMetrics {
	dexMetricsOnce.Do(func() {
		dexMetrics = &DEXMetrics{
			SwapsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "paw",
					Subsystem: "dex",
					Name:      "swaps_total",
					Help:      "Total number of swaps attempted",
				},
				[]string{"pair", "status"},
			),
			SwapVolume: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "paw",
					Subsystem: "dex",
					Name:      "swap_volume_total",
					Help:      "Total swap input volume in base units",
				},
				[]string{"pair", "asset"},
			),
			LiquidityAdded: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "paw",
					Subsystem: "dex",
					Name:      "liquidity_added_total",
					Help:      "Total liquidity added to pools",
				},
				[]string{"pair", "asset"},
			),
			LiquidityRemoved: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "paw",
					Subsystem: "dex",
					Name:      "liquidity_removed_total",
					Help:      "Total liquidity removed from pools",
				},
				[]string{"pair", "asset"},
			),
			PoolReserves: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "paw",
					Subsystem: "dex",
					Name:      "pool_reserves",
					Help:      "Current pool reserves",
				},
				[]string{"pair", "asset"},
			),
			PoolsCreated: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "paw",
					Subsystem: "dex",
					Name:      "pools_created_total",
					Help:      "Total number of pools created",
				},
			),
		}
	})
	return dexMetrics
}

// GetDEXMetrics returns the singleton DEX metrics instance
func GetDEXMetrics() *DEXMetrics {
	if dexMetrics == nil {
		return NewDEXMetrics()
	}
	return dexMetrics
}

func (m *DEXMetrics) recordReserves(pair string, asset0, asset1 string, r0, r1 math.Int) {
	m.PoolReserves.WithLabelValues(pair, asset0).Set(amountToFloat(r0))
	m.PoolReserves.WithLabelValues(pair, asset1).Set(amountToFloat(r1))
}

func amountToFloat(amount math.Int) float64 {
	f, _ := new(big.Float).SetInt(amount.BigInt()).Float64()
	return f
}
