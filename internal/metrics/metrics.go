package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// SpinsTotal - количество завершенных спинов
	SpinsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slot_spins_total",
		Help: "Total number of completed spins",
	})

	// StakedTotal - сумма всех списанных ставок в монетах
	StakedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slot_staked_coins_total",
		Help: "Total coins staked",
	})

	// PayoutsTotal - сумма всех начисленных выплат в монетах
	PayoutsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slot_payout_coins_total",
		Help: "Total coins paid out",
	})

	// JackpotsTotal - количество выпавших джекпотов
	JackpotsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slot_jackpots_total",
		Help: "Total number of jackpots hit",
	})

	// SpinRejections - отклоненные запросы спина по причинам
	SpinRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "slot_spin_rejections_total",
		Help: "Spin requests rejected, by reason",
	}, []string{"reason"})

	// PurchasesTotal - количество покупок в магазине
	PurchasesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slot_shop_purchases_total",
		Help: "Total number of shop purchases",
	})

	// SpinDuration - длительность спина от списания до начисления
	SpinDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "slot_spin_duration_seconds",
		Help:    "Spin duration in seconds",
		Buckets: []float64{0.5, 1.0, 1.2, 1.5, 2.0, 3.0, 5.0},
	})
)

// Handler - HTTP обработчик для /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
