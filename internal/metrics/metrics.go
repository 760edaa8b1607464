// Package metrics exposes Prometheus collectors for report generation.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg               *prometheus.Registry
	ReportsGenerated  *prometheus.CounterVec
	ReportErrors      *prometheus.CounterVec
	ReportDurationSec *prometheus.HistogramVec
	ReportRows        *prometheus.GaugeVec
	DatasetRows       *prometheus.GaugeVec
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	generated := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "acme_reports_generated_total",
		Help: "Reports generated, by report key and format.",
	}, []string{"report", "format"})
	errs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "acme_report_errors_total",
		Help: "Failed report requests, by error code.",
	}, []string{"code"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "acme_report_duration_seconds",
		Help:    "Time to compute and write a report.",
		Buckets: prometheus.DefBuckets,
	}, []string{"report"})
	reportRows := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "acme_report_rows",
		Help: "Rows in the last generated report.",
	}, []string{"report"})
	datasetRows := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "acme_dataset_rows",
		Help: "Decoded rows per input source.",
	}, []string{"source"})

	r.MustRegister(generated, errs, duration, reportRows, datasetRows)
	return &Registry{
		reg:               r,
		ReportsGenerated:  generated,
		ReportErrors:      errs,
		ReportDurationSec: duration,
		ReportRows:        reportRows,
		DatasetRows:       datasetRows,
	}
}

// ObserveDataset records the row count of every input source.
func (r *Registry) ObserveDataset(counts map[string]int) {
	for src, n := range counts {
		r.DatasetRows.WithLabelValues(src).Set(float64(n))
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
