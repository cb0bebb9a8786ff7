package utils

import (
	"github.com/prometheus/client_golang/prometheus"
)

func init() {
	prometheus.MustRegister(HTTPRequestCounter)
	prometheus.MustRegister(ReviewListingCounter)
	prometheus.MustRegister(ReviewCommentCounter)
	prometheus.MustRegister(ReviewAnswerCounter)
	prometheus.MustRegister(ReconcileCorrectionCounter)
}

var HTTPRequestCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "smtc_http_requests_total",
	Help: "Total HTTP requests by method and status code",
}, []string{"method", "status"})

var ReviewListingCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "smtc_review_listing_total",
	Help: "Review request listings served by scope",
}, []string{"scope"})

var ReviewCommentCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "smtc_review_comments_total",
	Help: "Comment mutations by operation",
}, []string{"op"})

var ReviewAnswerCounter = prometheus.NewCounter(prometheus.CounterOpts{
	Name: "smtc_review_answers_total",
	Help: "Answers attached to review requests",
})

var ReconcileCorrectionCounter = prometheus.NewCounter(prometheus.CounterOpts{
	Name: "smtc_reviewer_stats_corrections_total",
	Help: "Reviewer stat rows corrected by the reconcile job",
})
