package main

import (
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Метрики
var (
	requestsCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "traffic_generator_requests_total",
		Help: "Общее количество отправленных запросов",
	}, []string{"path", "code"})

	requestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "traffic_generator_request_duration_seconds",
		Help:    "Длительность запроса в секундах",
		Buckets: []float64{0.1, 0.3, 0.5, 1, 2},
	})
)

var paths = []string{
	"/ping",
	"/orders",
	"/orders/1",
	"/orders/1/history",
	"/companies",
	"/vehicles",
}

func fire(client *http.Client, baseURL, path string) {
	start := time.Now()
	defer func() {
		requestDuration.Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequest(http.MethodGet, baseURL+path, nil)
	if err != nil {
		requestsCounter.WithLabelValues(path, "error").Inc()
		return
	}
	// операторский аккаунт из сида
	req.Header.Set("X-User-Id", "2")

	resp, err := client.Do(req)
	if err != nil {
		requestsCounter.WithLabelValues(path, "error").Inc()
		return
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	requestsCounter.WithLabelValues(path, fmt.Sprintf("%d", resp.StatusCode)).Inc()
}

func main() {
	baseURL := os.Getenv("TARGET_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	http.Handle("/metrics", promhttp.Handler())
	go http.ListenAndServe(":2112", nil)

	client := &http.Client{Timeout: 5 * time.Second}

	for {
		fire(client, baseURL, paths[rand.Intn(len(paths))])
		time.Sleep(time.Duration(200+rand.Intn(1800)) * time.Millisecond)
	}
}
