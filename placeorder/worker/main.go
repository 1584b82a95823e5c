package main

import (
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.temporal.io/sdk/client"
	tlog "go.temporal.io/sdk/log"
	"go.temporal.io/sdk/worker"

	"order-taking/placeorder/activities"
	"order-taking/placeorder/catalog"
	"order-taking/placeorder/workflows"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Create Temporal client
	c, err := client.Dial(client.Options{
		HostPort: getEnv("TEMPORAL_HOST", "localhost:7233"),
		Logger:   tlog.NewStructuredLogger(logger),
	})
	if err != nil {
		log.Fatalln("Unable to create Temporal client", err)
	}
	defer c.Close()

	// Get task queue name from environment
	taskQueue := getEnv("ORDER_TASK_QUEUE", "order-task-queue")

	cat, err := loadCatalog(getEnv("CATALOG_FILE", ""))
	if err != nil {
		log.Fatalln("Unable to load catalog", err)
	}

	metrics := activities.NewMetrics(prometheus.DefaultRegisterer)
	go serveMetrics(getEnv("METRICS_ADDR", ":9090"))

	// Create worker with options
	w := worker.New(c, taskQueue, worker.Options{
		Identity:                               "order-taking-worker-" + hostname(),
		MaxConcurrentActivityExecutionSize:     100,
		MaxConcurrentWorkflowTaskExecutionSize: 50,
	})

	// Register workflows
	w.RegisterWorkflow(workflows.PlaceOrderWorkflow)

	// Register activities
	// Catalog activities
	productActivities := &activities.ProductActivities{Catalog: cat, Metrics: metrics}
	w.RegisterActivity(productActivities.CheckProductCodeExists)
	w.RegisterActivity(productActivities.GetPriceList)

	// Address activities
	addressActivities := &activities.AddressActivities{Catalog: cat, Metrics: metrics}
	w.RegisterActivity(addressActivities.CheckAddressExists)

	// Notification and event activities, Kafka backed when brokers are configured
	notificationActivities := &activities.NotificationActivities{Metrics: metrics}
	eventActivities := &activities.EventActivities{Metrics: metrics}
	if brokers := activities.ParseBrokers(getEnv("KAFKA_BROKERS", "")); len(brokers) > 0 {
		ackWriter := activities.NewWriter(brokers, getEnv("ACK_TOPIC", activities.TopicAcknowledgments))
		defer ackWriter.Close()
		eventWriter := activities.NewWriter(brokers, getEnv("EVENTS_TOPIC", activities.TopicOrderEvents))
		defer eventWriter.Close()

		notificationActivities.Writer = ackWriter
		eventActivities.Writer = eventWriter
		log.Println("Publishing to Kafka brokers:", brokers)
	} else {
		log.Println("KAFKA_BROKERS not set, acknowledgments and events are logged only")
	}
	w.RegisterActivity(notificationActivities.SendAcknowledgment)
	w.RegisterActivity(eventActivities.PublishEvents)

	log.Println("Worker starting on task queue:", taskQueue)
	log.Println("Worker identity:", "order-taking-worker-"+hostname())

	// Start worker
	err = w.Run(worker.InterruptCh())
	if err != nil {
		log.Fatalln("Unable to start worker", err)
	}
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		log.Println("CATALOG_FILE not set, using built-in catalog")
		return catalog.Default(), nil
	}
	return catalog.Load(path)
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	log.Println("Serving metrics on", addr)
	if err := http.ListenAndServe(addr, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Println("Metrics server stopped:", err)
	}
}

func hostname() string {
	h, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return h
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
