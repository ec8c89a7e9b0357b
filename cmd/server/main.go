package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/wingworks/catering-pricing-engine/internal/events/kafka"
	"github.com/wingworks/catering-pricing-engine/internal/interfaces"
	"github.com/wingworks/catering-pricing-engine/internal/models"
	"github.com/wingworks/catering-pricing-engine/internal/models/events"
	"github.com/wingworks/catering-pricing-engine/internal/pricing"
	"github.com/wingworks/catering-pricing-engine/internal/storage/memory"
	"github.com/wingworks/catering-pricing-engine/internal/storage/postgres"
)

func main() {
	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	var store interfaces.QuoteStore = memory.NewQuoteStore()
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		db, err := sql.Open("postgres", dsn)
		if err != nil {
			logger.Fatal("failed to open database", zap.Error(err))
		}
		store = postgres.NewQuoteStore(db)
		logger.Info("using postgres quote store")
	}

	eventTopic := os.Getenv("KAFKA_TOPIC")
	if eventTopic == "" {
		eventTopic = "quote_calculated"
	}
	var publisher interfaces.EventPublisher
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		publisher = kafka.NewPublisher(strings.Split(brokers, ","), eventTopic)
		logger.Info("publishing quote events to kafka", zap.String("topic", eventTopic))
	}

	aggregator := pricing.NewAggregator(pricing.WithLogger(logger))

	// Every computed quote is persisted for audit and fanned out to the
	// broker. Neither failure aborts the calculation the customer sees.
	aggregator.Subscribe(pricing.TopicUpdated, func(ledger *models.Ledger) {
		record, err := buildQuoteRecord(ledger)
		if err != nil {
			logger.Error("failed to build quote record", zap.Error(err))
			return
		}
		if err := store.SaveQuote(context.Background(), record); err != nil {
			logger.Error("failed to save quote record", zap.Error(err))
		}
		if publisher == nil {
			return
		}
		event := events.QuoteCalculated{
			QuoteID:       record.ID,
			PackageID:     record.PackageID,
			PackageName:   record.PackageName,
			GuestCount:    record.GuestCount,
			Subtotal:      record.Subtotal,
			Tax:           record.Tax,
			Total:         record.Total,
			PerPersonCost: record.PerPersonCost,
			Complete:      pricing.Complete(ledger),
			OccurredAt:    record.CreatedAt,
		}
		if err := publisher.Publish(eventTopic, event); err != nil {
			logger.Error("failed to publish quote event", zap.Error(err))
		}
	})

	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	http.HandleFunc("/quotes", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			var snapshot models.Snapshot
			if err := json.NewDecoder(r.Body).Decode(&snapshot); err != nil {
				http.Error(w, "invalid request body", http.StatusBadRequest)
				return
			}

			ledger, err := aggregator.CalculateQuote(snapshot)
			if err != nil {
				// Contract violation in the submitted configuration. Keep the
				// response generic; details go to the log only.
				logger.Warn("could not price order", zap.Error(err))
				http.Error(w, "could not price this order", http.StatusUnprocessableEntity)
				return
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(ledger)

		case http.MethodGet:
			var (
				records []models.QuoteRecord
				err     error
			)
			if packageID := r.URL.Query().Get("package_id"); packageID != "" {
				records, err = store.GetQuotesByPackage(packageID)
			} else {
				records, err = store.GetQuotes()
			}
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(records)

		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	http.HandleFunc("/quotes/current", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		current := aggregator.Current()
		if current == nil {
			http.Error(w, "no quote calculated yet", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(current)
	})

	http.HandleFunc("/summary", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		summary, ok := aggregator.Summary()
		if !ok {
			http.Error(w, "no quote calculated yet", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(summary)
	})

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	log.Printf("Starting server on %s", addr)
	log.Fatal(http.ListenAndServe(addr, nil))
}

func buildQuoteRecord(ledger *models.Ledger) (models.QuoteRecord, error) {
	raw, err := json.Marshal(ledger)
	if err != nil {
		return models.QuoteRecord{}, err
	}
	return models.QuoteRecord{
		ID:            uuid.New().String(),
		PackageID:     ledger.Meta.PackageID,
		PackageName:   ledger.Meta.PackageName,
		GuestCount:    ledger.Meta.GuestCount,
		Subtotal:      ledger.Totals.Subtotal,
		Tax:           ledger.Totals.Tax,
		Total:         ledger.Totals.Total,
		PerPersonCost: ledger.Totals.PerPersonCost,
		CapExceeded:   ledger.Meta.CapExceeded,
		Ledger:        raw,
		CreatedAt:     time.Now().UTC(),
	}, nil
}
