package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/car-order-service/internal/config"
	"github.com/SergeyBogomolovv/car-order-service/internal/entities"
	"github.com/SergeyBogomolovv/car-order-service/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

type StatusChanger interface {
	ChangeStatus(ctx context.Context, change entities.StatusChange) error
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

const (
	retryInitialDelay = 500 * time.Millisecond
	retryMaxDelay     = 30 * time.Second
)

// kafkaHandler применяет события о смене статуса заказа, которые
// присылают производство и логистика.
type kafkaHandler struct {
	dlq      messageWriter
	reader   messageReader
	logger   *slog.Logger
	validate *validator.Validate
	changer  StatusChanger

	retry utils.RetryConfig
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, changer StatusChanger) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.StatusTopic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		dlq: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
		validate: validator.New(),
		changer:  changer,
		retry: utils.RetryConfig{
			InitialDelay: retryInitialDelay,
			MaxDelay:     retryMaxDelay,
			Multiplier:   2,
		},
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		// Коммит следующего сообщения сдвинет offset и за это, поэтому не пропускаем.
		if err := h.processUntilDone(ctx, m); err != nil {
			h.logger.Warn("consumer stopped before message was handled",
				slog.Int64("offset", m.Offset), slog.Any("error", err))
			return
		}

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

// processUntilDone retries process with backoff until it succeeds or ctx is done.
func (h *kafkaHandler) processUntilDone(ctx context.Context, m kafka.Message) error {
	delay := h.retry.InitialDelay
	for {
		err := h.process(ctx, m)
		if err == nil {
			return nil
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return errors.Join(err, ctx.Err())
		case <-timer.C:
		}

		delay = time.Duration(float64(delay) * h.retry.Multiplier)
		if h.retry.MaxDelay > 0 && delay > h.retry.MaxDelay {
			delay = h.retry.MaxDelay
		}
	}
}

// process applies one message and parks it in the DLQ when it cannot be
// applied. The returned error is set only when the DLQ write failed too.
func (h *kafkaHandler) process(ctx context.Context, m kafka.Message) error {
	eventsInProgress.Inc()
	defer eventsInProgress.Dec()
	start := time.Now()
	defer func() {
		eventProcessingDuration.Observe(time.Since(start).Seconds())
	}()

	err := h.handleStatusEvent(ctx, m)
	if err == nil {
		eventsProcessed.Inc()
		return nil
	}

	eventsFailed.WithLabelValues(strconv.Itoa(errorStatus(err))).Inc()
	h.logger.Error("failed to handle status event",
		slog.Any("error", err),
		slog.String("key", string(m.Key)),
		slog.Int64("offset", m.Offset),
	)

	// В библиотеке уже есть retry
	if err := h.WriteToDLQ(ctx, m); err != nil {
		h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
		return err
	}
	eventsDLQ.Inc()
	return nil
}

func (h *kafkaHandler) handleStatusEvent(ctx context.Context, m kafka.Message) error {
	var event StatusEvent
	if err := json.Unmarshal(m.Value, &event); err != nil {
		return fmt.Errorf("failed to unmarshal status event: %w", err)
	}

	if err := h.validate.Struct(event); err != nil {
		return fmt.Errorf("invalid status event: %w", err)
	}

	return h.changer.ChangeStatus(ctx, StatusEventToChange(event))
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	m.Topic = fmt.Sprintf("%s-dlq", m.Topic)
	return h.dlq.WriteMessages(ctx, m)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
