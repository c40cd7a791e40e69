// Публикует события смены статуса в kafka, имитируя производство и логистику.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"math/rand"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/SergeyBogomolovv/car-order-service/internal/entities"
	"github.com/SergeyBogomolovv/car-order-service/internal/handler"

	"github.com/segmentio/kafka-go"
)

var progression = []entities.OrderStatus{
	entities.StatusConfirmed,
	entities.StatusInProduction,
	entities.StatusReadyForDelivery,
	entities.StatusDelivered,
}

func main() {
	broker := flag.String("broker", "localhost:9092", "kafka broker")
	topic := flag.String("topic", "order-status-events", "status events topic")
	maxOrderID := flag.Int64("orders", 10, "order ids are picked from 1..orders")
	interval := flag.Duration("interval", 2*time.Second, "delay between events")
	flag.Parse()

	writer := &kafka.Writer{
		Addr:     kafka.TCP(*broker),
		Topic:    *topic,
		Balancer: &kafka.Hash{},
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// следующий шаг для каждого заказа
	next := make(map[int64]int)

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			orderID := rand.Int63n(*maxOrderID) + 1
			event := handler.StatusEvent{OrderID: orderID}

			// иногда заказ отменяют
			if rand.Intn(10) == 0 {
				event.Status = entities.StatusCancelled.String()
				event.Notes = "cancelled by plant"
			} else {
				step := next[orderID]
				if step >= len(progression) {
					continue
				}
				event.Status = progression[step].String()
				next[orderID] = step + 1
			}

			data, err := json.Marshal(event)
			if err != nil {
				log.Println("failed to marshal event:", err)
				continue
			}
			msg := kafka.Message{Key: []byte(strconv.FormatInt(orderID, 10)), Value: data}
			if err := writer.WriteMessages(ctx, msg); err != nil {
				log.Println("failed to write event:", err)
				continue
			}
			log.Println("status event sent", orderID, event.Status)
		case <-ctx.Done():
			return
		}
	}
}
