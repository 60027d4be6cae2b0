package auditlog

import (
	"context"
	"encoding/json"
	"log"

	"github.com/eventgate/ticketing-backend/config"
	"github.com/eventgate/ticketing-backend/utils"
)

// StartConsumer drains the audit topic and persists events. Runs in its own
// goroutine for the lifetime of the process.
func StartConsumer(cfg *config.Config, repo Repository) {
	if !utils.KafkaEnabled() {
		return
	}

	reader := utils.NewAuditReader(cfg)
	log.Println("🔄 Audit consumer started")

	go func() {
		defer reader.Close()
		for {
			msg, err := reader.ReadMessage(context.Background())
			if err != nil {
				log.Printf("❌ Audit consumer read error: %v", err)
				return
			}

			var entry AuditLog
			if err := json.Unmarshal(msg.Value, &entry); err != nil {
				log.Printf("⚠️ Dropping malformed audit event: %v", err)
				continue
			}
			entry.ID = 0 // let the DB assign

			if err := repo.Create(context.Background(), &entry); err != nil {
				log.Printf("❌ Failed to persist audit event %s: %v", entry.Action, err)
			}
		}
	}()
}
