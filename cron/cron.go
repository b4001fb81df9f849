package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/agendaja/agenda-api/db"
	"github.com/agendaja/agenda-api/models"
	"github.com/agendaja/agenda-api/utils"
)

// StartCronJobs initializes and starts the cron scheduler for hiring reminders
func StartCronJobs() {
	c := cron.New()
	// Run every minute to check for hirings starting in the next hour
	_, err := c.AddFunc("* * * * *", sendHiringReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for hiring reminders")
}

// sendHiringReminders checks for upcoming hirings and sends reminders
func sendHiringReminders() {
	var hirings []models.Hiring
	now := time.Now()
	// Look for slots starting in the next hour
	startWindow := now.Add(55 * time.Minute)
	endWindow := now.Add(65 * time.Minute)

	err := db.DB.Preload("Client").Preload("Variation").Preload("Slot").
		Joins("JOIN schedule_slots ON schedule_slots.id = hirings.slot_id").
		Where("hirings.status = ? AND schedule_slots.start_time BETWEEN ? AND ?",
			models.StatusActive, startWindow, endWindow).
		Find(&hirings).Error
	if err != nil {
		log.Printf("Error fetching hirings for reminders: %v", err)
		return
	}

	for _, hiring := range hirings {
		if hiring.Client == nil || hiring.Variation == nil || hiring.Slot == nil {
			log.Printf("Skipping reminder for hiring %d: incomplete associations", hiring.ID)
			continue
		}
		if err := sendReminderEmail(&hiring); err != nil {
			log.Printf("Failed to send reminder for hiring %d: %v", hiring.ID, err)
			continue
		}
		log.Printf("Sent reminder for hiring %d to %s", hiring.ID, hiring.Client.Email)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(hiring *models.Hiring) error {
	subject := fmt.Sprintf("Lembrete: %s em uma hora", hiring.Variation.Name)
	body := fmt.Sprintf(`
		<p>Olá %s,</p>
		<p>Este é um lembrete do seu horário agendado para daqui a uma hora.</p>
		<p><strong>Detalhes:</strong></p>
		<ul>
			<li><strong>Serviço:</strong> %s</li>
			<li><strong>Início:</strong> %s</li>
			<li><strong>Fim:</strong> %s</li>
			<li><strong>Código:</strong> %s</li>
		</ul>
		<p>Se precisar cancelar, entre em contato o quanto antes.</p>
	`, hiring.Client.Name, hiring.Variation.Name,
		utils.ToBRT(hiring.Slot.StartTime).Format("02/01/2006 15:04"),
		utils.ToBRT(hiring.Slot.EndTime).Format("02/01/2006 15:04"),
		hiring.Code)

	return utils.SendEmail(hiring.Client.Email, subject, body)
}
