package db

import (
	"fmt"
	"log"
	"time"

	"github.com/agendaja/agenda-api/models"
)

// Seed loads the demo dataset: one provider with a manicure service and two
// variations, one client, and a week of open morning slots.
func Seed() {
	Init()

	provider := models.User{
		Name:         "Maria das Dores",
		Email:        "maria@teste.com",
		PasswordHash: "123",
		Role:         models.RoleProvider,
		Services: []models.Service{
			{
				Category:    "Manicure",
				Name:        "Serviço de manicure excelente",
				Description: "Profissional com 20 anos de experiência",
				Variations: []models.Variation{
					{Name: "Pé", Price: 20.0, DurationMin: 30},
					{Name: "Mão com pintura", Price: 35.0, DurationMin: 60},
				},
			},
		},
	}
	if err := DB.Create(&provider).Error; err != nil {
		log.Fatal("Failed to seed provider: ", err)
	}

	client := models.User{
		Name:         "João Cliente",
		Email:        "joao@teste.com",
		PasswordHash: "456",
		Role:         models.RoleClient,
	}
	if err := DB.Create(&client).Error; err != nil {
		log.Fatal("Failed to seed client: ", err)
	}

	// Open one-hour slots at 9:00 for the next seven days
	start := time.Now().Truncate(24 * time.Hour).Add(33 * time.Hour)
	for i := 0; i < 7; i++ {
		slot := models.ScheduleSlot{
			StartTime: start.AddDate(0, 0, i),
			EndTime:   start.AddDate(0, 0, i).Add(time.Hour),
			Available: true,
		}
		if err := DB.Create(&slot).Error; err != nil {
			log.Fatal("Failed to seed schedule slot: ", err)
		}
	}

	fmt.Println("✅ Seed concluído")
}
