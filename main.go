package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/agendaja/agenda-api/cache"
	appcron "github.com/agendaja/agenda-api/cron"
	"github.com/agendaja/agenda-api/db"
	"github.com/agendaja/agenda-api/routes"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "migrate":
			db.Migrate()
			return
		case "seed":
			db.Seed()
			return
		}
	}

	app := fiber.New()
	db.Init()
	cache.Init()
	appcron.StartCronJobs()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(logger.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "API rodando 🚀"})
	})

	routes.SetupUserRoutes(app)
	routes.SetupServiceRoutes(app)
	routes.SetupHiringRoutes(app)
	routes.SetupScheduleRoutes(app)

	log.Fatal(app.Listen(":3000"))
}
