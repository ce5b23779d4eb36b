package main

import (
	"log"

	"Garage/CronJobs"
	"Garage/FiberConfig"
	"Garage/Models"
	"Garage/Notifications"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	Models.Connect()

	go func() {
		if err := Notifications.InitFirebase(); err != nil {
			log.Println("Failed to initialize Firebase:", err)
		}
	}()

	sweeper := CronJobs.NewStockSweeper(false)
	if err := sweeper.Start(); err != nil {
		log.Println("Failed to start low-stock sweeper:", err)
	}
	defer sweeper.Stop()

	FiberConfig.FiberConfig()
}
