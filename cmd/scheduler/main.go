package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"

	"github.com/MohammadDaleen/HomeEase/internal/config"
	"github.com/MohammadDaleen/HomeEase/internal/repository"
	"github.com/MohammadDaleen/HomeEase/internal/service"
)

func main() {
	log.Println("Starting payments scheduler...")

	// Load .env if present, then configuration
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	paymentRepo := repository.NewPaymentRepository(db)
	userRepo := repository.NewUserRepository(db)
	paymentService := service.NewPaymentService(paymentRepo, userRepo)

	// Initialize cron scheduler
	c := cron.New(cron.WithSeconds())

	// Schedule tasks
	setupCronJobs(c, cfg, paymentService)

	// Start the scheduler
	c.Start()
	log.Println("Scheduler started successfully")

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down scheduler...")
	c.Stop()
	log.Println("Scheduler stopped")
}

func setupCronJobs(c *cron.Cron, cfg *config.Config, paymentService *service.PaymentService) {
	// Daily job to mark stale pending payments overdue
	_, err := c.AddFunc(cfg.Scheduler.OverdueCron, func() {
		sweepOverduePayments(cfg, paymentService)
	})
	if err != nil {
		log.Printf("Error scheduling overdue payment sweep job: %v", err)
	}

	// Weekly job to log a pending-payment reminder summary
	_, err = c.AddFunc(cfg.Scheduler.ReminderCron, func() {
		logPendingReminders(paymentService)
	})
	if err != nil {
		log.Printf("Error scheduling payment reminder job: %v", err)
	}

	log.Println("Cron jobs scheduled successfully")
}

func sweepOverduePayments(cfg *config.Config, paymentService *service.PaymentService) {
	log.Println("Running daily overdue payment sweep...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cutoff := cfg.GetOverdueCutoff(time.Now())
	count, err := paymentService.SweepOverdue(ctx, cutoff)
	if err != nil {
		log.Printf("Overdue sweep failed: %v", err)
		return
	}

	log.Printf("Marked %d pending payments overdue (older than %s)", count, cutoff.Format("2006-01-02"))
}

func logPendingReminders(paymentService *service.PaymentService) {
	log.Println("Running weekly payment reminder summary...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	reminders, err := paymentService.PendingReminders(ctx)
	if err != nil {
		log.Printf("Reminder summary failed: %v", err)
		return
	}

	for _, reminder := range reminders {
		log.Printf("Payer %s has %d pending payments", reminder.PayerID, reminder.Count)
	}
}
