package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/chairman-shop/chairman/internal/audit"
	"github.com/chairman-shop/chairman/internal/auth"
	"github.com/chairman-shop/chairman/internal/config"
	dbpkg "github.com/chairman-shop/chairman/internal/db"
	"github.com/chairman-shop/chairman/internal/infra/repository"
	"github.com/chairman-shop/chairman/internal/logging"
	appointmentuc "github.com/chairman-shop/chairman/internal/usecase/appointment"
	clientuc "github.com/chairman-shop/chairman/internal/usecase/client"
	serviceuc "github.com/chairman-shop/chairman/internal/usecase/service"
)

// Thin command-line glue standing in for the desktop front end. The
// real presentation layer calls the same use cases synchronously.

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	if _, err := logging.Setup(cfg.LogLevel, cfg.LogFile); err != nil {
		fmt.Fprintln(os.Stderr, "logging:", err)
		os.Exit(1)
	}

	db, err := dbpkg.Open(cfg.DBPath)
	if err != nil {
		slog.Error("database open failed", slog.Any("err", err), slog.String("path", cfg.DBPath))
		os.Exit(1)
	}

	dispatcher := audit.NewDispatcher(audit.New(db))

	app := &app{
		cfg:      cfg,
		auth:     auth.NewService(db, dispatcher),
		clients:  clientuc.NewRegistry(repository.NewClientGormRepository(db), dispatcher, cfg.Rules),
		services: serviceuc.NewCatalog(repository.NewServiceGormRepository(db), dispatcher, cfg.Rules),
	}

	schedRepo := repository.NewScheduleGormRepository(db)
	app.book = appointmentuc.NewBookAppointment(schedRepo, dispatcher, cfg)
	app.reschedule = appointmentuc.NewRescheduleAppointment(schedRepo, dispatcher, cfg)
	app.cancel = appointmentuc.NewCancelAppointment(schedRepo, dispatcher)
	app.complete = appointmentuc.NewCompleteAppointment(schedRepo, dispatcher)
	app.noShow = appointmentuc.NewMarkNoShow(schedRepo, dispatcher)
	app.paid = appointmentuc.NewTogglePaid(schedRepo, dispatcher)
	app.day = appointmentuc.NewListForDate(schedRepo)
	app.slots = appointmentuc.NewListOpenSlots(schedRepo, cfg.Schedule)

	if err := app.run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

type app struct {
	cfg        *config.Config
	auth       *auth.Service
	clients    *clientuc.Registry
	services   *serviceuc.Catalog
	book       *appointmentuc.BookAppointment
	reschedule *appointmentuc.RescheduleAppointment
	cancel     *appointmentuc.CancelAppointment
	complete   *appointmentuc.CompleteAppointment
	noShow     *appointmentuc.MarkNoShow
	paid       *appointmentuc.TogglePaid
	day        *appointmentuc.ListForDate
	slots      *appointmentuc.ListOpenSlots
}

func (a *app) run(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: chairman <register|login|clients|add-client|services|add-service|book|reschedule|cancel|complete|no-show|paid|day|slots> [flags]")
	}

	ctx := context.Background()

	switch args[0] {
	case "register":
		return a.runRegister(ctx, args[1:])
	case "login":
		return a.runLogin(ctx, args[1:])
	case "clients":
		return a.runClients(ctx)
	case "add-client":
		return a.runAddClient(ctx, args[1:])
	case "services":
		return a.runServices(ctx)
	case "add-service":
		return a.runAddService(ctx, args[1:])
	case "book":
		return a.runBook(ctx, args[1:])
	case "reschedule":
		return a.runReschedule(ctx, args[1:])
	case "cancel":
		return a.runCancel(ctx, args[1:])
	case "complete":
		return a.runComplete(ctx, args[1:])
	case "no-show":
		return a.runNoShow(ctx, args[1:])
	case "paid":
		return a.runPaid(ctx, args[1:])
	case "day":
		return a.runDay(ctx, args[1:])
	case "slots":
		return a.runSlots(ctx, args[1:])
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func (a *app) runRegister(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	name := fs.String("name", "", "operator name")
	email := fs.String("email", "", "email")
	password := fs.String("password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := a.auth.Register(ctx, *name, *email, *password)
	if err != nil {
		return err
	}

	fmt.Printf("registered operator %d: %s\n", user.ID, user.Email)
	return nil
}

func (a *app) runLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "email")
	password := fs.String("password", "", "password")
	remember := fs.Bool("remember", false, "issue a device token")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := a.auth.Authenticate(ctx, *email, *password)
	if err != nil {
		return err
	}
	fmt.Printf("welcome, %s\n", user.Name)

	if *remember {
		token, err := a.auth.RememberDevice(ctx, user.ID)
		if err != nil {
			return err
		}
		fmt.Printf("device token: %s\n", token)
	}
	return nil
}

func (a *app) runClients(ctx context.Context) error {
	clients, err := a.clients.List(ctx)
	if err != nil {
		return err
	}
	for _, c := range clients {
		fmt.Printf("%4d  %-30s %-16s no-shows=%d\n", c.ID, c.Name, c.Phone, c.NoShowCount)
	}
	return nil
}

func (a *app) runAddClient(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add-client", flag.ContinueOnError)
	name := fs.String("name", "", "client name")
	phone := fs.String("phone", "", "phone number")
	notes := fs.String("notes", "", "client notes")
	if err := fs.Parse(args); err != nil {
		return err
	}

	c, err := a.clients.Create(ctx, clientuc.CreateInput{
		Name:  *name,
		Phone: *phone,
		Notes: *notes,
	})
	if err != nil {
		return err
	}

	fmt.Printf("created client %d: %s\n", c.ID, c.Name)
	return nil
}

func (a *app) runServices(ctx context.Context) error {
	services, err := a.services.List(ctx)
	if err != nil {
		return err
	}
	for _, s := range services {
		fmt.Printf("%4d  %-30s $%7.2f  %3dmin +%dmin buffer\n",
			s.ID, s.Name, s.Price, s.DurationMin, s.BufferMin)
	}
	return nil
}

func (a *app) runAddService(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add-service", flag.ContinueOnError)
	name := fs.String("name", "", "service name")
	price := fs.Float64("price", 0, "price")
	duration := fs.Int("duration", 0, "duration in minutes")
	buffer := fs.Int("buffer", -1, "buffer in minutes (-1 uses the configured default)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *buffer < 0 {
		*buffer = a.cfg.Schedule.DefaultBufferMinutes
	}

	s, err := a.services.Create(ctx, serviceuc.CreateInput{
		Name:        *name,
		Price:       *price,
		DurationMin: *duration,
		BufferMin:   *buffer,
	})
	if err != nil {
		return err
	}

	fmt.Printf("created service %d: %s (%dmin +%dmin buffer)\n", s.ID, s.Name, s.DurationMin, s.BufferMin)
	return nil
}

func (a *app) runBook(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("book", flag.ContinueOnError)
	clientID := fs.Uint("client", 0, "client id")
	serviceID := fs.Uint("service", 0, "service id")
	at := fs.String("at", "", "start time, 2006-01-02 15:04")
	notes := fs.String("notes", "", "appointment notes")
	if err := fs.Parse(args); err != nil {
		return err
	}

	start, err := time.ParseInLocation("2006-01-02 15:04", *at, time.Local)
	if err != nil {
		return fmt.Errorf("invalid -at value: %w", err)
	}

	ap, err := a.book.Execute(ctx, appointmentuc.BookInput{
		ClientID:  uint(*clientID),
		ServiceID: uint(*serviceID),
		StartTime: start,
		Notes:     *notes,
	})
	if err != nil {
		return err
	}

	fmt.Printf("booked appointment %d: %s - %s\n",
		ap.ID,
		ap.StartTime.Format("15:04"),
		ap.EndTime.Format("15:04"))
	return nil
}

func (a *app) runReschedule(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("reschedule", flag.ContinueOnError)
	id := fs.Uint("id", 0, "appointment id")
	at := fs.String("at", "", "new start time, 2006-01-02 15:04")
	if err := fs.Parse(args); err != nil {
		return err
	}

	start, err := time.ParseInLocation("2006-01-02 15:04", *at, time.Local)
	if err != nil {
		return fmt.Errorf("invalid -at value: %w", err)
	}

	ap, err := a.reschedule.Execute(ctx, uint(*id), start)
	if err != nil {
		return err
	}

	fmt.Printf("moved appointment %d to %s - %s\n",
		ap.ID,
		ap.StartTime.Format("2006-01-02 15:04"),
		ap.EndTime.Format("15:04"))
	return nil
}

func (a *app) runCancel(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("cancel", flag.ContinueOnError)
	id := fs.Uint("id", 0, "appointment id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if _, err := a.cancel.Execute(ctx, uint(*id)); err != nil {
		return err
	}
	fmt.Printf("cancelled appointment %d\n", *id)
	return nil
}

func (a *app) runComplete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("complete", flag.ContinueOnError)
	id := fs.Uint("id", 0, "appointment id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if _, err := a.complete.Execute(ctx, uint(*id)); err != nil {
		return err
	}
	fmt.Printf("completed appointment %d\n", *id)
	return nil
}

func (a *app) runNoShow(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("no-show", flag.ContinueOnError)
	id := fs.Uint("id", 0, "appointment id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if _, err := a.noShow.Execute(ctx, uint(*id)); err != nil {
		return err
	}
	fmt.Printf("marked appointment %d as no-show\n", *id)
	return nil
}

func (a *app) runPaid(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("paid", flag.ContinueOnError)
	id := fs.Uint("id", 0, "appointment id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ap, err := a.paid.Execute(ctx, uint(*id))
	if err != nil {
		return err
	}
	fmt.Printf("appointment %d paid=%v\n", ap.ID, ap.Paid)
	return nil
}

func (a *app) runDay(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("day", flag.ContinueOnError)
	date := fs.String("date", time.Now().Format("2006-01-02"), "date, 2006-01-02")
	if err := fs.Parse(args); err != nil {
		return err
	}

	day, err := time.ParseInLocation("2006-01-02", *date, time.Local)
	if err != nil {
		return fmt.Errorf("invalid -date value: %w", err)
	}

	appointments, err := a.day.Execute(ctx, day)
	if err != nil {
		return err
	}

	for _, ap := range appointments {
		fmt.Printf("%s-%s  %-10s %-25s %-20s $%.2f\n",
			ap.StartTime.Format("15:04"),
			ap.EndTime.Format("15:04"),
			ap.Status,
			ap.ClientName,
			ap.ServiceName,
			ap.ServicePrice)
	}
	return nil
}

func (a *app) runSlots(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("slots", flag.ContinueOnError)
	date := fs.String("date", time.Now().Format("2006-01-02"), "date, 2006-01-02")
	serviceID := fs.Uint("service", 0, "service id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	day, err := time.ParseInLocation("2006-01-02", *date, time.Local)
	if err != nil {
		return fmt.Errorf("invalid -date value: %w", err)
	}

	slots, err := a.slots.Execute(ctx, day, uint(*serviceID))
	if err != nil {
		return err
	}

	for _, s := range slots {
		fmt.Printf("%s - %s\n", s.Start, s.End)
	}
	return nil
}
