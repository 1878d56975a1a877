package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/op/go-logging"
	"github.com/spf13/cobra"

	"tickpanel/config"
	"tickpanel/database"
	"tickpanel/logger"
	"tickpanel/web"
	"tickpanel/web/service"
)

func runWebServer() {
	log.Printf("%v %v", config.GetName(), config.GetVersion())

	cfg := config.Load()

	switch cfg.LogLevel {
	case config.Debug:
		logger.InitLogger(logging.DEBUG)
	case config.Info:
		logger.InitLogger(logging.INFO)
	case config.Notice:
		logger.InitLogger(logging.NOTICE)
	case config.Warn:
		logger.InitLogger(logging.WARNING)
	case config.Error:
		logger.InitLogger(logging.ERROR)
	default:
		log.Fatal("unknown log level:", cfg.LogLevel)
	}
	defer logger.CloseLogger()

	err := database.InitDB(cfg.DBPath, cfg.Debug)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := database.CloseDB(); err != nil {
			logger.Warning("close db err:", err)
		}
	}()

	server := web.NewServer(cfg)
	err = server.Start()
	if err != nil {
		log.Println(err)
		return
	}

	sigCh := make(chan os.Signal, 1)
	// Trap shutdown signals
	signal.Notify(sigCh, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGINT)
	for {
		sig := <-sigCh

		switch sig {
		case syscall.SIGHUP:
			err := server.Stop()
			if err != nil {
				logger.Warning("stop server err:", err)
			}
			server = web.NewServer(cfg)
			err = server.Start()
			if err != nil {
				log.Println(err)
				return
			}
		default:
			if err := server.Stop(); err != nil {
				logger.Warning("stop server err:", err)
			}
			return
		}
	}
}

func createAdmin(username, email, password string) {
	cfg := config.Load()
	if err := database.InitDB(cfg.DBPath, cfg.Debug); err != nil {
		fmt.Println(err)
		return
	}
	defer database.CloseDB()

	authService := service.NewAuthService(cfg, service.NewSMTPMailService(cfg.SMTP))
	profile, err := authService.Register(username, email, password, "admin")
	if err != nil {
		fmt.Println("create admin failed:", err)
		return
	}
	fmt.Printf("created admin %s <%s>\n", profile.Username, profile.Email)
}

func main() {
	var rootCmd = &cobra.Command{
		Use: "tickpanel",
	}

	var runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run the web server",
		Run: func(cmd *cobra.Command, args []string) {
			runWebServer()
		},
	}

	var adminUsername, adminEmail, adminPassword string
	var createAdminCmd = &cobra.Command{
		Use:   "create-admin",
		Short: "Create an admin user",
		Run: func(cmd *cobra.Command, args []string) {
			createAdmin(adminUsername, adminEmail, adminPassword)
		},
	}
	createAdminCmd.Flags().StringVar(&adminUsername, "username", "", "admin username")
	createAdminCmd.Flags().StringVar(&adminEmail, "email", "", "admin email")
	createAdminCmd.Flags().StringVar(&adminPassword, "password", "", "admin password")

	rootCmd.AddCommand(runCmd, createAdminCmd)

	if len(os.Args) == 1 {
		runWebServer()
		return
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
