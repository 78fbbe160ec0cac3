package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/vaiicko/cafe-web/config"
	"github.com/vaiicko/cafe-web/database"
	"github.com/vaiicko/cafe-web/logger"
	"github.com/vaiicko/cafe-web/web"
	"github.com/vaiicko/cafe-web/web/service"

	"github.com/joho/godotenv"
	"github.com/op/go-logging"
	"github.com/spf13/cobra"
)

func runWebServer() {
	log.Printf("%v %v", config.GetName(), config.GetVersion())

	switch config.GetLogLevel() {
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
		log.Fatal("unknown log level:", config.GetLogLevel())
	}

	if err := database.InitDB(config.GetDBPath()); err != nil {
		log.Fatal(err)
	}

	server := web.NewServer()
	if err := server.Start(); err != nil {
		log.Println(err)
		return
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	if err := server.Stop(); err != nil {
		logger.Warning("stop server failed:", err)
	}
	if err := database.CloseDB(); err != nil {
		logger.Warning("close database failed:", err)
	}
	logger.CloseLogger()
}

func resetAdminPassword(password string) error {
	if err := database.InitDB(config.GetDBPath()); err != nil {
		return err
	}
	defer database.CloseDB()

	userService := service.UserService{}
	if err := userService.ResetAdminPassword(password); err != nil {
		return err
	}
	fmt.Println("administrator password updated")
	return nil
}

func main() {
	_ = godotenv.Load()

	var password string

	rootCmd := &cobra.Command{
		Use:   config.GetName(),
		Short: "café website server",
		Run: func(cmd *cobra.Command, args []string) {
			runWebServer()
		},
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "start the web server",
		Run: func(cmd *cobra.Command, args []string) {
			runWebServer()
		},
	}

	adminCmd := &cobra.Command{
		Use:   "admin",
		Short: "reset the administrator password",
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				return fmt.Errorf("missing --password")
			}
			return resetAdminPassword(password)
		},
	}
	adminCmd.Flags().StringVar(&password, "password", "", "new administrator password")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(config.GetVersion())
		},
	}

	rootCmd.AddCommand(runCmd, adminCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
