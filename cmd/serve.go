package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"treense/internal/config"
	"treense/internal/model"
	"treense/internal/server"
)

var serveCommand = &cobra.Command{
	Use:   "serve",
	Short: "Start treense server",
	Run: func(cmd *cobra.Command, args []string) {
		runServe()
	},
}

func runServe() {
	conf, err := config.InitConfig(configFile)
	if err != nil {
		logrus.Fatal("initConfig error, ", err.Error())
	}

	logrus.Infof("config: %+v", conf)

	ctx, cancelFunc := context.WithCancel(context.Background())

	openCtx, openCancel := context.WithTimeout(ctx, 30*time.Second)
	store, err := model.OpenStore(openCtx, conf.DB)
	openCancel()
	if err != nil {
		cancelFunc()
		logrus.Fatal("failed to open store, ", err.Error())
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			logrus.Errorf("close store: %v", err)
		}
	}()

	srv, err := server.NewServer(ctx, conf, store)
	if err != nil {
		logrus.Errorf("newServer error, %s", err.Error())
		cancelFunc()
		return
	}
	go srv.Start()

	termChan := make(chan os.Signal, 1)
	signal.Notify(termChan, syscall.SIGINT, syscall.SIGTERM)

	<-termChan
	logrus.Infof("server is shutting down...")
	srv.Shutdown()
	cancelFunc()
}
