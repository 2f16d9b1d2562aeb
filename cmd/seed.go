package cmd

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"treense/internal/config"
	"treense/internal/model"
	"treense/pkg/str"
)

var seedCommand = &cobra.Command{
	Use:   "seed",
	Short: "Insert a test record to verify the database write path",
	Run: func(cmd *cobra.Command, args []string) {
		runSeed()
	},
}

func runSeed() {
	conf, err := config.InitConfig(configFile)
	if err != nil {
		logrus.Fatal("initConfig error, ", err.Error())
	}

	ctx, cancelFunc := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelFunc()

	store, err := model.OpenStore(ctx, conf.DB)
	if err != nil {
		logrus.Fatal("failed to open store, ", err.Error())
	}
	defer store.Close(context.Background())

	now := time.Now()
	rec := &model.Record{
		TreeId:       str.GenTreeId(now),
		ImageData:    "data:image/jpeg;base64,/9j/4AAQSkZJRgABAQEASABIAAD",
		HealthStatus: model.HealthStatusHealthy,
		Timestamp:    now,
		Predictions: []model.Prediction{
			{ClassName: model.HealthStatusHealthy, Probability: 0.95},
		},
	}
	if err := store.CreateRecord(ctx, rec); err != nil {
		logrus.Fatal("failed to insert test record, ", err.Error())
	}

	logrus.Infof("test record inserted with id %s", rec.Id.Hex())
}
