package cron

import (
	"context"
	"log"

	"assemblr/config"
	providerRepo "assemblr/database/repository/provider"
	"assemblr/services/review"
	"assemblr/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeRatingReconcile = "rating:reconcile"

// InitRatingWorker starts the background worker and scheduler that re-run the
// rating recomputation for every provider on a cron schedule. The recompute
// is a full re-read and is idempotent, so the job is a pure safety net: it
// repairs any aggregate a failed synchronous recompute left stale.
func InitRatingWorker(reviewSvc review.ReviewService, providers providerRepo.ProviderRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(redisOpts, asynq.Config{
		Concurrency: 2,
		Queues: map[string]int{
			"default": 1,
		},
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeRatingReconcile, handleRatingReconcile(reviewSvc, providers))

	go func() {
		if err := srv.Run(mux); err != nil {
			log.Fatalf("rating worker failed to start: %v", err)
		}
	}()

	scheduler := asynq.NewScheduler(redisOpts, nil)
	if _, err := scheduler.Register(config.AppConfig.RatingReconcileSpec, asynq.NewTask(TypeRatingReconcile, nil)); err != nil {
		log.Fatalf("failed to register rating reconcile schedule: %v", err)
	}
	go func() {
		if err := scheduler.Run(); err != nil {
			log.Fatalf("rating scheduler failed to start: %v", err)
		}
	}()
}

func handleRatingReconcile(reviewSvc review.ReviewService, providers providerRepo.ProviderRepository) asynq.HandlerFunc {
	return func(ctx context.Context, _ *asynq.Task) error {
		logger := utils.GetLogger()

		all, err := providers.List(ctx)
		if err != nil {
			logger.Error("rating reconcile: failed to list providers", zap.Error(err))
			return err
		}

		var failed int
		for i := range all {
			if _, err := reviewSvc.RecomputeAverage(ctx, all[i].ID); err != nil {
				logger.Warn("rating reconcile: recompute failed",
					zap.String("providerID", all[i].ID), zap.Error(err))
				failed++
			}
		}
		logger.Info("rating reconcile finished",
			zap.Int("providers", len(all)), zap.Int("failed", failed))
		return nil
	}
}
