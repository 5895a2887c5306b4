package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Drommedhar/novalist-sub000/internal/aggregate"
	"github.com/Drommedhar/novalist-sub000/internal/store"
	"github.com/Drommedhar/novalist-sub000/internal/vault"
)

const rebuildDebounce = 500 * time.Millisecond

func watchCmd() *cobra.Command {
	var save bool
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the project folders and rebuild the index on changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(save)
		},
	}
	cmd.Flags().BoolVar(&save, "save", false, "Persist the index to the configured store after each rebuild")
	return cmd
}

func runWatch(save bool) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()

	cfg, v, indexes, err := openProject()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var db store.Store
	if save {
		db, err = openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer db.Close(ctx)
		if err := db.EnsureSchema(ctx); err != nil {
			return err
		}
	}

	rebuild := func() {
		if err := indexes.Rebuild(); err != nil {
			logger.Warn("index rebuild failed; keeping previous index", zap.Error(err))
			return
		}
		idx := indexes.Current()
		logger.Info("index rebuilt", zap.Int("entities", idx.Len()))

		if db == nil {
			return
		}
		entries := make([]store.IndexEntry, 0, idx.Len())
		for _, entry := range idx.Entries() {
			entries = append(entries, store.IndexEntry{
				Name:     entry.Name,
				Path:     entry.Path,
				Category: string(entry.Category),
			})
		}
		if err := db.ReplaceEntries(ctx, entries); err != nil {
			logger.Warn("persisting index failed", zap.Error(err))
			return
		}
		if err := db.ReplacePropertyValues(ctx, aggregate.Values(v, idx.Entries())); err != nil {
			logger.Warn("persisting property values failed", zap.Error(err))
		}
	}
	rebuild()

	// Editors fire bursts of events per save; coalesce them into one
	// rebuild per quiet period.
	events := make(chan vault.Event, 64)
	go func() {
		timer := time.NewTimer(rebuildDebounce)
		if !timer.Stop() {
			<-timer.C
		}
		pending := false
		for {
			select {
			case <-ctx.Done():
				return
			case event := <-events:
				logger.Debug("change detected",
					zap.String("path", event.Path),
					zap.String("op", event.Op.String()))
				if pending && !timer.Stop() {
					<-timer.C
				}
				timer.Reset(rebuildDebounce)
				pending = true
			case <-timer.C:
				pending = false
				rebuild()
			}
		}
	}()

	logger.Info("watching project", zap.String("root", v.Root()))
	err = v.Watch(ctx, func(event vault.Event) {
		select {
		case events <- event:
		default:
			// A full channel means a rebuild is already due.
		}
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
