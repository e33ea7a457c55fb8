package controllers

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/LarzzCode/LarGarage/board"
	"github.com/LarzzCode/LarGarage/config"
	"github.com/LarzzCode/LarGarage/models"
	"github.com/LarzzCode/LarGarage/realtime"
	"github.com/LarzzCode/LarGarage/repository"
	"github.com/LarzzCode/LarGarage/services"
	"github.com/LarzzCode/LarGarage/utils"
)

// Workshop mengumpulkan dependency yang dipakai bersama oleh semua controller
type Workshop struct {
	DB        *gorm.DB
	Services  *repository.ServiceRepository
	Inventory *repository.InventoryRepository
	Settings  *repository.SettingsRepository
	Users     *repository.UserRepository
	Board     *board.Board
	Hub       *realtime.Hub
	Config    config.Config
	Now       func() time.Time
}

func NewWorkshop(db *gorm.DB, hub *realtime.Hub, cfg config.Config) *Workshop {
	w := &Workshop{
		DB:        db,
		Services:  repository.NewServiceRepository(db),
		Inventory: repository.NewInventoryRepository(db),
		Settings:  repository.NewSettingsRepository(db),
		Users:     repository.NewUserRepository(db),
		Hub:       hub,
		Config:    cfg,
		Now:       time.Now,
	}
	w.Board = board.New(w.Services,
		board.WithRollback(cfg.BoardRollbackOnFailure),
		board.WithAlerter(board.AlertFunc(func(_ context.Context, serviceID uint, message string) {
			utils.ErrorLogger.Printf("Board move failed for service %d: %s", serviceID, message)
			hub.BroadcastAlert(serviceID, message)
		})),
		board.WithOnStatusChange(func(ctx context.Context, s models.Service) {
			utils.InfoLogger.Printf("Service %d moved to %s", s.ID, s.Status)
			if err := w.RefreshBoard(ctx); err != nil {
				utils.ErrorLogger.Printf("Error refreshing board: %v", err)
			}
		}),
	)
	return w
}

// RefreshBoard reloads the board from storage and pushes it to websocket clients.
func (w *Workshop) RefreshBoard(ctx context.Context) error {
	list, err := w.Services.List(ctx)
	if err != nil {
		return err
	}
	w.Board.Load(list)
	w.Hub.BroadcastBoardUpdate(w.Board.Columns())
	return nil
}

// StartSync polls the services and inventory tables for changes written
// outside this process and pushes them to the board and websocket clients.
func (w *Workshop) StartSync(ctx context.Context) (*services.ChangeMonitor, error) {
	monitor := services.NewChangeMonitor(w.DB, w.Config.SyncInterval)
	err := monitor.Watch(ctx, "services", func(ctx context.Context) {
		if err := w.RefreshBoard(ctx); err != nil {
			utils.ErrorLogger.Printf("Error refreshing board: %v", err)
		}
	})
	if err != nil {
		return nil, err
	}
	err = monitor.Watch(ctx, models.InventoryItem{}.TableName(), func(context.Context) {
		w.Hub.BroadcastInventoryUpdate(map[string]bool{"reload": true})
	})
	if err != nil {
		return nil, err
	}
	monitor.Start()
	return monitor, nil
}
