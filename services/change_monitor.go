package services

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/LarzzCode/LarGarage/utils"
)

// ChangeMonitor mendeteksi perubahan tabel yang tidak lewat API ini
// (import dari CLI, instance lain) dengan membandingkan jumlah baris dan
// updated_at terakhir, lalu memanggil callback tabel tersebut.
type ChangeMonitor struct {
	DB       *gorm.DB
	Interval time.Duration

	mu       sync.Mutex
	watches  []*tableWatch
	stopChan chan struct{}
	done     chan struct{}
}

type tableWatch struct {
	table    string
	onChange func(ctx context.Context)
	last     string
}

func NewChangeMonitor(db *gorm.DB, interval time.Duration) *ChangeMonitor {
	return &ChangeMonitor{DB: db, Interval: interval}
}

// Watch registers fn for changes to table. The current state becomes the baseline.
func (cm *ChangeMonitor) Watch(ctx context.Context, table string, fn func(ctx context.Context)) error {
	fp, err := cm.fingerprint(ctx, table)
	if err != nil {
		return err
	}
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.watches = append(cm.watches, &tableWatch{table: table, onChange: fn, last: fp})
	return nil
}

func (cm *ChangeMonitor) Start() {
	if cm.Interval <= 0 {
		return
	}
	cm.stopChan = make(chan struct{})
	cm.done = make(chan struct{})

	go func() {
		defer close(cm.done)
		ticker := time.NewTicker(cm.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				cm.CheckChanges(context.Background())
			case <-cm.stopChan:
				return
			}
		}
	}()
}

func (cm *ChangeMonitor) Stop() {
	if cm.stopChan == nil {
		return
	}
	close(cm.stopChan)
	<-cm.done
	cm.stopChan = nil
}

// CheckChanges runs one polling round and returns the tables that changed.
func (cm *ChangeMonitor) CheckChanges(ctx context.Context) []string {
	cm.mu.Lock()
	watches := append([]*tableWatch(nil), cm.watches...)
	cm.mu.Unlock()

	var changed []string
	for _, w := range watches {
		fp, err := cm.fingerprint(ctx, w.table)
		if err != nil {
			utils.ErrorLogger.Printf("Error checking changes on %s: %v", w.table, err)
			continue
		}

		cm.mu.Lock()
		dirty := fp != w.last
		w.last = fp
		cm.mu.Unlock()

		if dirty {
			utils.InfoLogger.Printf("Detected external change on %s", w.table)
			changed = append(changed, w.table)
			w.onChange(ctx)
		}
	}
	return changed
}

func (cm *ChangeMonitor) fingerprint(ctx context.Context, table string) (string, error) {
	var row struct {
		Total   int64
		Updated sql.NullString
	}
	err := cm.DB.WithContext(ctx).Table(table).
		Select("COUNT(*) AS total, CAST(MAX(updated_at) AS CHAR(64)) AS updated").
		Scan(&row).Error
	if err != nil {
		return "", fmt.Errorf("fingerprint %s: %w", table, err)
	}
	return fmt.Sprintf("%d|%s", row.Total, row.Updated.String), nil
}
