package journal

import (
	"time"

	"update-reconciler/core/reconcile"

	"github.com/google/uuid"
)

// Entry is one recorded driver outcome.
type Entry struct {
	ID            string    `gorm:"primaryKey;column:id;type:char(36)" json:"id"`
	Outcome       string    `gorm:"column:outcome;type:varchar(16);index" json:"outcome"`
	SectionChange int       `gorm:"column:section_change" json:"section_change"`
	SectionOps    int       `gorm:"column:section_ops" json:"section_ops"`
	ItemOps       int       `gorm:"column:item_ops" json:"item_ops"`
	Error         string    `gorm:"column:error;type:text" json:"error,omitempty"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Entry) TableName() string {
	return "reconcile_journal"
}

// NewEntry summarizes rec.
func NewEntry(rec reconcile.Record) Entry {
	b := rec.Batch
	entry := Entry{
		ID:            uuid.NewString(),
		Outcome:       string(rec.Outcome),
		SectionChange: b.SectionChange(),
		SectionOps:    b.ReloadSections.Len() + b.DeleteSections.Len() + b.InsertSections.Len(),
		ItemOps:       len(b.ReloadItems) + len(b.DeleteItems) + len(b.InsertItems),
	}
	if rec.Err != nil {
		entry.Error = rec.Err.Error()
	}
	return entry
}
