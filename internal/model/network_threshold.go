package model

import (
	"gorm.io/gorm"
)

// NetworkThreshold holds the minimum native balance an owner address must
// carry before an approval transaction is attempted on that network. The
// amount is a decimal string; amount math never touches floats.
type NetworkThreshold struct {
	gorm.Model
	NetworkID           uint   `gorm:"column:network_id;not null;uniqueIndex"`
	MinNativeForApprove string `gorm:"column:min_native_for_approve;type:varchar(255);not null"`
}

func (NetworkThreshold) TableName() string {
	return "network_thresholds"
}
