package model

import (
	"gorm.io/gorm"
)

type Network struct {
	gorm.Model
	Name          string `gorm:"column:name;type:varchar(255);not null"`
	ChainID       int64  `gorm:"column:chain_id;not null;uniqueIndex"`
	RPCEndpoint   string `gorm:"column:rpc_endpoint;type:varchar(255);not null"`
	Confirmations uint64 `gorm:"column:confirmations;not null;default:1"`
	IsActive      bool   `gorm:"column:is_active;not null;default:true"`
}

func (Network) TableName() string {
	return "networks"
}
