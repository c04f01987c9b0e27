package model

import (
	"gorm.io/gorm"
)

type Asset struct {
	gorm.Model
	NetworkID       uint   `gorm:"column:network_id;not null;uniqueIndex:idx_assets_network_contract;uniqueIndex:idx_assets_network_symbol"`
	ContractAddress string `gorm:"column:contract_address;type:varchar(255);not null;uniqueIndex:idx_assets_network_contract"`
	Symbol          string `gorm:"column:symbol;type:varchar(50);not null;uniqueIndex:idx_assets_network_symbol"`
	Decimals        int    `gorm:"column:decimals;not null"`
	IsActive        bool   `gorm:"column:is_active;not null;default:true"`
}

func (Asset) TableName() string {
	return "assets"
}
