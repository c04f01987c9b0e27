package main

import (
	"github.com/dwarvesf/payout-backend/internal/server"
)

func main() {
	server.Init()
}
