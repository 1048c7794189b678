package main

import (
	"github.com/billkhata/billkhata/internal/clock"
	"github.com/billkhata/billkhata/internal/config"
	"github.com/billkhata/billkhata/internal/logger"
	"github.com/billkhata/billkhata/internal/migration"
	"github.com/billkhata/billkhata/internal/server"
	"github.com/billkhata/billkhata/pkg/db"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		logger.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		migration.Module,

		// HTTP surface plus the domain modules it pulls in
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
