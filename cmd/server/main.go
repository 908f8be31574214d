package main

import (
	"github.com/blues/cfe/internal/chain"
	"github.com/blues/cfe/internal/config"
	"github.com/blues/cfe/internal/database"
	"github.com/blues/cfe/internal/engine"
	"github.com/blues/cfe/internal/event"
	"github.com/blues/cfe/internal/handler"
	"github.com/blues/cfe/internal/logger"
	"github.com/blues/cfe/internal/platform"
	"github.com/blues/cfe/internal/router"
	"github.com/blues/cfe/internal/task"
	"github.com/gin-gonic/gin"
)

func main() {
	// 加载配置
	cfg := config.Load()

	// 初始化日志
	level := logger.ParseLogLevel(cfg.Log.Level)
	if cfg.Log.Output == "file" {
		l, err := logger.NewWithFileRotation(level, cfg.Log.File)
		if err != nil {
			logger.Fatal("Failed to initialize file logger: %v", err)
		}
		logger.SetDefaultLogger(l)
	} else {
		l, err := logger.New(level)
		if err != nil {
			logger.Fatal("Failed to initialize logger: %v", err)
		}
		logger.SetDefaultLogger(l)
	}
	defer logger.Sync()

	// 初始化数据库
	db, err := database.Init(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to initialize database: %v", err)
	}

	// 初始化资金转移器与入金校验：未配置RPC节点时使用开发模式
	var transferor engine.Transferor
	var verifier handler.DepositVerifier
	if cfg.Chain.RpcUrl != "" {
		client, err := chain.Init(cfg.Chain)
		if err != nil {
			logger.Fatal("Failed to initialize chain client: %v", err)
		}
		transferor, err = chain.NewEthTransferor(client)
		if err != nil {
			logger.Fatal("Failed to initialize transferor: %v", err)
		}
		verifier = client
		logger.Info("Chain transferor ready, rpc=%s", cfg.Chain.RpcUrl)
	} else {
		transferor = chain.DevTransferor{}
		logger.Warn("No RPC node configured, using dev transferor")
	}

	// 初始化事件分发器
	dispatcher, err := event.NewDispatcher(db, 8)
	if err != nil {
		logger.Fatal("Failed to initialize event dispatcher: %v", err)
	}
	defer dispatcher.Close()

	// 初始化引擎
	gate := platform.NewConfigGate(cfg.Platform)
	eng, err := engine.New(engine.Options{
		Transferor:      transferor,
		Gate:            gate,
		Sink:            dispatcher,
		FeeBps:          cfg.Platform.FeeBps,
		PlatformAccount: cfg.Platform.Account,
	})
	if err != nil {
		logger.Fatal("Failed to initialize engine: %v", err)
	}
	dispatcher.SetEngine(eng)

	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 初始化路由
	r := router.Setup(eng, db, verifier)

	// 启动定时任务
	manager := task.Start(eng, db, cfg)
	defer manager.Stop()

	// 启动服务器
	logger.Info("Server starting on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("Failed to start server: %v", err)
	}
}
