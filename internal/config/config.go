package config

import (
	"github.com/blues/cfe/internal/logger"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Chain    ChainConfig    `mapstructure:"chain"`
	Platform PlatformConfig `mapstructure:"platform"`
	Task     TaskConfig     `mapstructure:"task"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// ChainConfig 链上支付配置。RpcUrl为空时使用开发模式转账器，不上链。
type ChainConfig struct {
	RpcUrl        string `mapstructure:"rpc_url"`       // RPC节点URL
	ChainId       int64  `mapstructure:"chain_id"`      // 链ID
	PrivateKey    string `mapstructure:"private_key"`   // 托管账户私钥
	Confirmations int    `mapstructure:"confirmations"` // 入金确认数
}

// PlatformConfig 平台参数
type PlatformConfig struct {
	Owner   string `mapstructure:"owner"`   // 平台管理账户
	Account string `mapstructure:"account"` // 平台费接收账户
	FeeBps  int64  `mapstructure:"fee_bps"` // 平台费率，基点
	Paused  bool   `mapstructure:"paused"`  // 启动时是否暂停
}

type TaskConfig struct {
	SyncInterval   int `mapstructure:"sync_interval"`   // 快照同步间隔，秒
	ExpireInterval int `mapstructure:"expire_interval"` // 过期标记间隔，秒
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // 日志级别: debug, info, warn, error, fatal
	Output string `mapstructure:"output"` // 输出目标: stdout, file
	File   string `mapstructure:"file"`   // 日志文件路径（当output为file时使用）
}

func Load() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/cfe")

	// 设置默认值
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.user", "postgres")
	viper.SetDefault("database.password", "")
	viper.SetDefault("database.dbname", "crowdfunding")
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("chain.confirmations", 12)
	viper.SetDefault("platform.fee_bps", 250)
	viper.SetDefault("task.sync_interval", 60)
	viper.SetDefault("task.expire_interval", 300)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.output", "stdout")
	viper.SetDefault("log.file", "logs/app.log")

	// 自动读取环境变量
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logger.Warn("Warning: Could not read config file: %v", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		logger.Fatal("Unable to decode config into struct: %v", err)
	}

	return &config
}
