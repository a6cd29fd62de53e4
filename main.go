// @title Mythos 后端 API
// @version 1.0
// @description 神话故事内容库、社区与阅读进度服务。
// @host localhost:8080
// @BasePath /api

package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"mythos_backend/internal/app"
	"mythos_backend/internal/config"
	"mythos_backend/pkg/logger"
)

func main() {
	// 命令行参数
	configDir := flag.String("config", "configs", "配置文件 config.yaml 所在目录")
	envFile := flag.String("env", ".env", "启动前加载的环境变量文件")
	flag.Parse()

	// .env 不存在时忽略
	if err := godotenv.Load(*envFile); err != nil {
		log.Printf("No env file loaded from %s", *envFile)
	}

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Sync()

	application.Run()
}
