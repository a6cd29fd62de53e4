// 手动校验种子数据脚本
//
// 加载 fixtures 文件并写入一个空的内容库，打印每个集合的记录数。
// 修改 fixtures.yaml 后、部署前运行一次即可。
//
// 用法: go run scripts/check_fixtures.go -file internal/repository/fixtures/fixtures.yaml

package main

import (
	"flag"
	"log"
	"sort"

	"go.uber.org/zap"

	"mythos_backend/internal/config"
	"mythos_backend/internal/repository"
	"mythos_backend/pkg/logger"
)

func main() {
	configDir := flag.String("config", "configs", "配置文件目录")
	file := flag.String("file", "", "fixtures 文件路径，留空时校验内置数据")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}
	cfg.Log.File = ""
	logger.InitLogger(cfg)
	defer logger.Sync()

	var fx *repository.Fixtures
	if *file == "" {
		fx, err = repository.DefaultFixtures()
	} else {
		fx, err = repository.LoadFixtures(*file)
	}
	if err != nil {
		logger.Log.Fatal("解析 fixtures 失败", zap.Error(err))
	}

	store := repository.NewContentStore()
	store.Seed(fx)

	stats := store.Stats()
	names := make([]string, 0, len(stats))
	for name := range stats {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		logger.Log.Info("collection", zap.String("name", name), zap.Int("records", stats[name]))
	}
	log.Println("完成！")
}
