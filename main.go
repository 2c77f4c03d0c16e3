package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"tracker/config"
	"tracker/ledger"
	"tracker/middleware"
	"tracker/router"
	"tracker/storage"

	"github.com/joho/godotenv"
)

// @title 记账本 API
// @version 1.0
// @description 收支记录、筛选查询、汇总图表数据与导出
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

var (
	configFile  string
	port        string
	tokenClient string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "外部配置文件路径（可选）")
	flag.StringVar(&configFile, "c", "", "外部配置文件路径（简写）")
	flag.StringVar(&port, "port", "", "监听端口，如: 8080 或 :8080")
	flag.StringVar(&port, "p", "", "监听端口（简写）")
	flag.StringVar(&tokenClient, "token", "", "为指定客户端签发访问令牌后退出")
	flag.BoolVar(&showVersion, "version", false, "显示版本信息")
	flag.BoolVar(&showVersion, "v", false, "显示版本信息（简写）")
}

func main() {
	flag.Parse()

	if showVersion {
		log.Println("记账本 v1.0.0")
		return
	}

	// .env 不存在时忽略
	_ = godotenv.Load()

	// 加载配置（内置配置 + 可选的外部配置覆盖）
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 初始化 JWT
	middleware.InitJWT(cfg)

	if tokenClient != "" {
		token, err := middleware.GenerateToken(tokenClient, cfg.JWT.ExpireTime)
		if err != nil {
			log.Fatalf("签发令牌失败: %v", err)
		}
		fmt.Println(token)
		return
	}

	// 命令行参数覆盖端口配置
	if port != "" {
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
		log.Printf("命令行指定端口: %s", port)
	}

	config.PrintConfig()

	// 初始化存储
	kv, closeKV, err := storage.Open(cfg)
	if err != nil {
		log.Fatalf("存储初始化失败: %v", err)
	}
	defer func() {
		if err := closeKV(); err != nil {
			log.Printf("关闭存储失败: %v", err)
		}
	}()

	store, err := ledger.Open(context.Background(), kv, ledger.WithKey(cfg.Storage.Key))
	if err != nil {
		log.Fatalf("加载收支记录失败: %v", err)
	}
	log.Printf("已加载 %d 条收支记录", store.Len())

	r := router.SetupRouter(cfg, store)

	log.Printf("==========================================")
	log.Printf("  💰 记账本已启动")
	log.Printf("==========================================")
	log.Printf("  存储驱动: %s", cfg.Storage.Driver)
	log.Printf("  Swagger:  http://localhost%s/swagger/index.html", cfg.Server.Port)
	log.Printf("  API接口:  http://localhost%s/api/v1/", cfg.Server.Port)
	log.Printf("==========================================")

	if err := r.Run(cfg.Server.Port); err != nil {
		log.Fatalf("服务器启动失败: %v", err)
	}
}
