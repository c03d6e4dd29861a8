// bookshop 图书、订单、评论管理服务
//
//	bookshop                    # 等同于 bookshop serve
//	bookshop serve --config config/config.yaml
//	bookshop migrate            # 只建表
//
// @title        Bookshop API
// @version      1.0
// @description  图书、订单、评论管理接口
// @host         localhost:8080
// @BasePath     /
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/xiebiao/bookshop/internal/infrastructure/config"
)

const shutdownTimeout = 10 * time.Second

var configPath string

var rootCmd = &cobra.Command{
	Use:   "bookshop",
	Short: "Bookshop - 图书、订单、评论管理服务",
	Long: `Bookshop 提供图书、订单、评论的增删改查接口。

配置来源(后者覆盖前者):
  - 内置默认值
  - config/config.yaml 或 --config 指定的文件
  - .env 文件
  - BOOKSHOP_ 前缀的环境变量,如 BOOKSHOP_DATABASE_DRIVER=sqlite`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "配置文件路径(默认查找 ./config/config.yaml)")
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

// loadConfig 加载配置,供各子命令共用
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("加载配置失败: %w", err)
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
