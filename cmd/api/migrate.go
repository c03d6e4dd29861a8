package main

import (
	"github.com/spf13/cobra"

	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/relational"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "创建数据表",
	Long: `按模型创建books、orders、order_books、reviews四张表。

AutoMigrate只新增表和字段,不删除或修改已有字段,可以重复执行。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate()
	},
}

func runMigrate() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	// 由这里显式迁移,避免NewDB里再迁移一次
	cfg.Database.AutoMigrate = false

	log, err := provideLogger(cfg)
	if err != nil {
		return err
	}
	db, cleanup, err := provideDB(cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := relational.Migrate(db); err != nil {
		return err
	}
	log.Info("数据表迁移完成")
	return nil
}
