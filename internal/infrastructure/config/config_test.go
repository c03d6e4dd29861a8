package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
server:
  port: 9090
  mode: release
database:
  driver: postgres
  host: db
  port: 5432
  user: shop
  password: secret
  dbname: bookshop
redis:
  enabled: true
  book_ttl: 30s
log:
  level: debug
  format: json
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("读取YAML文件", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, sampleYAML))
		require.NoError(t, err)

		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, "release", cfg.Server.Mode)
		assert.Equal(t, DriverPostgres, cfg.Database.Driver)
		assert.True(t, cfg.Redis.Enabled)
		assert.Equal(t, 30*time.Second, cfg.Redis.BookTTL)
		assert.Equal(t, "json", cfg.Log.Format)
		// 文件没写的项取默认值
		assert.Equal(t, 20, cfg.Database.MaxOpenConns)
		assert.Equal(t, "bookshop", cfg.Tracing.ServiceName)
	})

	t.Run("环境变量覆盖文件配置", func(t *testing.T) {
		t.Setenv("BOOKSHOP_DATABASE_PASSWORD", "from-env")
		t.Setenv("BOOKSHOP_SERVER_PORT", "7070")

		cfg, err := Load(writeConfig(t, sampleYAML))
		require.NoError(t, err)

		assert.Equal(t, "from-env", cfg.Database.Password)
		assert.Equal(t, 7070, cfg.Server.Port)
	})

	t.Run("指定文件不存在时报错", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("不支持的驱动", func(t *testing.T) {
		_, err := Load(writeConfig(t, "database:\n  driver: oracle\n"))
		assert.ErrorContains(t, err, "oracle")
	})

	t.Run("无效端口", func(t *testing.T) {
		_, err := Load(writeConfig(t, "server:\n  port: 70000\n"))
		assert.Error(t, err)
	})
}

func TestDSN(t *testing.T) {
	t.Run("mysql", func(t *testing.T) {
		d := DatabaseConfig{
			Driver: DriverMySQL, User: "root", Password: "pw", Host: "127.0.0.1", Port: 3306,
			DBName: "bookshop", Charset: "utf8mb4", ParseTime: true, Loc: "Asia/Shanghai",
		}
		assert.Equal(t,
			"root:pw@tcp(127.0.0.1:3306)/bookshop?charset=utf8mb4&parseTime=true&loc=Asia%2FShanghai",
			d.DSN())
	})

	t.Run("postgres默认sslmode", func(t *testing.T) {
		d := DatabaseConfig{Driver: DriverPostgres, User: "u", Password: "p", Host: "h", Port: 5432, DBName: "d"}
		assert.Equal(t, "host=h port=5432 user=u password=p dbname=d sslmode=disable", d.DSN())
	})

	t.Run("sqlite使用dbname作为路径并打开外键", func(t *testing.T) {
		d := DatabaseConfig{Driver: DriverSQLite, DBName: "bookshop.db"}
		assert.Equal(t, "bookshop.db?_foreign_keys=on", d.DSN())
	})

	t.Run("sqlite路径已有参数时用&拼接", func(t *testing.T) {
		d := DatabaseConfig{Driver: DriverSQLite, DBName: "file::memory:?cache=shared"}
		assert.Equal(t, "file::memory:?cache=shared&_foreign_keys=on", d.DSN())
	})

	t.Run("sqlite显式设置的外键参数保持原样", func(t *testing.T) {
		d := DatabaseConfig{Driver: DriverSQLite, DBName: "bookshop.db?_fk=0"}
		assert.Equal(t, "bookshop.db?_fk=0", d.DSN())
	})

	t.Run("dsn覆盖", func(t *testing.T) {
		d := DatabaseConfig{Driver: DriverMySQL, DSNOverride: "custom"}
		assert.Equal(t, "custom", d.DSN())
	})
}
