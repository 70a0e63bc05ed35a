package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	// 保存原始环境变量
	originalEnvs := make(map[string]string)
	envKeys := []string{
		"CHATMAIL_SERVER_HOST",
		"CHATMAIL_SERVER_PORT",
		"CHATMAIL_DATABASE_URL",
		"CHATMAIL_DATABASE_NAME",
		"CHATMAIL_CORS_ALLOWED_ORIGINS",
		"CHATMAIL_LOG_LEVEL",
		"CHATMAIL_LOG_DEVELOPMENT",
		"DATABASE_URL",
		"DATABASE_NAME",
		"PORT",
	}

	for _, key := range envKeys {
		originalEnvs[key] = os.Getenv(key)
	}

	// 测试后恢复环境变量
	defer func() {
		for key, value := range originalEnvs {
			if value == "" {
				os.Unsetenv(key)
			} else {
				os.Setenv(key, value)
			}
		}
	}()

	t.Run("加载默认配置成功", func(t *testing.T) {
		// 清除所有环境变量
		for _, key := range envKeys {
			os.Unsetenv(key)
		}

		cfg, err := Load()

		assert.NoError(t, err)
		assert.NotNil(t, cfg)

		// 验证默认值
		assert.Equal(t, "0.0.0.0", cfg.Server.Host)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, "", cfg.Database.URL)
		assert.Equal(t, "chatmail", cfg.Database.Name)
		assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.False(t, cfg.Log.Development)

		// 未配置数据库地址时使用内存存储
		assert.True(t, cfg.UseMemoryStore())
	})

	t.Run("加载自定义配置成功", func(t *testing.T) {
		for _, key := range envKeys {
			os.Unsetenv(key)
		}

		os.Setenv("CHATMAIL_SERVER_HOST", "127.0.0.1")
		os.Setenv("CHATMAIL_SERVER_PORT", "9090")
		os.Setenv("CHATMAIL_DATABASE_URL", "mongodb://localhost:27017")
		os.Setenv("CHATMAIL_DATABASE_NAME", "chatmail_test")
		os.Setenv("CHATMAIL_CORS_ALLOWED_ORIGINS", "https://a.example.com,https://b.example.com")
		os.Setenv("CHATMAIL_LOG_LEVEL", "debug")
		os.Setenv("CHATMAIL_LOG_DEVELOPMENT", "true")

		cfg, err := Load()

		assert.NoError(t, err)
		assert.Equal(t, "127.0.0.1", cfg.Server.Host)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URL)
		assert.Equal(t, "chatmail_test", cfg.Database.Name)
		assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORS.AllowedOrigins)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.True(t, cfg.Log.Development)
		assert.False(t, cfg.UseMemoryStore())
	})

	t.Run("兼容无前缀的部署环境变量", func(t *testing.T) {
		for _, key := range envKeys {
			os.Unsetenv(key)
		}

		// 常见 PaaS 平台只注入 DATABASE_URL / PORT 这类裸名变量
		os.Setenv("DATABASE_URL", "mongodb://db.internal:27017")
		os.Setenv("DATABASE_NAME", "production")
		os.Setenv("PORT", "3000")

		cfg, err := Load()

		assert.NoError(t, err)
		assert.Equal(t, "mongodb://db.internal:27017", cfg.Database.URL)
		assert.Equal(t, "production", cfg.Database.Name)
		assert.Equal(t, 3000, cfg.Server.Port)
	})
}
