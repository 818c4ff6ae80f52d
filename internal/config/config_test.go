package config

import (
	"os"
	"testing"
)

func TestGetEnvWithDefault(t *testing.T) {
	testCases := []struct {
		name         string
		key          string
		defaultValue string
		envValue     string
		expected     string
	}{
		{
			name:         "should return env value when set",
			key:          "TEST_KEY",
			defaultValue: "default",
			envValue:     "from_env",
			expected:     "from_env",
		},
		{
			name:         "should return default when env not set",
			key:          "MISSING_KEY",
			defaultValue: "default_value",
			envValue:     "",
			expected:     "default_value",
		},
		{
			name:         "should return empty string default",
			key:          "EMPTY_KEY",
			defaultValue: "",
			envValue:     "",
			expected:     "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			// Setup: set environment variable if provided
			if tt.envValue != "" {
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key) // cleanup after test
			} else {
				os.Unsetenv(tt.key) // ensure it's not set
			}

			// Execute
			result := GetEnvWithDefault(tt.key, tt.defaultValue)

			// Assert
			if result != tt.expected {
				t.Errorf("GetEnvWithDefault() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestGetEnvAsTypeFloat(t *testing.T) {
	t.Run("should parse float value", func(t *testing.T) {
		os.Setenv("FLOAT_KEY", "0.75")
		defer os.Unsetenv("FLOAT_KEY")

		result := GetEnvAsType("FLOAT_KEY", 0.3)
		if result != 0.75 {
			t.Errorf("GetEnvAsType() = %v, expected 0.75", result)
		}
	})

	t.Run("should return default on invalid float", func(t *testing.T) {
		os.Setenv("FLOAT_KEY", "not_a_float")
		defer os.Unsetenv("FLOAT_KEY")

		result := GetEnvAsType("FLOAT_KEY", 0.3)
		if result != 0.3 {
			t.Errorf("GetEnvAsType() = %v, expected default 0.3", result)
		}
	})
}

func TestLoadConfig(t *testing.T) {
	// Helper function to set multiple env vars
	setTestEnv := func() {
		os.Setenv("APP_PORT", "9000")
		os.Setenv("APP_HOST", "0.0.0.0")
		os.Setenv("DB_DRIVER", "postgres")
		os.Setenv("DB_NAME", "resto_test")
		os.Setenv("LOG_LEVEL", "debug")
		os.Setenv("PAYMENT_ORACLE", "simulated")
		os.Setenv("PAYMENT_PAID_PROBABILITY", "0.5")
	}

	// Helper function to cleanup env vars
	cleanupTestEnv := func() {
		vars := []string{
			"APP_PORT", "APP_HOST", "DB_DRIVER", "DB_NAME", "LOG_LEVEL",
			"PAYMENT_ORACLE", "PAYMENT_PAID_PROBABILITY",
		}
		for _, v := range vars {
			os.Unsetenv(v)
		}
	}

	t.Run("successful config load with all env vars", func(t *testing.T) {
		setTestEnv()
		defer cleanupTestEnv()

		config, err := LoadConfig()

		// Should not return error
		if err != nil {
			t.Fatalf("LoadConfig() returned error: %v", err)
		}

		// Verify all values
		if config.Port != 9000 {
			t.Errorf("Port = %d, expected 9000", config.Port)
		}
		if config.Host != "0.0.0.0" {
			t.Errorf("Host = %s, expected 0.0.0.0", config.Host)
		}
		if config.DBDriver != "postgres" {
			t.Errorf("DBDriver = %s, expected postgres", config.DBDriver)
		}
		if config.LogLevel != "debug" {
			t.Errorf("LogLevel = %s, expected debug", config.LogLevel)
		}
		if config.PaymentOracle != "simulated" {
			t.Errorf("PaymentOracle = %s, expected simulated", config.PaymentOracle)
		}
		if config.PaymentPaidProbability != 0.5 {
			t.Errorf("PaymentPaidProbability = %f, expected 0.5", config.PaymentPaidProbability)
		}
	})

	t.Run("should fail with invalid port", func(t *testing.T) {
		cleanupTestEnv()
		os.Setenv("APP_PORT", "not_a_number")
		defer cleanupTestEnv()

		config, err := LoadConfig()

		if err == nil {
			t.Error("LoadConfig() should return error when APP_PORT is invalid")
		}
		if config != nil {
			t.Error("Config should be nil when error occurs")
		}
	})

	t.Run("should fail with unknown payment oracle", func(t *testing.T) {
		cleanupTestEnv()
		os.Setenv("PAYMENT_ORACLE", "fortune_teller")
		defer cleanupTestEnv()

		config, err := LoadConfig()

		if err == nil {
			t.Error("LoadConfig() should return error when PAYMENT_ORACLE is unknown")
		}
		if config != nil {
			t.Error("Config should be nil when error occurs")
		}
	})

	t.Run("should fail with out of range paid probability", func(t *testing.T) {
		cleanupTestEnv()
		os.Setenv("PAYMENT_PAID_PROBABILITY", "1.5")
		defer cleanupTestEnv()

		config, err := LoadConfig()

		if err == nil {
			t.Error("LoadConfig() should return error when PAYMENT_PAID_PROBABILITY is out of range")
		}
		if config != nil {
			t.Error("Config should be nil when error occurs")
		}
	})

	t.Run("should use defaults when optional env vars not set", func(t *testing.T) {
		cleanupTestEnv()
		defer cleanupTestEnv()

		config, err := LoadConfig()

		if err != nil {
			t.Fatalf("LoadConfig() returned unexpected error: %v", err)
		}

		// Check defaults
		if config.Port != 8080 {
			t.Errorf("Port = %d, expected default 8080", config.Port)
		}
		if config.Host != "localhost" {
			t.Errorf("Host = %s, expected default localhost", config.Host)
		}
		if config.DBDriver != "sqlite" {
			t.Errorf("DBDriver = %s, expected default sqlite", config.DBDriver)
		}
		if config.DBPath != "restaurant.sqlite" {
			t.Errorf("DBPath = %s, expected default restaurant.sqlite", config.DBPath)
		}
		if config.LogLevel != "info" {
			t.Errorf("LogLevel = %s, expected default info", config.LogLevel)
		}
		if config.PaymentOracle != OracleManual {
			t.Errorf("PaymentOracle = %s, expected default %s", config.PaymentOracle, OracleManual)
		}
	})
}

// Benchmark tests (optional but good practice)
func BenchmarkGetEnvWithDefault(b *testing.B) {
	os.Setenv("BENCH_KEY", "test_value")
	defer os.Unsetenv("BENCH_KEY")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GetEnvWithDefault("BENCH_KEY", "default")
	}
}
