package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	content := `
engine:
  fps: 30
  protocol: "artnet"
  color_strategy: "preserve_rgb"
  artnet:
    broadcast: "192.168.1.255"
    unicast:
      2: "192.168.1.50"
mqtt:
  enabled: true
  broker:
    host: "broker.local"
    port: 1883
    client_id: "luxd-test"
  qos: 1
api:
  host: "0.0.0.0"
  port: 9090
`
	cfg, err := Load(writeConfig(t, content))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Engine.FPS != 30 {
		t.Errorf("Engine.FPS = %v, want 30", cfg.Engine.FPS)
	}
	if cfg.Engine.Protocol != "artnet" {
		t.Errorf("Engine.Protocol = %q, want %q", cfg.Engine.Protocol, "artnet")
	}
	if cfg.Engine.ArtNet.Unicast[2] != "192.168.1.50" {
		t.Errorf("ArtNet.Unicast[2] = %q", cfg.Engine.ArtNet.Unicast[2])
	}
	if cfg.MQTT.Broker.Host != "broker.local" {
		t.Errorf("MQTT.Broker.Host = %q", cfg.MQTT.Broker.Host)
	}
	if cfg.API.Port != 9090 {
		t.Errorf("API.Port = %d, want 9090", cfg.API.Port)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "engine:\n  fps: 40\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Engine.Protocol != "sacn" {
		t.Errorf("default protocol = %q, want sacn", cfg.Engine.Protocol)
	}
	if cfg.Engine.SACN.Priority != 100 {
		t.Errorf("default sACN priority = %d, want 100", cfg.Engine.SACN.Priority)
	}
	if cfg.Engine.ColorStrategy != "balanced" {
		t.Errorf("default color strategy = %q", cfg.Engine.ColorStrategy)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("logging defaults = %q/%q", cfg.Logging.Level, cfg.Logging.Format)
	}
	if cfg.FrameInterval() != 25*time.Millisecond {
		t.Errorf("FrameInterval = %v, want 25ms", cfg.FrameInterval())
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("Load() expected error for missing file, got nil")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "invalid: [yaml: content"))
	if err == nil {
		t.Error("Load() expected error for invalid YAML, got nil")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LUXD_ENGINE_FPS", "25")
	t.Setenv("LUXD_MQTT_HOST", "env-broker")
	t.Setenv("LUXD_TELEMETRY_TOKEN", "env-token")

	cfg, err := Load(writeConfig(t, "engine:\n  fps: 40\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Engine.FPS != 25 {
		t.Errorf("Engine.FPS = %v, want env override 25", cfg.Engine.FPS)
	}
	if cfg.MQTT.Broker.Host != "env-broker" {
		t.Errorf("MQTT.Broker.Host = %q, want env override", cfg.MQTT.Broker.Host)
	}
	if cfg.Telemetry.Token != "env-token" {
		t.Errorf("Telemetry.Token = %q, want env override", cfg.Telemetry.Token)
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config { return defaultConfig() }

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "zero fps",
			mutate:  func(c *Config) { c.Engine.FPS = 0 },
			wantErr: true,
		},
		{
			name:    "negative fps",
			mutate:  func(c *Config) { c.Engine.FPS = -1 },
			wantErr: true,
		},
		{
			name:    "unknown protocol",
			mutate:  func(c *Config) { c.Engine.Protocol = "osc" },
			wantErr: true,
		},
		{
			name:    "unknown color strategy",
			mutate:  func(c *Config) { c.Engine.ColorStrategy = "vivid" },
			wantErr: true,
		},
		{
			name:    "priority above 200",
			mutate:  func(c *Config) { c.Engine.SACN.Priority = 201 },
			wantErr: true,
		},
		{
			name:    "invalid qos",
			mutate:  func(c *Config) { c.MQTT.QoS = 3 },
			wantErr: true,
		},
		{
			name:    "invalid api port",
			mutate:  func(c *Config) { c.API.Port = 0 },
			wantErr: true,
		},
		{
			name:    "telemetry enabled without url",
			mutate:  func(c *Config) { c.Telemetry.Enabled = true; c.Telemetry.Token = "tok" },
			wantErr: true,
		},
		{
			name: "telemetry enabled and configured",
			mutate: func(c *Config) {
				c.Telemetry.Enabled = true
				c.Telemetry.URL = "http://localhost:8086"
				c.Telemetry.Token = "tok"
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
