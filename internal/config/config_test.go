package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr bool
		check   func(t *testing.T, cfg Config)
	}{
		{
			name: "defaults with required uri",
			env: map[string]string{
				"MONGODB_URI": "mongodb://localhost:27017",
			},
			check: func(t *testing.T, cfg Config) {
				require.Equal(t, ":3000", cfg.Addr())
				require.Equal(t, "after_school_app", cfg.Mongo.DBName)
				require.Equal(t, "images", cfg.ImageDir)
				require.Equal(t, []string{"*"}, cfg.CORSOrigins)
				require.Equal(t, 5*time.Second, cfg.ConnectTimeout)
			},
		},
		{
			name:    "missing uri",
			env:     map[string]string{},
			wantErr: true,
		},
		{
			name: "explicit values",
			env: map[string]string{
				"MONGODB_URI":  "mongodb://db:27017",
				"PORT":         "8080",
				"DB_NAME":      "lessons_test",
				"IMAGE_DIR":    "/srv/images",
				"CORS_ORIGINS": "http://localhost:5173, http://127.0.0.1:5173",
			},
			check: func(t *testing.T, cfg Config) {
				require.Equal(t, ":8080", cfg.Addr())
				require.Equal(t, "lessons_test", cfg.Mongo.DBName)
				require.Equal(t, "/srv/images", cfg.ImageDir)
				require.Equal(t,
					[]string{"http://localhost:5173", "http://127.0.0.1:5173"},
					cfg.CORSOrigins)
			},
		},
		{
			name: "non-numeric port",
			env: map[string]string{
				"MONGODB_URI": "mongodb://db:27017",
				"PORT":        "eighty",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{
				"MONGODB_URI", "PORT", "DB_NAME", "IMAGE_DIR",
				"CORS_ORIGINS", "MONGO_CONNECT_TIMEOUT", "SHUTDOWN_TIMEOUT",
			} {
				t.Setenv(k, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := load()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestEnvDuration(t *testing.T) {
	t.Setenv("D_GO", "250ms")
	t.Setenv("D_SECONDS", "7")
	t.Setenv("D_BAD", "soon")

	require.Equal(t, 250*time.Millisecond, envDuration("D_GO", time.Second))
	require.Equal(t, 7*time.Second, envDuration("D_SECONDS", time.Second))
	require.Equal(t, time.Second, envDuration("D_BAD", time.Second))
	require.Equal(t, time.Second, envDuration("D_UNSET", time.Second))
}
