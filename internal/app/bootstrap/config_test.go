package bootstrap

import (
	"testing"

	"go.uber.org/zap"
)

func TestValidateConfig(t *testing.T) {
	logger := zap.NewNop()

	cases := []struct {
		name    string
		cfg     AppConfig
		wantErr bool
	}{
		{
			name: "valid",
			cfg:  AppConfig{MongoURI: "mongodb://localhost:27017", TokenSecret: "secret"},
		},
		{
			name: "srv URI",
			cfg:  AppConfig{MongoURI: "mongodb+srv://cluster.example.net", TokenSecret: "secret"},
		},
		{
			name:    "bad URI scheme",
			cfg:     AppConfig{MongoURI: "http://localhost:27017", TokenSecret: "secret"},
			wantErr: true,
		},
		{
			name:    "empty URI",
			cfg:     AppConfig{MongoURI: "", TokenSecret: "secret"},
			wantErr: true,
		},
		{
			name:    "empty token secret",
			cfg:     AppConfig{MongoURI: "mongodb://localhost:27017", TokenSecret: ""},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateConfig(nil, tc.cfg, logger)
			if tc.wantErr && err == nil {
				t.Error("expected an error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
